package button

// Attribute names produced by ComputeDefaults.
const (
	AttrHref      = "href"
	AttrIcon      = "data-icon"
	AttrCountAPI  = "data-count-api"
	AttrCountHref = "data-count-href"
	// AttrLabel is never emitted; it is stripped from every merged map.
	AttrLabel = "label"
)

const githubBaseURL = "https://github.com"

// Defaults is the per-type attribute record. Empty fields are absent.
type Defaults struct {
	Href      string
	Icon      string
	CountAPI  string
	CountHref string
	// Label is the English text, LabelKey/LabelParams the translatable form.
	Label       string
	LabelKey    string
	LabelParams map[string]any
}

// ComputeDefaults returns the default attributes for a validated type, user
// and repo. It is pure: the same input always yields the same record. An
// unknown type yields the zero Defaults.
func ComputeDefaults(t Type, user, repo string) Defaults {
	repoDir := user + "/" + repo
	href := githubBaseURL + "/" + repoDir
	api := "/repos/" + repoDir + "#"
	params := map[string]any{"user": user, "repo": repo}

	switch t {
	case TypeWatch:
		return Defaults{
			Href:        href,
			Icon:        "octicon-eye",
			CountAPI:    api + "subscribers_count",
			CountHref:   "/" + repoDir + "/watchers",
			Label:       "Watch",
			LabelKey:    "github.watch",
			LabelParams: params,
		}
	case TypeStar:
		return Defaults{
			Href:        href,
			Icon:        "octicon-star",
			CountAPI:    api + "stargazers_count",
			CountHref:   "/" + repoDir + "/stargazers",
			Label:       "Star",
			LabelKey:    "github.star",
			LabelParams: params,
		}
	case TypeFork:
		return Defaults{
			Href:     href + "/fork",
			Icon:     "octicon-git-branch",
			CountAPI: api + "forks_count",
			// The repo path is repeated after href on purpose; see DESIGN.md.
			CountHref:   href + "/" + repoDir + "/network",
			Label:       "Fork",
			LabelKey:    "github.fork",
			LabelParams: params,
		}
	case TypeIssue:
		return Defaults{
			Href:        href + "/issues",
			Icon:        "octicon-issue-opened",
			CountAPI:    api + "open_issues_count",
			Label:       "Issue",
			LabelKey:    "github.issue",
			LabelParams: params,
		}
	case TypeDownload:
		return Defaults{
			Href:        href + "/archive/master.zip",
			Icon:        "octicon-cloud-download",
			Label:       "Download",
			LabelKey:    "github.download",
			LabelParams: params,
		}
	case TypeFollow:
		return Defaults{
			Href:        githubBaseURL + "/" + user,
			Icon:        "octicon-mark-github",
			CountAPI:    "/users/" + user + "#followers",
			CountHref:   "/" + user + "/followers",
			Label:       "Follow @" + user,
			LabelKey:    "github.follow",
			LabelParams: map[string]any{"user": user},
		}
	default:
		return Defaults{}
	}
}

// Attributes returns the non-empty HTML attributes of the record. The label
// is not included.
func (d Defaults) Attributes() map[string]string {
	attrs := make(map[string]string, 4)
	set := func(name, value string) {
		if value != "" {
			attrs[name] = value
		}
	}
	set(AttrHref, d.Href)
	set(AttrIcon, d.Icon)
	set(AttrCountAPI, d.CountAPI)
	set(AttrCountHref, d.CountHref)
	return attrs
}
