package button

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeDefaults_Watch(t *testing.T) {
	got := ComputeDefaults(TypeWatch, "kartik-v", "yii2-social").Attributes()
	want := map[string]string{
		"href":            "https://github.com/kartik-v/yii2-social",
		"data-icon":       "octicon-eye",
		"data-count-api":  "/repos/kartik-v/yii2-social#subscribers_count",
		"data-count-href": "/kartik-v/yii2-social/watchers",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("watch defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDefaults_Table(t *testing.T) {
	const user, repo = "octo", "demo"
	cases := []struct {
		typ   Type
		want  map[string]string
		label string
		key   string
	}{
		{
			typ: TypeStar,
			want: map[string]string{
				"href":            "https://github.com/octo/demo",
				"data-icon":       "octicon-star",
				"data-count-api":  "/repos/octo/demo#stargazers_count",
				"data-count-href": "/octo/demo/stargazers",
			},
			label: "Star",
			key:   "github.star",
		},
		{
			typ: TypeFork,
			want: map[string]string{
				"href":            "https://github.com/octo/demo/fork",
				"data-icon":       "octicon-git-branch",
				"data-count-api":  "/repos/octo/demo#forks_count",
				"data-count-href": "https://github.com/octo/demo/octo/demo/network",
			},
			label: "Fork",
			key:   "github.fork",
		},
		{
			typ: TypeIssue,
			want: map[string]string{
				"href":           "https://github.com/octo/demo/issues",
				"data-icon":      "octicon-issue-opened",
				"data-count-api": "/repos/octo/demo#open_issues_count",
			},
			label: "Issue",
			key:   "github.issue",
		},
		{
			typ: TypeDownload,
			want: map[string]string{
				"href":      "https://github.com/octo/demo/archive/master.zip",
				"data-icon": "octicon-cloud-download",
			},
			label: "Download",
			key:   "github.download",
		},
		{
			typ: TypeFollow,
			want: map[string]string{
				"href":            "https://github.com/octo",
				"data-icon":       "octicon-mark-github",
				"data-count-api":  "/users/octo#followers",
				"data-count-href": "/octo/followers",
			},
			label: "Follow @octo",
			key:   "github.follow",
		},
	}

	for _, tc := range cases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			defaults := ComputeDefaults(tc.typ, user, repo)
			if diff := cmp.Diff(tc.want, defaults.Attributes()); diff != "" {
				t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
			}
			if defaults.Label != tc.label {
				t.Fatalf("expected label %q, got %q", tc.label, defaults.Label)
			}
			if defaults.LabelKey != tc.key {
				t.Fatalf("expected label key %q, got %q", tc.key, defaults.LabelKey)
			}
			if _, ok := defaults.Attributes()[AttrLabel]; ok {
				t.Fatalf("expected label to stay out of the attribute map")
			}
		})
	}
}

func TestComputeDefaults_Deterministic(t *testing.T) {
	for _, typ := range Types() {
		a := ComputeDefaults(typ, "octo", "demo")
		b := ComputeDefaults(typ, "octo", "demo")
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("%s: expected identical defaults (-a +b):\n%s", typ, diff)
		}
	}
}

func TestComputeDefaults_UnknownType(t *testing.T) {
	got := ComputeDefaults("like", "octo", "demo")
	if diff := cmp.Diff(Defaults{}, got); diff != "" {
		t.Fatalf("expected zero defaults (-want +got):\n%s", diff)
	}
}
