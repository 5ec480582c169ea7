package button

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	anchorPolicyOnce sync.Once
	anchorPolicy     *bluemonday.Policy
)

// countHrefPattern accepts absolute http(s) URLs and site-relative paths.
var countHrefPattern = regexp.MustCompile(`^(https?://|/)[^\s"'<>]*$`)

// buttonDataAttributes are the options buttons.js understands. Anything else
// is dropped when sanitising.
var buttonDataAttributes = []string{
	"data-icon", "data-count-api", "data-size", "data-color-scheme",
	"data-style", "data-text", "data-show-count", "data-aria-label",
	"data-count-aria-label", "data-standard-icon",
}

func sanitizeAnchor(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(anchorSanitizer().Sanitize(trimmed))
}

func anchorSanitizer() *bluemonday.Policy {
	anchorPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowStandardURLs()
		// AllowStandardURLs forces rel="nofollow"; buttons keep the caller's rel.
		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowAttrs("class", "id", "title", "style", "rel", "target", "aria-label").OnElements("a")
		policy.AllowAttrs(buttonDataAttributes...).OnElements("a")
		policy.AllowAttrs("data-count-href").Matching(countHrefPattern).OnElements("a")
		anchorPolicy = policy
	})
	return anchorPolicy
}
