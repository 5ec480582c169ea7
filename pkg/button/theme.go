package button

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme tokens read from the selected manifest, merged with the selected
// variant, and the attributes they feed.
const (
	TokenSize        = "github-button.size"
	TokenColorScheme = "github-button.color-scheme"
	TokenStyle       = "github-button.style"
)

var themeTokenAttributes = map[string]string{
	TokenSize:        "data-size",
	TokenColorScheme: "data-color-scheme",
	TokenStyle:       "data-style",
}

type themeConfig struct {
	selector theme.ThemeSelector
	name     string
	variant  string
}

func (c *themeConfig) attributes() (map[string]string, error) {
	if c == nil || c.selector == nil {
		return nil, nil
	}
	selection, err := c.selector.Select(c.name, c.variant)
	if err != nil {
		return nil, fmt.Errorf("button: select theme %q: %w", c.name, err)
	}
	return themeAttributes(selection), nil
}

func themeAttributes(selection *theme.Selection) map[string]string {
	if selection == nil {
		return nil
	}
	tokens := selection.Tokens()
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(themeTokenAttributes))
	for token, attr := range themeTokenAttributes {
		if value := strings.TrimSpace(tokens[token]); value != "" {
			out[attr] = value
		}
	}
	return out
}
