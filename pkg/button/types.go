package button

import "strings"

// Type is the kind of social action a button represents.
type Type string

// Supported button types.
const (
	TypeWatch    Type = "watch"
	TypeStar     Type = "star"
	TypeFork     Type = "fork"
	TypeIssue    Type = "issue"
	TypeDownload Type = "download"
	TypeFollow   Type = "follow"
)

// Types lists every supported type in declaration order.
func Types() []Type {
	return []Type{TypeWatch, TypeStar, TypeFork, TypeIssue, TypeDownload, TypeFollow}
}

// ParseType normalizes raw (trimmed, case-insensitive) into a Type. It
// returns ErrMissingType for blank input and an InvalidType error for
// anything outside the closed set.
func ParseType(raw string) (Type, error) {
	normalized := Type(strings.ToLower(strings.TrimSpace(raw)))
	if normalized == "" {
		return "", ErrMissingType
	}
	if !normalized.Valid() {
		return "", &ConfigError{Kind: InvalidType, Value: raw}
	}
	return normalized, nil
}

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	switch t {
	case TypeWatch, TypeStar, TypeFork, TypeIssue, TypeDownload, TypeFollow:
		return true
	default:
		return false
	}
}

// RequiresRepo reports whether buttons of this type point at a repository.
func (t Type) RequiresRepo() bool {
	return t != TypeFollow
}

func (t Type) String() string {
	return string(t)
}

// Request is the caller-facing button configuration.
type Request struct {
	Type Type   `json:"type" yaml:"type"`
	User string `json:"user" yaml:"user"`
	// Repo is required for every type except follow.
	Repo string `json:"repo,omitempty" yaml:"repo,omitempty"`
	// ShowCount toggles the count bubble. Nil means true.
	ShowCount *bool `json:"showCount,omitempty" yaml:"showCount,omitempty"`
	// Label replaces the generated, translated label when non-empty.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Settings are buttons.js options (data-style, data-icon, ...). They
	// override computed defaults.
	Settings map[string]string `json:"settings,omitempty" yaml:"settings,omitempty"`
	// HTMLAttributes override both defaults and Settings.
	HTMLAttributes map[string]string `json:"htmlAttributes,omitempty" yaml:"htmlAttributes,omitempty"`
}

// CountVisible resolves ShowCount, defaulting to true.
func (r Request) CountVisible() bool {
	return r.ShowCount == nil || *r.ShowCount
}

// Bool returns a pointer to v, handy for Request.ShowCount literals.
func Bool(v bool) *bool {
	return &v
}
