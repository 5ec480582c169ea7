package button

import "fmt"

// ErrorKind classifies configuration failures.
type ErrorKind int

const (
	MissingUser ErrorKind = iota + 1
	MissingRepo
	MissingType
	InvalidType
)

func (k ErrorKind) String() string {
	switch k {
	case MissingUser:
		return "missing user"
	case MissingRepo:
		return "missing repo"
	case MissingType:
		return "missing type"
	case InvalidType:
		return "invalid type"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ConfigError reports an invalid Request. It is raised before any markup is
// produced.
type ConfigError struct {
	Kind ErrorKind
	// Value carries the offending input for InvalidType.
	Value string
}

// Sentinels for errors.Is checks; they match any ConfigError of the same kind.
var (
	ErrMissingUser = &ConfigError{Kind: MissingUser}
	ErrMissingRepo = &ConfigError{Kind: MissingRepo}
	ErrMissingType = &ConfigError{Kind: MissingType}
	ErrInvalidType = &ConfigError{Kind: InvalidType}
)

func (e *ConfigError) Error() string {
	switch e.Kind {
	case MissingUser:
		return "button: the GitHub user must be set"
	case MissingRepo:
		return "button: the GitHub repository must be set"
	case MissingType:
		return "button: the button type must be set"
	case InvalidType:
		return fmt.Sprintf("button: invalid button type %q", e.Value)
	default:
		return "button: " + e.Kind.String()
	}
}

// Is matches other ConfigErrors by kind.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
