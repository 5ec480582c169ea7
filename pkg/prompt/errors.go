package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoSelection is returned when a select prompt yields no known option.
	ErrNoSelection = errors.New("prompt: no option selected")
)
