package resources

import (
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// ErrScriptKeyRequired is returned when a script has neither ID nor Src.
var ErrScriptKeyRequired = errors.New("resources: script id or src is required")

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger used for registration diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Registry collects the scripts registered by widgets while a page renders.
// Registration is idempotent by Script.Key: the first registration wins and
// later ones are ignored. A Registry is safe for concurrent use and is meant
// to live for a single page render.
type Registry struct {
	mu      sync.RWMutex
	scripts []Script
	index   map[string]int
	logger  zerolog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{
		index:  make(map[string]int),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// RegisterScript records script unless another script with the same key is
// already present. It reports whether the script was added.
func (r *Registry) RegisterScript(script Script) (bool, error) {
	key := script.Key()
	if key == "" {
		return false, ErrScriptKeyRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[key]; exists {
		r.logger.Debug().Str("script", key).Msg("script already registered")
		return false, nil
	}

	r.index[key] = len(r.scripts)
	r.scripts = append(r.scripts, cloneScript(script))
	r.logger.Debug().Str("script", key).Str("position", script.Position.String()).Msg("script registered")
	return true, nil
}

// Has reports whether a script with the given key was registered.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[strings.TrimSpace(key)]
	return ok
}

// Len returns the number of distinct scripts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.scripts)
}

// Scripts returns the scripts for a position in registration order.
func (r *Registry) Scripts(position Position) []Script {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Script
	for _, script := range r.scripts {
		if script.Position == position {
			out = append(out, cloneScript(script))
		}
	}
	return out
}

// Tags renders the script elements for a position, one per line.
func (r *Registry) Tags(position Position) []string {
	scripts := r.Scripts(position)
	if len(scripts) == 0 {
		return nil
	}
	out := make([]string, 0, len(scripts))
	for _, script := range scripts {
		out = append(out, script.Tag())
	}
	return out
}
