package render

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// DefaultLocale is used when a lookup misses both the requested locale and
// its base language.
const DefaultLocale = "en"

// LocalesFS exposes the bundled message files (one YAML document per locale,
// named after the locale).
func LocalesFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return embeddedLocales
	}
	return sub
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithFallbackLocale overrides the locale consulted after the requested one
// and its base language.
func WithFallbackLocale(locale string) CatalogOption {
	return func(c *Catalog) {
		if normalized := normalizeLocale(locale); normalized != "" {
			c.fallback = normalized
		}
	}
}

// Catalog is an in-memory Translator keyed by locale and dotted message key.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
	fallback string
}

var _ Translator = (*Catalog)(nil)

// NewCatalog returns an empty catalog.
func NewCatalog(options ...CatalogOption) *Catalog {
	c := &Catalog{
		messages: make(map[string]map[string]string),
		fallback: DefaultLocale,
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// DefaultCatalog returns a catalog seeded with the bundled locales.
func DefaultCatalog(options ...CatalogOption) (*Catalog, error) {
	c := NewCatalog(options...)
	if err := c.LoadFS(LocalesFS()); err != nil {
		return nil, err
	}
	return c, nil
}

// Add merges messages into locale, replacing existing keys.
func (c *Catalog) Add(locale string, messages map[string]string) {
	locale = normalizeLocale(locale)
	if locale == "" || len(messages) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.messages[locale]
	if bucket == nil {
		bucket = make(map[string]string, len(messages))
		c.messages[locale] = bucket
	}
	for key, msg := range messages {
		if key = strings.TrimSpace(key); key != "" {
			bucket[key] = msg
		}
	}
}

// LoadFS reads every .yaml, .yml and .json file at the root of fsys. The file
// name (without extension) is the locale; nested maps are flattened into
// dotted keys.
func (c *Catalog) LoadFS(fsys fs.FS) error {
	if fsys == nil {
		return fmt.Errorf("render: catalog filesystem is nil")
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("render: read catalog dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		switch ext {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("render: read catalog %q: %w", name, err)
		}
		messages, err := parseMessages(data)
		if err != nil {
			return fmt.Errorf("render: parse catalog %q: %w", name, err)
		}
		c.Add(strings.TrimSuffix(name, path.Ext(name)), messages)
	}
	return nil
}

// Locales lists loaded locales in sorted order.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Translate looks key up in locale, then its base language, then the
// fallback locale, and interpolates args into the result.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrMissingTranslation)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range c.lookupChain(locale) {
		if msg, ok := c.messages[candidate][key]; ok {
			return Interpolate(msg, args...), nil
		}
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
}

func (c *Catalog) lookupChain(locale string) []string {
	chain := make([]string, 0, 3)
	appendUnique := func(candidate string) {
		if candidate == "" {
			return
		}
		for _, existing := range chain {
			if existing == candidate {
				return
			}
		}
		chain = append(chain, candidate)
	}

	normalized := normalizeLocale(locale)
	appendUnique(normalized)
	if base, _, ok := strings.Cut(normalized, "-"); ok {
		appendUnique(base)
	}
	appendUnique(c.fallback)
	return chain
}

func parseMessages(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flattenMessages("", raw, out)
	return out, nil
}

func flattenMessages(prefix string, in map[string]any, out map[string]string) {
	for key, value := range in {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenMessages(full, v, out)
		case nil:
			continue
		default:
			out[full] = anyToString(v)
		}
	}
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(strings.ToLower(locale))
	return strings.ReplaceAll(locale, "_", "-")
}
