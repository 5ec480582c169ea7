package ghbutton

import (
	"io/fs"

	"github.com/goliatone/go-ghbutton/pkg/page"
	"github.com/goliatone/go-ghbutton/pkg/render"
)

// EmbeddedTemplates exposes the built-in page template so callers can reuse
// or extend it without importing the page package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// EmbeddedLocales exposes the bundled label catalogs, one YAML file per
// locale.
func EmbeddedLocales() fs.FS {
	return render.LocalesFS()
}
