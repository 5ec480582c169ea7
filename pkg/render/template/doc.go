// Package template defines the template rendering seam used by page
// composition. The gotemplate subpackage provides the pongo2-backed engine.
package template
