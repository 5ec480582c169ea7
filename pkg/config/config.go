// Package config reads button requests from YAML or JSON documents.
//
// A document either describes one button at the top level:
//
//	type: star
//	user: octo
//	repo: demo
//
// or a page of buttons:
//
//	locale: es
//	title: My projects
//	buttons:
//	  - {type: watch, user: octo, repo: demo}
//	  - {type: follow, user: octo, showCount: false}
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ghbutton/pkg/button"
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	// ErrEmptyDocument is returned when a document holds no buttons.
	ErrEmptyDocument = errors.New("config: document defines no buttons")
)

// Document is a decoded config file.
type Document struct {
	Locale  string
	Title   string
	Buttons []button.Request
}

// First returns the first button request.
func (d Document) First() (button.Request, bool) {
	if len(d.Buttons) == 0 {
		return button.Request{}, false
	}
	return d.Buttons[0], true
}

type documentFile struct {
	button.Request `yaml:",inline"`
	Locale         string           `json:"locale" yaml:"locale"`
	Title          string           `json:"title" yaml:"title"`
	Buttons        []button.Request `json:"buttons" yaml:"buttons"`
}

// FormatFromPath sniffs the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(data, format, path)
}

// LoadFS reads and parses the document at path inside fsys.
func LoadFS(fsys fs.FS, path string) (Document, error) {
	if fsys == nil {
		return Document{}, errors.New("config: filesystem is nil")
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(data, format, path)
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (Document, error) {
	return parse(data, format, string(format)+" input")
}

func parse(data []byte, format Format, source string) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, fmt.Errorf("config: %s: %w", source, ErrEmptyDocument)
	}

	var raw documentFile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return Document{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	doc := Document{
		Locale: strings.TrimSpace(raw.Locale),
		Title:  strings.TrimSpace(raw.Title),
	}
	if !isZeroRequest(raw.Request) {
		doc.Buttons = append(doc.Buttons, raw.Request)
	}
	doc.Buttons = append(doc.Buttons, raw.Buttons...)

	if len(doc.Buttons) == 0 {
		return Document{}, fmt.Errorf("config: %s: %w", source, ErrEmptyDocument)
	}
	return doc, nil
}

func isZeroRequest(req button.Request) bool {
	return req.Type == "" &&
		strings.TrimSpace(req.User) == "" &&
		strings.TrimSpace(req.Repo) == "" &&
		req.ShowCount == nil &&
		req.Label == "" &&
		len(req.Settings) == 0 &&
		len(req.HTMLAttributes) == 0
}
