package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/goliatone/go-ghbutton/pkg/button"
	"github.com/goliatone/go-ghbutton/pkg/config"
)

// errMultipleButtons is returned when per-button flags meet a config that
// defines more than one button.
var errMultipleButtons = errors.New("config defines more than one button")

// requestFlagNames are the flags that describe a single button.
var requestFlagNames = []string{"type", "user", "repo", "no-count", "label", "set", "attr", "interactive"}

type requestFlags struct {
	typ         string
	user        string
	repo        string
	noCount     bool
	label       string
	settings    map[string]string
	attrs       map[string]string
	configPath  string
	interactive bool
	sanitize    bool
	noscript    bool
}

func bindRequestFlags(fs *pflag.FlagSet, f *requestFlags) {
	fs.StringVarP(&f.typ, "type", "t", "", "button type: watch, star, fork, issue, download, follow")
	fs.StringVarP(&f.user, "user", "u", "", "GitHub user or organization")
	fs.StringVarP(&f.repo, "repo", "r", "", "repository name (not needed for follow)")
	fs.BoolVar(&f.noCount, "no-count", false, "hide the count bubble")
	fs.StringVar(&f.label, "label", "", "button label (defaults to the translated label)")
	fs.StringToStringVar(&f.settings, "set", nil, "buttons.js setting, e.g. --set data-size=large")
	fs.StringToStringVar(&f.attrs, "attr", nil, "HTML attribute, e.g. --attr id=star-btn")
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML or JSON file describing the button(s)")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "prompt for the button fields")
	fs.BoolVar(&f.sanitize, "sanitize", false, "run the markup through the HTML sanitizer")
	fs.BoolVar(&f.noscript, "noscript", false, "append a <noscript> notice")
}

// overlay applies explicitly set flags on top of req.
func (f *requestFlags) overlay(fs *pflag.FlagSet, req button.Request) button.Request {
	if fs.Changed("type") {
		req.Type = button.Type(f.typ)
	}
	if fs.Changed("user") {
		req.User = f.user
	}
	if fs.Changed("repo") {
		req.Repo = f.repo
	}
	if fs.Changed("no-count") {
		req.ShowCount = button.Bool(!f.noCount)
	}
	if fs.Changed("label") {
		req.Label = f.label
	}
	req.Settings = mergeMaps(req.Settings, f.settings)
	req.HTMLAttributes = mergeMaps(req.HTMLAttributes, f.attrs)
	return req
}

// document loads --config when set. The returned document always holds at
// least one request so flags have something to overlay.
func (f *requestFlags) document() (config.Document, error) {
	if f.configPath == "" {
		return config.Document{Buttons: []button.Request{{}}}, nil
	}
	return config.LoadFile(f.configPath)
}

// singleButton rejects per-button flags when doc holds several buttons, since
// there is no single request to apply them to.
func (f *requestFlags) singleButton(fs *pflag.FlagSet, doc config.Document) error {
	if len(doc.Buttons) <= 1 {
		return nil
	}
	var changed []string
	for _, name := range requestFlagNames {
		if fs.Changed(name) {
			changed = append(changed, "--"+name)
		}
	}
	if len(changed) == 0 {
		return nil
	}
	return fmt.Errorf("%w in %s: %s only apply to single-button configs",
		errMultipleButtons, f.configPath, strings.Join(changed, ", "))
}

func (f *requestFlags) buttonOptions() []button.Option {
	return []button.Option{
		button.WithSanitizer(f.sanitize),
		button.WithNoscript(f.noscript),
	}
}

func mergeMaps(base, over map[string]string) map[string]string {
	if len(over) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}
