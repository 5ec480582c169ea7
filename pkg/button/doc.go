// Package button renders GitHub social buttons for the buttons.github.io
// script: a single <a class="github-button"> element whose data attributes
// are derived from the button type, the GitHub user and repository, and any
// caller overrides.
//
// Rendering runs validate → defaults → merge → markup and then registers the
// external buttons.js script with the page's resource registry. Registration
// is keyed by id, so any number of buttons on a page yield one script tag.
//
// Labels are looked up through a render.Translator using symbolic keys
// (github.watch, github.follow, ...) so hosts can localize them; without a
// translator the English defaults are used.
package button
