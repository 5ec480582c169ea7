package resources

import (
	"html"
	"sort"
	"strings"
)

// Position selects where a host page emits a script tag.
type Position int

const (
	// PositionEnd emits the script right before </body>. It is the zero value.
	PositionEnd Position = iota
	// PositionHead emits the script inside <head>.
	PositionHead
)

func (p Position) String() string {
	switch p {
	case PositionHead:
		return "head"
	default:
		return "end"
	}
}

// Script describes an external or inline JavaScript dependency a widget needs
// emitted once per page.
type Script struct {
	ID       string
	Src      string
	Type     string
	Inline   string
	Async    bool
	Defer    bool
	Module   bool
	Position Position
	Attrs    map[string]string
}

// Key is the identity used for deduplication: the ID when set, otherwise the
// source URL.
func (s Script) Key() string {
	if id := strings.TrimSpace(s.ID); id != "" {
		return id
	}
	return strings.TrimSpace(s.Src)
}

// Tag renders the script element with escaped attribute values. Inline bodies
// are written verbatim.
func (s Script) Tag() string {
	var b strings.Builder
	b.WriteString("<script")

	writeAttr := func(name, value string) {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteByte('"')
	}

	if id := strings.TrimSpace(s.ID); id != "" {
		writeAttr("id", id)
	}
	if src := strings.TrimSpace(s.Src); src != "" {
		writeAttr("src", src)
	}
	switch {
	case s.Module:
		writeAttr("type", "module")
	case strings.TrimSpace(s.Type) != "":
		writeAttr("type", strings.TrimSpace(s.Type))
	}

	if len(s.Attrs) > 0 {
		names := make([]string, 0, len(s.Attrs))
		for name := range s.Attrs {
			switch name = strings.TrimSpace(name); name {
			case "", "id", "src", "type", "async", "defer":
				continue
			}
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			writeAttr(name, s.Attrs[name])
		}
	}

	if s.Async {
		b.WriteString(" async")
	}
	if s.Defer {
		b.WriteString(" defer")
	}
	b.WriteByte('>')
	if s.Src == "" {
		b.WriteString(s.Inline)
	}
	b.WriteString("</script>")
	return b.String()
}

func cloneScript(s Script) Script {
	if len(s.Attrs) == 0 {
		s.Attrs = nil
		return s
	}
	attrs := make(map[string]string, len(s.Attrs))
	for k, v := range s.Attrs {
		attrs[k] = v
	}
	s.Attrs = attrs
	return s
}
