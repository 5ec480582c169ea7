package button

import (
	"html"
	"sort"
	"strings"
)

// attributeOrder fixes the position of common attributes; everything else
// follows alphabetically so output is byte-stable.
var attributeOrder = []string{
	"type", "id", "class", "name", "value", "href", "src", "srcset", "form",
	"action", "method", "selected", "checked", "readonly", "disabled",
	"multiple", "size", "maxlength", "width", "height", "rows", "cols",
	"alt", "title", "rel", "media",
}

// AddCSSClass appends class to the class attribute unless already present.
func AddCSSClass(attrs map[string]string, class string) {
	class = strings.TrimSpace(class)
	if attrs == nil || class == "" {
		return
	}
	tokens := strings.Fields(attrs["class"])
	for _, token := range tokens {
		if token == class {
			attrs["class"] = strings.Join(tokens, " ")
			return
		}
	}
	attrs["class"] = strings.Join(append(tokens, class), " ")
}

// AddCSSStyle merges the declarations in style into the style attribute.
// Properties in style replace existing ones of the same name; unrelated
// declarations keep their order.
func AddCSSStyle(attrs map[string]string, style string) {
	if attrs == nil {
		return
	}
	additions := parseStyle(style)
	if len(additions) == 0 {
		return
	}
	decls := parseStyle(attrs["style"])
	for _, add := range additions {
		replaced := false
		for i := range decls {
			if decls[i].property == add.property {
				decls[i].value = add.value
				replaced = true
				break
			}
		}
		if !replaced {
			decls = append(decls, add)
		}
	}

	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.property+":"+decl.value)
	}
	attrs["style"] = strings.Join(parts, ";")
}

type styleDecl struct {
	property string
	value    string
}

func parseStyle(raw string) []styleDecl {
	var out []styleDecl
	for _, chunk := range strings.Split(raw, ";") {
		property, value, ok := strings.Cut(chunk, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" || value == "" {
			continue
		}
		out = append(out, styleDecl{property: property, value: value})
	}
	return out
}

// renderTag writes <name attrs>content</name> with escaped values and
// content. Attributes with invalid names are skipped.
func renderTag(name, content string, attrs map[string]string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, attr := range orderedAttributes(attrs) {
		b.WriteByte(' ')
		b.WriteString(attr)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[attr]))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(html.EscapeString(content))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

func orderedAttributes(attrs map[string]string) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if validAttributeName(name) {
			names = append(names, name)
		}
	}

	rank := make(map[string]int, len(attributeOrder))
	for i, name := range attributeOrder {
		rank[name] = i
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iRanked := rank[names[i]]
		rj, jRanked := rank[names[j]]
		switch {
		case iRanked && jRanked:
			return ri < rj
		case iRanked != jRanked:
			return iRanked
		default:
			return names[i] < names[j]
		}
	})
	return names
}

func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case strings.ContainsRune("\"'<>/=`", r):
			return false
		}
	}
	return true
}
