package minify

import "strings"

// booleanAttributes is the set of attributes whose mere presence conveys
// truth; any value they carry is discarded on emission (spec.md §4.5,
// glossary "Boolean attribute").
var booleanAttributes = map[string]bool{
	"allowfullscreen": true, "async": true, "autofocus": true,
	"autoplay": true, "checked": true, "controls": true, "default": true,
	"defer": true, "disabled": true, "formnovalidate": true, "hidden": true,
	"inert": true, "ismap": true, "itemscope": true, "loop": true,
	"multiple": true, "muted": true, "nomodule": true, "novalidate": true,
	"open": true, "playsinline": true, "readonly": true, "required": true,
	"reversed": true, "selected": true,
}

// defaultAttrKey packs a (tag, attribute) pair for the default-value table.
type defaultAttrKey struct {
	tag, name string
}

// defaultAttributeValues maps a (tag, attribute) pair to the value that
// can be dropped entirely because it is what the attribute already
// defaults to. Comparison against the actual value is case-insensitive.
var defaultAttributeValues = map[defaultAttrKey]string{
	{"a", "target"}:        "_self",
	{"area", "shape"}:      "rect",
	{"button", "type"}:     "submit",
	{"form", "method"}:     "get",
	{"form", "enctype"}:    "application/x-www-form-urlencoded",
	{"input", "type"}:      "text",
	{"script", "type"}:     "application/javascript",
	{"script", "language"}: "javascript",
	{"style", "type"}:      "text/css",
	{"link", "type"}:       "text/css",
	{"textarea", "wrap"}:   "soft",
}

func defaultAttributeValue(tag, name string) (string, bool) {
	v, ok := defaultAttributeValues[defaultAttrKey{tag, name}]
	return v, ok
}

// collapseAndTrimAttributes is the set of attributes whose value is
// whitespace-normalized (internal runs collapsed to a single space, then
// trimmed) before any other processing. A value that collapses to empty
// is then dropped unless the attribute is also in preserveWhenEmpty.
var collapseAndTrimAttributes = map[string]bool{
	"class": true, "d": true, "points": true, "viewbox": true,
}

// preserveWhenEmptyAttributes keeps an attribute even when its value is
// the empty string (e.g. alt="" on <img> is meaningful accessibility
// markup, not a no-op).
var preserveWhenEmptyAttributes = map[string]bool{
	"alt": true, "value": true, "title": true,
}

func isBooleanAttribute(name string) bool {
	return booleanAttributes[strings.ToLower(name)]
}

func shouldCollapseAttribute(name string) bool {
	return collapseAndTrimAttributes[strings.ToLower(name)]
}

func preserveWhenEmpty(name string) bool {
	return preserveWhenEmptyAttributes[strings.ToLower(name)]
}

// collapseWhitespace replaces every run of HTML whitespace with a single
// space and trims the result, per spec.md §4.5.2.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	wroteAny := false
	for i := 0; i < len(s); i++ {
		if isHTMLSpace(s[i]) {
			inRun = true
			continue
		}
		if inRun && wroteAny {
			b.WriteByte(' ')
		}
		inRun = false
		wroteAny = true
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHTMLSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
