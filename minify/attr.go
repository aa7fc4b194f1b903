package minify

import (
	"strings"

	"github.com/quietbyte/htmlmin/html"
)

// attrResult is one attribute fully rendered for emission, including
// whether its body ends unquoted — the emitter's spacing state machine
// needs that to know whether a mandatory separating space follows.
type attrResult struct {
	name         string
	body         string // e.g. `id=x`, `id="x"`, or bare `disabled`
	endsUnquoted bool
}

// renderAttribute decides whether tag/name/value survives minification at
// all and, if so, renders its final textual form. ok=false means the
// attribute should be dropped entirely.
func renderAttribute(tag, name, value string, hasValue bool, cfg Cfg) (attrResult, bool) {
	if isBooleanAttribute(name) {
		return attrResult{name: name, body: name, endsUnquoted: true}, true
	}

	if shouldCollapseAttribute(name) {
		value = collapseWhitespace(value)
	}
	if !hasValue {
		value = ""
	}

	if dv, ok := defaultAttributeValue(tag, name); ok && hasValue && strings.EqualFold(value, dv) {
		return attrResult{}, false
	}
	if value == "" && !preserveWhenEmpty(name) {
		return attrResult{}, false
	}

	if value == "" {
		return attrResult{name: name, body: name, endsUnquoted: true}, true
	}

	body, unquoted := encodeAttrValue(name, value, cfg)
	return attrResult{name: name, body: body, endsUnquoted: unquoted}, true
}

// encodeAttrValue picks the shortest of the unquoted/double/single-quoted
// encodings, preferring unquoted, then double, then single on a length tie
// (spec.md §4.5's encoding-selection rule).
func encodeAttrValue(name, value string, cfg Cfg) (string, bool) {
	double := name + `="` + html.EncodeQuotedAttrValue(value, '"') + `"`

	if !canUnquote(value, cfg) {
		single := name + `='` + html.EncodeQuotedAttrValue(value, '\'') + `'`
		if len(single) < len(double) {
			return single, false
		}
		return double, false
	}

	unquoted := name + "=" + html.EncodeUnquotedAttrValue(value)
	if len(unquoted) <= len(double) {
		return unquoted, true
	}
	return double, false
}

// canUnquote reports whether value can be written without surrounding
// quotes. By default only whitespace, '>' and a leading '"' or '\'' are
// banned: whitespace or '>' would end the value or the tag if left bare, and
// a leading quote would be read back as the start of a quoted value. Neither
// the real browser tokenizers nor this module's own encoder need the rest of
// the WHATWG restricted set to round-trip correctly.
// cfg.EnsureSpecCompliantUnquotedAttributeValues
// additionally bans '"', '\'', '=', '<', '`', and a leading '=', matching
// the stricter WHATWG-conformant subset (spec.md §4.5).
func canUnquote(value string, cfg Cfg) bool {
	if value == "" {
		return false
	}
	if value[0] == '"' || value[0] == '\'' {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isHTMLSpace(c) || c == '>' {
			return false
		}
		if cfg.EnsureSpecCompliantUnquotedAttributeValues {
			switch c {
			case '"', '\'', '=', '<', '`':
				return false
			}
		}
	}
	if cfg.EnsureSpecCompliantUnquotedAttributeValues && value[0] == '=' {
		return false
	}
	return true
}
