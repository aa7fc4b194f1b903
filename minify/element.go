package minify

import (
	"sort"
	"strings"

	"github.com/quietbyte/htmlmin/dom"
	"github.com/quietbyte/htmlmin/html"
)

// spacing tracks what the emitter just wrote inside an opening tag's
// attribute list, so it knows whether a separating space is mandatory
// before the next attribute (spec.md §4.6's inter-attribute spacing rule).
type spacing int

const (
	spacingStart spacing = iota
	spacingAfterNoValue
	spacingAfterQuoted
	spacingAfterUnquoted
)

// emitDocument renders the full tree back to minified HTML text.
func emitDocument(doc *dom.Node, cfg Cfg) []byte {
	var b strings.Builder
	emitChildren(&b, doc, cfg)
	return []byte(b.String())
}

func emitChildren(b *strings.Builder, n *dom.Node, cfg Cfg) {
	for i, child := range n.Children {
		var next *dom.Node
		if i+1 < len(n.Children) {
			next = n.Children[i+1]
		}
		emitNode(b, child, n, next, cfg)
	}
}

func emitNode(b *strings.Builder, n, parent, next *dom.Node, cfg Cfg) {
	switch n.Type {
	case dom.DoctypeNode:
		b.WriteString("<!DOCTYPE")
		if n.Data != "" {
			b.WriteByte(' ')
			b.WriteString(n.Data)
		}
		b.WriteByte('>')
	case dom.ProcessingInstructionNode:
		if cfg.RemoveProcessingInstructions {
			return
		}
		b.WriteString("<?")
		b.WriteString(n.Data)
		b.WriteString("?>")
	case dom.CommentNode:
		if n.Bogus {
			if cfg.RemoveBangs {
				return
			}
			b.WriteString("<!")
			b.WriteString(n.Data)
			b.WriteByte('>')
			return
		}
		if !cfg.KeepComments {
			return
		}
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case dom.TextNode:
		b.WriteString(html.EncodeText(n.Data))
	case dom.RawTextNode:
		b.WriteString(n.Data)
	case dom.ElementNode:
		emitElement(b, n, parent, next, cfg)
	}
}

// emitElement writes an element's opening tag, children, and (if needed)
// closing tag, applying both the opening-tag and closing-tag omission
// rules.
func emitElement(b *strings.Builder, n, parent, next *dom.Node, cfg Cfg) {
	if !omitOpeningTag(n, cfg) {
		b.WriteByte('<')
		b.WriteString(n.Data)
		lastUnquoted := emitAttrs(b, n, cfg)
		if n.ClosingTag == dom.ClosingSelfClosing {
			if lastUnquoted {
				b.WriteByte(' ')
			}
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
	}

	if n.ClosingTag == dom.ClosingVoid {
		return
	}

	emitChildren(b, n, cfg)

	if omitClosingTag(n, parent, next, cfg) {
		return
	}
	b.WriteString("</")
	b.WriteString(n.Data)
	b.WriteByte('>')
}

// omitOpeningTag drops the (otherwise mandatory) opening tag for an
// attribute-free <html> or <head>, per spec.md §4.6.
func omitOpeningTag(n *dom.Node, cfg Cfg) bool {
	if cfg.KeepHTMLAndHeadOpeningTags {
		return false
	}
	if n.Data != "html" && n.Data != "head" {
		return false
	}
	return len(n.AttrOrder) == 0
}

// omitClosingTag decides purely from the current safety tables whether a
// closing tag can be dropped, independent of how the source originally
// wrote it (ClosingPresent vs ClosingOmitted carry no weight here — both
// are exactly as safe to omit whenever the heuristic holds).
func omitClosingTag(n, parent, next *dom.Node, cfg Cfg) bool {
	if n.ClosingTag == dom.ClosingVoid || n.ClosingTag == dom.ClosingSelfClosing {
		return true
	}
	if cfg.KeepClosingTags {
		return false
	}
	if next != nil && next.Type == dom.ElementNode && html.CanOmitAsBefore(n.Data, next.Data) {
		return true
	}
	if (next == nil || isTrailingWhitespace(next)) && parent != nil &&
		html.CanOmitAsLastNode(parent.Data, n.Data) {
		return true
	}
	return false
}

func isTrailingWhitespace(n *dom.Node) bool {
	return n.Type == dom.TextNode && isAllWhitespace(n.Data)
}

// emitAttrs writes an element's attribute list, applying renderAttribute's
// drop/keep/encode decision to each and separating them with the minimum
// safe amount of whitespace. Attributes are emitted in lexicographic order
// by name, not source order, per the attribute-determinism requirement. It
// reports whether the last attribute written ended unquoted, so a
// self-closing "/>" can insert the space that would otherwise be absorbed
// into the value.
func emitAttrs(b *strings.Builder, n *dom.Node, cfg Cfg) bool {
	names := make([]string, len(n.AttrOrder))
	copy(names, n.AttrOrder)
	sort.Strings(names)

	state := spacingStart
	for _, a := range names {
		v := n.Attributes[a]
		result, ok := renderAttribute(n.Data, a, v.Value, v.HasValue, cfg)
		if !ok {
			continue
		}

		if state == spacingStart || cfg.KeepSpacesBetweenAttributes || needsSeparatingSpace(state) {
			b.WriteByte(' ')
		}
		b.WriteString(result.body)

		if result.endsUnquoted {
			if result.body == result.name {
				state = spacingAfterNoValue
			} else {
				state = spacingAfterUnquoted
			}
		} else {
			state = spacingAfterQuoted
		}
	}
	return state == spacingAfterUnquoted || state == spacingAfterNoValue
}

// needsSeparatingSpace reports whether the previous attribute's ending
// requires a space before the next attribute starts. A quoted value's
// closing quote already disambiguates the boundary; a bare name or an
// unquoted value does not, so the space is mandatory there.
func needsSeparatingSpace(state spacing) bool {
	return state == spacingAfterNoValue || state == spacingAfterUnquoted
}
