package minify

import "github.com/quietbyte/htmlmin/dom"

// whitespaceClass describes how a tag name treats whitespace in its own
// text content and around its children (spec.md §4.4).
type whitespaceClass int

const (
	// classContent is the default: runs of whitespace collapse to a single
	// space, and leading/trailing whitespace at a block boundary trims.
	classContent whitespaceClass = iota
	// classContentFirst is like classContent but the element itself never
	// sits flush against a line boundary (inline-ish tags: a, span, b, ...).
	classContentFirst
	// classFormatted preserves whitespace verbatim (pre, textarea).
	classFormatted
	// classSensitive collapses runs but never trims at the edges, because
	// removing a boundary space would change rendering (inline elements
	// adjacent to text).
	classSensitive
	// classDestroyWhole drops ALL text-node children outright: the element
	// only ever contains other specific structural children (table, ul, ...).
	classDestroyWhole
)

var formattedTags = map[string]bool{
	"pre": true, "textarea": true, "script": true, "style": true,
}

var destroyWholeTags = map[string]bool{
	"html": true, "head": true, "table": true, "thead": true, "tbody": true,
	"tfoot": true, "tr": true, "colgroup": true, "ul": true, "ol": true,
	"dl": true, "select": true, "optgroup": true,
}

var contentFirstTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "span": true,
	"strong": true, "em": true, "i": true, "u": true, "s": true, "small": true,
	"sub": true, "sup": true, "mark": true, "code": true, "kbd": true,
	"q": true, "cite": true, "time": true, "var": true, "samp": true,
	"button": true, "p": true,
}

func classify(tagName string, ns dom.Namespace) whitespaceClass {
	if ns != dom.HTML {
		return classSensitive
	}
	if formattedTags[tagName] {
		return classFormatted
	}
	if destroyWholeTags[tagName] {
		return classDestroyWhole
	}
	if contentFirstTags[tagName] {
		return classContentFirst
	}
	return classContent
}

// minifyWhitespace walks the document, collapsing and trimming text runs
// according to each element's whitespace class. The verbatim state of an
// HTML-namespace <pre>, <textarea>, <script> or <style> propagates to every
// descendant regardless of the descendant's own class (spec.md §4.4's <pre>
// propagation rule).
func minifyWhitespace(doc *dom.Node) {
	rewriteChildren(doc, false)
}

func rewriteChildren(n *dom.Node, formatted bool) {
	class := classOf(n, formatted)

	if class == classDestroyWhole {
		destroyWhole(n)
	}

	childFormatted := formatted || (n.Type == dom.ElementNode && formattedTags[n.Data] && n.Namespace == dom.HTML)

	for _, child := range n.Children {
		if child.Type == dom.ElementNode {
			rewriteChildren(child, childFormatted)
		}
	}

	if !childFormatted && n.Type == dom.ElementNode {
		collapseChildren(n, class)
	}
}

func classOf(n *dom.Node, formatted bool) whitespaceClass {
	if formatted {
		return classFormatted
	}
	if n.Type != dom.ElementNode {
		return classContent
	}
	return classify(n.Data, n.Namespace)
}

// destroyWhole removes whitespace-only text children from a structural
// container; non-whitespace text (malformed input) is left alone rather
// than silently discarded.
func destroyWhole(n *dom.Node) {
	kept := n.Children[:0]
	for _, c := range n.Children {
		if c.Type == dom.TextNode && isAllWhitespace(c.Data) {
			continue
		}
		kept = append(kept, c)
	}
	n.Children = kept
}

// collapseChildren collapses whitespace runs within each text child and,
// for classContent/classDestroyWhole parents, trims the leading edge of the
// first text child and the trailing edge of the last (a block boundary
// never needs a space next to it).
func collapseChildren(n *dom.Node, class whitespaceClass) {
	for _, c := range n.Children {
		if c.Type != dom.TextNode {
			continue
		}
		c.Data = collapseRuns(c.Data)
	}

	if class == classContentFirst || class == classSensitive {
		return
	}
	if len(n.Children) == 0 {
		return
	}
	if first := n.Children[0]; first.Type == dom.TextNode {
		first.Data = trimLeadingSpace(first.Data)
	}
	if last := n.Children[len(n.Children)-1]; last.Type == dom.TextNode {
		last.Data = trimTrailingSpace(last.Data)
	}
}

// collapseRuns replaces every run of HTML whitespace with a single space,
// without trimming the edges (adjacency to a sibling element still matters).
func collapseRuns(s string) string {
	out := make([]byte, 0, len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		if isHTMLSpace(s[i]) {
			inRun = true
			continue
		}
		if inRun {
			out = append(out, ' ')
			inRun = false
		}
		out = append(out, s[i])
	}
	if inRun {
		out = append(out, ' ')
	}
	return string(out)
}

func trimLeadingSpace(s string) string {
	if len(s) > 0 && s[0] == ' ' {
		return s[1:]
	}
	return s
}

func trimTrailingSpace(s string) string {
	if n := len(s); n > 0 && s[n-1] == ' ' {
		return s[:n-1]
	}
	return s
}

func isAllWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHTMLSpace(s[i]) {
			return false
		}
	}
	return true
}
