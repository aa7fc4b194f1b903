package html

import (
	"github.com/quietbyte/htmlmin/dom"
)

// Parser builds a dom.Node tree from a token stream, reproducing the
// error-recovery behavior browsers apply to malformed markup.
//
// Spec references:
// - HTML5 §12.2.6 Tree construction: https://html.spec.whatwg.org/multipage/parsing.html#tree-construction
type Parser struct {
	tokenizer *Tokenizer
	doc       *dom.Node

	stack   []*dom.Node
	nsStack []dom.Namespace

	phase parsePhase
	html  *dom.Node
	head  *dom.Node
	body  *dom.Node
}

type parsePhase int

const (
	phaseInHead parsePhase = iota
	phaseAfterHead
	phaseInBody
)

// headAppropriate lists the elements allowed to accumulate in <head>
// before the tree builder concludes body content has started.
var headAppropriate = map[string]bool{
	"base": true, "link": true, "meta": true, "title": true,
	"style": true, "script": true, "noscript": true,
}

// NewParser creates a new HTML parser.
func NewParser(input string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(input),
		doc:       dom.NewDocument(),
	}
}

// Parse parses the HTML input and returns the document root.
func (p *Parser) Parse() *dom.Node {
	p.html = dom.NewElement("html", dom.HTML)
	p.html.ClosingTag = dom.ClosingOmitted
	p.doc.AppendChild(p.html)

	p.head = dom.NewElement("head", dom.HTML)
	p.head.ClosingTag = dom.ClosingOmitted
	p.html.AppendChild(p.head)

	p.stack = []*dom.Node{p.html, p.head}
	p.nsStack = []dom.Namespace{dom.HTML, dom.HTML}
	p.phase = phaseInHead

	for {
		tok, ok := p.tokenizer.Next()
		if !ok {
			break
		}
		p.dispatch(tok)
	}

	// Anything still open at EOF was never explicitly (or implicitly)
	// closed; its end tag is omitted. <html> and <body> stay on the stack
	// to EOF, and their ClosingTag already records whether an explicit end
	// tag was seen.
	for _, n := range p.stack {
		if n == p.html || n == p.body {
			continue
		}
		if n.ClosingTag == dom.ClosingPresent {
			n.ClosingTag = dom.ClosingOmitted
		}
	}

	return p.doc
}

func (p *Parser) dispatch(tok Token) {
	switch tok.Type {
	case DoctypeToken:
		// The synthesized <html> is always the document's last child; the
		// doctype goes in front of it.
		dt := dom.NewDoctype(tok.Data)
		dt.Parent = p.doc
		n := len(p.doc.Children)
		p.doc.Children = append(p.doc.Children[:n-1:n-1], dt, p.html)
	case ProcessingInstructionToken:
		p.currentNode().AppendChild(dom.NewProcessingInstruction(tok.Data))
	case CommentToken:
		comment := dom.NewComment(tok.Data)
		comment.Bogus = tok.Bogus
		p.currentNode().AppendChild(comment)
	case TextToken, RawTextToken:
		p.handleText(tok)
	case StartTagToken, SelfClosingTagToken:
		p.handleStartTag(tok)
	case EndTagToken:
		p.handleEndTag(tok)
	}
}

func (p *Parser) handleText(tok Token) {
	if tok.Type == RawTextToken {
		elem := p.currentNode()
		elem.AppendChild(dom.NewRawText(tok.Data))
		// The raw-text scan armed by StartRawText already consumed the
		// matching end tag, so the element itself is done; pop it back off
		// the stack.
		if len(p.stack) > 0 && p.stack[len(p.stack)-1] == elem {
			p.stack = p.stack[:len(p.stack)-1]
			p.nsStack = p.nsStack[:len(p.nsStack)-1]
		}
		return
	}

	if (p.phase == phaseInHead || p.phase == phaseAfterHead) && !isAllWhitespace(tok.Data) {
		p.enterBody()
	}

	p.appendText(tok.Data)
}

// appendText merges into a preceding text sibling, per spec.md §3's
// invariant that adjacent text runs never sit as separate nodes.
func (p *Parser) appendText(s string) {
	parent := p.currentNode()
	if n := len(parent.Children); n > 0 && parent.Children[n-1].Type == dom.TextNode {
		parent.Children[n-1].Data += s
		return
	}
	parent.AppendChild(dom.NewText(s))
}

func (p *Parser) handleStartTag(tok Token) {
	tag := tok.Data

	switch tag {
	case "html":
		mergeAttrs(p.html, tok.Attrs)
		return
	case "head":
		if p.phase == phaseInHead {
			mergeAttrs(p.head, tok.Attrs)
			return
		}
		// A <head> seen after head has already closed is dropped; its
		// content still flows into whatever container is currently open.
		return
	case "body":
		p.enterBody()
		mergeAttrs(p.body, tok.Attrs)
		return
	}

	if (p.phase == phaseInHead || p.phase == phaseAfterHead) && !headAppropriate[tag] {
		p.enterBody()
	}

	p.insertElement(tag, tok.Attrs, tok.Type == SelfClosingTagToken)
}

func (p *Parser) handleEndTag(tok Token) {
	tag := tok.Data

	switch tag {
	case "html":
		p.html.ClosingTag = dom.ClosingPresent
		return
	case "head":
		if p.phase == phaseInHead {
			for len(p.stack) > 1 {
				p.popImplicit()
			}
			p.head.ClosingTag = dom.ClosingPresent
			p.phase = phaseAfterHead
		}
		return
	case "body":
		if p.phase == phaseInBody {
			p.body.ClosingTag = dom.ClosingPresent
		}
		return
	}

	if (p.phase == phaseInHead || p.phase == phaseAfterHead) && !headAppropriate[tag] {
		// Nothing outside <head> can be open yet, so this end tag is
		// unmatched: it opens body and becomes an implicit start tag there.
		p.enterBody()
	}

	p.closeElement(tag)
}

// enterBody closes out <head> (and anything still open inside it) and
// opens the synthesized <body>, moving the builder into body content.
func (p *Parser) enterBody() {
	if p.phase == phaseInBody {
		return
	}
	for len(p.stack) > 1 { // keep html
		p.popImplicit()
	}
	p.body = dom.NewElement("body", dom.HTML)
	p.body.ClosingTag = dom.ClosingOmitted
	p.html.AppendChild(p.body)
	p.stack = append(p.stack, p.body)
	p.nsStack = append(p.nsStack, dom.HTML)
	p.phase = phaseInBody
}

// insertElement applies the optional-tag implicit-closure table, resolves
// the element's namespace, and pushes it unless it is void or a foreign
// self-closing tag.
func (p *Parser) insertElement(tagName string, attrs []rawAttr, selfClosingToken bool) *dom.Node {
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.Type != dom.ElementNode || !CanOmitAsBefore(top.Data, tagName) {
			break
		}
		p.popImplicit()
	}

	ns := p.currentChildNamespace()
	switch tagName {
	case "svg":
		ns = dom.SVG
	case "math":
		ns = dom.MathML
	}
	elem := dom.NewElement(tagName, ns)
	mergeAttrs(elem, attrs)

	p.currentNode().AppendChild(elem)

	void := ns == dom.HTML && IsVoidElement(tagName)
	foreignSelfClosing := ns != dom.HTML && selfClosingToken

	switch {
	case void:
		elem.ClosingTag = dom.ClosingVoid
		return elem
	case foreignSelfClosing:
		elem.ClosingTag = dom.ClosingSelfClosing
		return elem
	}

	childNS := ns
	switch {
	case tagName == "svg":
		childNS = dom.SVG
	case tagName == "math":
		childNS = dom.MathML
	case ns != dom.HTML && IsForeignContentIntegrationPoint(tagName):
		childNS = dom.HTML
	case ns == dom.SVG && tagName == "title":
		childNS = dom.HTML
	}

	p.stack = append(p.stack, elem)
	p.nsStack = append(p.nsStack, childNS)

	if IsRawTextElement(tagName) {
		p.tokenizer.StartRawText(tagName, IsEscapableRawText(tagName))
	}

	return elem
}

// closeElement handles an end tag: pop up through a matching open element,
// or — if no match exists — reinterpret the end tag as an implicit start
// tag, per spec.md §4.3's unmatched-closing-tag recovery.
func (p *Parser) closeElement(tagName string) {
	idx := -1
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].Type == dom.ElementNode && p.stack[i].Data == tagName {
			idx = i
			break
		}
	}
	if idx == -1 {
		p.insertElement(tagName, nil, false)
		return
	}

	for len(p.stack)-1 > idx {
		p.popImplicit()
	}
	target := p.stack[idx]
	p.stack = p.stack[:idx]
	p.nsStack = p.nsStack[:idx]
	target.ClosingTag = dom.ClosingPresent
}

// popImplicit pops the open-element stack's top, marking the popped
// element's closing tag omitted unless it was already otherwise decided.
func (p *Parser) popImplicit() *dom.Node {
	n := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.nsStack = p.nsStack[:len(p.nsStack)-1]
	if n.ClosingTag == dom.ClosingPresent {
		n.ClosingTag = dom.ClosingOmitted
	}
	return n
}

func (p *Parser) currentNode() *dom.Node {
	if len(p.stack) == 0 {
		return p.doc
	}
	return p.stack[len(p.stack)-1]
}

func (p *Parser) currentChildNamespace() dom.Namespace {
	if len(p.nsStack) == 0 {
		return dom.HTML
	}
	return p.nsStack[len(p.nsStack)-1]
}

// mergeAttrs applies attrs to elem, first occurrence wins on duplicate
// names (the tokenizer preserves source order and duplicates).
func mergeAttrs(elem *dom.Node, attrs []rawAttr) {
	for _, a := range attrs {
		if elem.HasAttribute(a.name) {
			continue
		}
		if a.hasValue {
			elem.SetAttribute(a.name, a.value)
		} else {
			elem.SetAttributeNoValue(a.name)
		}
	}
}

func isAllWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f':
			continue
		default:
			return false
		}
	}
	return true
}

// Parse is a convenience function to parse an HTML document in one call.
func Parse(input string) *dom.Node {
	return NewParser(input).Parse()
}
