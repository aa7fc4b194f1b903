// Package dom provides the node tree structure produced by the HTML tree
// builder and consumed by the minification passes.
//
// Spec references:
// - HTML5 §12.2.6 Tree construction: https://html.spec.whatwg.org/multipage/parsing.html#tree-construction
package dom

// NodeType represents the type of a node in the tree.
type NodeType int

const (
	// DocumentNode is the root of every tree.
	DocumentNode NodeType = iota
	// ElementNode represents an HTML/SVG/MathML element.
	ElementNode
	// TextNode represents decoded text content.
	TextNode
	// CommentNode represents an HTML comment.
	CommentNode
	// DoctypeNode represents a DOCTYPE declaration.
	DoctypeNode
	// ProcessingInstructionNode represents a "<?...?>" token.
	ProcessingInstructionNode
	// RawTextNode represents the opaque contents of a raw-text element
	// (script, style, textarea, title, ...). Never re-parsed for markup.
	RawTextNode
)

// Namespace is the tag namespace an element was created in.
type Namespace int

const (
	// HTML is the default namespace.
	HTML Namespace = iota
	// SVG is entered by an <svg> start tag and inherited by descendants.
	SVG
	// MathML is entered by a <math> start tag and inherited by descendants.
	MathML
)

// String returns a human-readable namespace name, used by tests and logging.
func (ns Namespace) String() string {
	switch ns {
	case SVG:
		return "svg"
	case MathML:
		return "mathml"
	default:
		return "html"
	}
}

// ClosingTag records how an element's closing tag should be treated.
type ClosingTag int

const (
	// ClosingPresent is a normal element with a matching end tag.
	ClosingPresent ClosingTag = iota
	// ClosingOmitted marks an element whose end tag was not written in the
	// source: it was closed implicitly, or was still open at EOF.
	ClosingOmitted
	// ClosingSelfClosing marks "<tag/>" syntax, only meaningful outside HTML.
	ClosingSelfClosing
	// ClosingVoid marks a void element (br, img, ...): it never has children
	// or a closing tag, regardless of how it appeared in the source.
	ClosingVoid
)

// AttrValue is one attribute's raw (already entity-decoded, unquoted)
// value. HasValue distinguishes `name` (sentinel, no "=" at all in the
// source) from `name=""` (an explicit empty string). The minifier renders
// both the same way: dropped, or kept as the bare name.
type AttrValue struct {
	Value    string
	HasValue bool
}

// Node is a single node in the parsed tree. Element nodes hold attributes
// and children; Text/Comment/Doctype/ProcessingInstruction/RawText nodes
// hold their payload in Data and never have children.
type Node struct {
	Type       NodeType
	Namespace  Namespace
	Data       string // tag name, text, comment body, doctype body, or raw text
	Attributes map[string]AttrValue
	AttrOrder  []string // attribute names in first-seen source order
	ClosingTag ClosingTag
	Bogus      bool // set on a CommentNode built from a "<!...>" bogus comment
	Children   []*Node
	Parent     *Node
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return &Node{Type: DocumentNode, Data: "#document"}
}

// NewElement creates a new element node in the given namespace.
func NewElement(tagName string, ns Namespace) *Node {
	return &Node{
		Type:       ElementNode,
		Namespace:  ns,
		Data:       tagName,
		Attributes: make(map[string]AttrValue),
		ClosingTag: ClosingPresent,
	}
}

// NewText creates a new, already entity-decoded text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Data: text}
}

// NewComment creates a new comment node.
func NewComment(body string) *Node {
	return &Node{Type: CommentNode, Data: body}
}

// NewDoctype creates a new doctype node.
func NewDoctype(body string) *Node {
	return &Node{Type: DoctypeNode, Data: body}
}

// NewProcessingInstruction creates a new processing-instruction node.
func NewProcessingInstruction(body string) *Node {
	return &Node{Type: ProcessingInstructionNode, Data: body}
}

// NewRawText creates a new raw-text node holding opaque element contents.
func NewRawText(body string) *Node {
	return &Node{Type: RawTextNode, Data: body}
}

// AppendChild adds a child node to this node, wiring up Parent.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// GetAttribute returns the value of an attribute, or empty string if absent.
// It does not distinguish an absent attribute from a present-but-empty one;
// use HasAttribute for that.
func (n *Node) GetAttribute(name string) string {
	if n.Attributes == nil {
		return ""
	}
	return n.Attributes[name].Value
}

// HasAttribute reports whether the attribute is present at all.
func (n *Node) HasAttribute(name string) bool {
	if n.Attributes == nil {
		return false
	}
	_, ok := n.Attributes[name]
	return ok
}

// SetAttribute sets an attribute with an explicit value (name="value", or
// name="" for an explicit empty string).
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]AttrValue)
	}
	if _, exists := n.Attributes[name]; !exists {
		n.AttrOrder = append(n.AttrOrder, name)
	}
	n.Attributes[name] = AttrValue{Value: value, HasValue: true}
}

// SetAttributeNoValue sets a value-less attribute (bare `name`, no "=" in
// the source).
func (n *Node) SetAttributeNoValue(name string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]AttrValue)
	}
	if _, exists := n.Attributes[name]; !exists {
		n.AttrOrder = append(n.AttrOrder, name)
	}
	n.Attributes[name] = AttrValue{HasValue: false}
}

// RemoveAttribute deletes an attribute, if present.
func (n *Node) RemoveAttribute(name string) {
	if _, ok := n.Attributes[name]; !ok {
		return
	}
	delete(n.Attributes, name)
	for i, a := range n.AttrOrder {
		if a == name {
			n.AttrOrder = append(n.AttrOrder[:i], n.AttrOrder[i+1:]...)
			break
		}
	}
}

// ID returns the element's id attribute.
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// Classes returns the element's class names, split on runs of spaces.
func (n *Node) Classes() []string {
	class := n.GetAttribute("class")
	if class == "" {
		return nil
	}
	classes := []string{}
	start := 0
	for i := 0; i <= len(class); i++ {
		if i == len(class) || class[i] == ' ' {
			if i > start {
				classes = append(classes, class[start:i])
			}
			start = i + 1
		}
	}
	if len(classes) == 0 {
		return nil
	}
	return classes
}
