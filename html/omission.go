package html

// Optional-tag tables (HTML5 §13.1.2 "Optional tags"). These are shared by
// two call sites that need the same fact: the tree builder uses
// CanOmitAsBefore to decide when an *unclosed* open element must be
// implicitly popped on seeing a new start tag, and the minifier's emitter
// uses the very same function to decide whether an *explicit* closing tag
// in the source can be safely dropped. They are the same rule viewed from
// two directions, so there is exactly one table.

// blockLevelElements is the set tested against the "</p> before any block
// element except <a>" rule.
var blockLevelElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"details": true, "div": true, "dl": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "main": true, "menu": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"ul": true,
}

// preserveLastP is the set of containers where a trailing <p> must keep its
// closing tag, because eliding it would let the container's own closing
// tag (or the document end) implicitly close the paragraph too early.
var preserveLastP = map[string]bool{
	"a": true, "audio": true, "del": true, "ins": true, "map": true,
	"noscript": true, "video": true,
}

// CanOmitAsBefore reports whether an open element named tag can have its
// closing tag omitted because the next sibling start tag is nextTag.
func CanOmitAsBefore(tag, nextTag string) bool {
	switch tag {
	case "li":
		return nextTag == "li"
	case "dt", "dd":
		return nextTag == "dt" || nextTag == "dd"
	case "p":
		return blockLevelElements[nextTag] && nextTag != "a"
	case "option":
		return nextTag == "option" || nextTag == "optgroup"
	case "optgroup":
		return nextTag == "optgroup"
	case "tr":
		return nextTag == "tr"
	case "td", "th":
		return nextTag == "td" || nextTag == "th" || nextTag == "tr"
	case "thead", "tbody":
		return nextTag == "tbody" || nextTag == "tfoot"
	case "tfoot":
		return false
	case "colgroup":
		return nextTag != "col" && nextTag != ""
	case "rt", "rp":
		return nextTag == "rt" || nextTag == "rp"
	case "head":
		return nextTag == "body"
	}
	return false
}

// CanOmitAsLastNode reports whether an element named tag, when it is the
// last child of a parent named parentTag, can have its closing tag omitted.
func CanOmitAsLastNode(parentTag, tag string) bool {
	switch tag {
	case "li":
		return parentTag == "ul" || parentTag == "ol" || parentTag == "menu"
	case "p":
		return !preserveLastP[parentTag]
	case "dd", "dt":
		return parentTag == "dl"
	case "option":
		return parentTag == "select" || parentTag == "optgroup" || parentTag == "datalist"
	case "optgroup":
		return parentTag == "select"
	case "tr":
		return parentTag == "table" || parentTag == "thead" || parentTag == "tbody" || parentTag == "tfoot"
	case "td", "th":
		return parentTag == "tr"
	case "thead", "tbody", "tfoot":
		return parentTag == "table"
	case "colgroup":
		return parentTag == "table"
	case "rt", "rp":
		return parentTag == "ruby"
	case "head", "body":
		return parentTag == "html"
	case "html":
		return true
	}
	return false
}
