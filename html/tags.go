package html

// Static tag-name metadata tables. All lookups are by lowercased tag name,
// the form the tokenizer always normalizes to before these tables ever see
// a name.

// voidElements never have content or a closing tag (HTML5 §12.1.2).
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tagName is a void element.
func IsVoidElement(tagName string) bool {
	return voidElements[tagName]
}

// rawTextElements never have their contents re-parsed as markup. Entity
// decoding does not apply inside them, except for the escapable subset.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "textarea": true, "title": true,
	"iframe": true, "noscript": true, "noframes": true, "xmp": true,
	"plaintext": true,
}

// IsRawTextElement reports whether tagName's content is opaque to the
// tokenizer (scanned as raw text until its matching end tag).
func IsRawTextElement(tagName string) bool {
	return rawTextElements[tagName]
}

// escapableRawTextElements are raw text elements that still decode entities.
var escapableRawTextElements = map[string]bool{
	"textarea": true, "title": true,
}

// IsEscapableRawText reports whether entity references inside tagName's
// content should still be decoded.
func IsEscapableRawText(tagName string) bool {
	return escapableRawTextElements[tagName]
}

// foreignResetElements re-enter the HTML namespace for their subtree even
// while inside an <svg> or <math> ancestor (HTML5 foreign-content
// integration points). This is intentionally partial: only the
// best-known integration points are covered, per spec's own note that
// full foreign-content fidelity is optional.
var foreignResetElements = map[string]bool{
	"foreignobject": true,
	"desc":          true,
}

// IsForeignContentIntegrationPoint reports whether tagName resets the
// namespace back to HTML for its subtree.
func IsForeignContentIntegrationPoint(tagName string) bool {
	return foreignResetElements[tagName]
}
