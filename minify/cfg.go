// Package minify transforms a parsed HTML document into the smallest byte
// sequence that renders identically, per the tree shape html.Parse builds.
package minify

// Cfg holds the independent flags that control minification behavior. The
// zero value is the default configuration. The Keep* flags and
// EnsureSpecCompliantUnquotedAttributeValues opt OUT of a specific
// optimization when set to true; MinifyJS/MinifyCSS opt IN to a delegate
// pass, and RemoveBangs/RemoveProcessingInstructions opt IN to dropping
// those tokens, so the zero value keeps bogus comments and processing
// instructions and runs no delegate.
type Cfg struct {
	// KeepHTMLAndHeadOpeningTags disables omission of empty <html>/<head>
	// opening tags.
	KeepHTMLAndHeadOpeningTags bool
	// KeepClosingTags disables all closing-tag omission.
	KeepClosingTags bool
	// KeepSpacesBetweenAttributes always emits a separating space between
	// attributes, even where the preceding quote would suffice.
	KeepSpacesBetweenAttributes bool
	// KeepComments preserves HTML comments instead of dropping them.
	KeepComments bool
	// EnsureSpecCompliantUnquotedAttributeValues restricts the unquoted
	// attribute-value encoding to the stricter WHATWG-compliant subset.
	EnsureSpecCompliantUnquotedAttributeValues bool
	// MinifyJS passes <script> contents with an empty or JavaScript MIME
	// type through the JS delegate.
	MinifyJS bool
	// MinifyCSS passes <style> contents and style="" attribute values
	// through the CSS delegate.
	MinifyCSS bool
	// RemoveBangs drops "<!...>" bogus-comment tokens.
	RemoveBangs bool
	// RemoveProcessingInstructions drops "<?...?>" tokens.
	RemoveProcessingInstructions bool
}
