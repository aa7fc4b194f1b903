package minify

import (
	"strings"

	"github.com/dop251/goja"
)

// minifyJS validates that a <script> body is syntactically valid
// JavaScript by compiling it with goja and, on success, passes it through
// with leading/trailing whitespace trimmed. Byte-level JS minification
// (identifier shortening, dead-code elimination, ...) is out of scope; the
// delegate's job is to avoid corrupting a script it cannot safely shrink.
func minifyJS(src string) (string, bool) {
	if strings.TrimSpace(src) == "" {
		return "", true
	}
	if _, err := goja.Compile("", src, false); err != nil {
		return "", false
	}
	return strings.TrimSpace(src), true
}
