package minify

import (
	"strings"

	"github.com/quietbyte/htmlmin/css"
)

// minifyCSSStylesheet re-serializes a full <style> element's contents
// through the adapted CSS tokenizer, dropping comments (the tokenizer
// already does this in readComment) and collapsing whitespace to the
// minimum separator a word-like token pair actually needs.
func minifyCSSStylesheet(src string) (string, bool) {
	return reserializeCSS(src)
}

// minifyCSSDeclarations re-serializes a style="" attribute value: the
// tokenizer treats ';' and '{'/'}' as ordinary punctuation, so a bare
// declaration list tokenizes the same as a full rule's body. The one
// difference from a stylesheet body is a pointless trailing ';', which is
// dropped since there is no following '}' to make it load-bearing.
func minifyCSSDeclarations(src string) (string, bool) {
	out, ok := reserializeCSS(src)
	if !ok {
		return "", false
	}
	return strings.TrimSuffix(out, ";"), true
}

// reserializeCSS walks the token stream once, refusing (ok=false) on any
// construct the simplified tokenizer cannot round-trip faithfully — an
// ErrorToken, or an at-rule, which spec.md leaves out of scope for this
// delegate. The caller falls back to the original bytes on ok=false.
func reserializeCSS(src string) (string, bool) {
	t := css.NewTokenizer(src)
	buf := make([]byte, 0, len(src))
	prevType := css.EOFToken

	for {
		tok := t.Next()
		if tok.Type == css.EOFToken {
			break
		}
		if tok.Type == css.ErrorToken || tok.Type == css.AtKeywordToken {
			return "", false
		}

		if tok.Type == css.WhitespaceToken {
			if needsCSSSeparator(prevType, t.Peek().Type) {
				buf = append(buf, ' ')
			}
			continue
		}

		if tok.Type == css.RightBraceToken && len(buf) > 0 && buf[len(buf)-1] == ';' {
			buf = buf[:len(buf)-1]
		}

		buf = append(buf, cssTokenText(tok)...)
		prevType = tok.Type
	}

	return string(buf), true
}

func needsCSSSeparator(prev, next css.TokenType) bool {
	return isCSSWordLike(prev) && isCSSWordLike(next)
}

func isCSSWordLike(t css.TokenType) bool {
	switch t {
	case css.IdentToken, css.NumberToken, css.HashToken, css.StringToken, css.DotToken:
		return true
	}
	return false
}

func cssTokenText(tok css.Token) string {
	switch tok.Type {
	case css.StringToken:
		return `"` + strings.ReplaceAll(tok.Value, `"`, `\"`) + `"`
	case css.HashToken:
		return "#" + tok.Value
	case css.DotToken:
		return "."
	case css.ColonToken:
		return ":"
	case css.SemicolonToken:
		return ";"
	case css.CommaToken:
		return ","
	case css.LeftBraceToken:
		return "{"
	case css.RightBraceToken:
		return "}"
	case css.LeftParenToken:
		return "("
	case css.RightParenToken:
		return ")"
	case css.LeftBracketToken:
		return "["
	case css.RightBracketToken:
		return "]"
	case css.AtKeywordToken:
		return "@" + tok.Value
	default:
		return tok.Value
	}
}
