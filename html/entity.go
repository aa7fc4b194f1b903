package html

import "strconv"

// DecodeEntities decodes '&name;', '&name', '&#NN', '&#xNN' references in s.
// inAttribute switches on the ambiguous-ampersand rule from spec §4.1: a
// named entity matched without its optional trailing ';' is left alone
// (the '&' stays literal) when the character right after the match is '='
// or alphanumeric, because that almost always means the text is really a
// raw query string like "?foo=bar&copy=1", not an entity.
func DecodeEntities(s string, inAttribute bool) string {
	if !containsAmpersand(s) {
		return s
	}

	out := make([]byte, 0, len(s))

	i := 0
	for i < len(s) {
		if s[i] != '&' {
			out = append(out, s[i])
			i++
			continue
		}

		if decoded, consumed, ok := decodeOne(s[i:], inAttribute); ok {
			out = append(out, decoded...)
			i += consumed
			continue
		}

		out = append(out, '&')
		i++
	}
	return string(out)
}

func containsAmpersand(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '&' {
			return true
		}
	}
	return false
}

// decodeOne attempts to decode a single reference starting at s[0] == '&'.
// It returns the decoded bytes and how many bytes of s (including the
// leading '&') were consumed.
func decodeOne(s string, inAttribute bool) (decoded string, consumed int, ok bool) {
	if len(s) < 2 {
		return "", 0, false
	}

	if s[1] == '#' {
		return decodeNumeric(s)
	}

	return decodeNamed(s, inAttribute)
}

func decodeNumeric(s string) (string, int, bool) {
	// s[0]=='&', s[1]=='#'
	i := 2
	hex := false
	if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
		hex = true
		i++
	}
	start := i
	for i < len(s) && isDigitForBase(s[i], hex) {
		i++
	}
	if i == start {
		return "", 0, false
	}
	digits := s[start:i]
	consumed := i
	if i < len(s) && s[i] == ';' {
		consumed++
	}

	base := 10
	if hex {
		base = 16
	}
	cp, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return string(rune(0xFFFD)), consumed, true
	}
	return string(clampCodePoint(uint32(cp))), consumed, true
}

func isDigitForBase(c byte, hex bool) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if !hex {
		return false
	}
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// clampCodePoint applies spec §4.1's replacement rule: out-of-range,
// surrogate, and noncharacter code points all become U+FFFD.
func clampCodePoint(cp uint32) rune {
	if cp == 0 || cp > 0x10FFFF || isSurrogate(cp) || isNoncharacter(cp) {
		return 0xFFFD
	}
	return rune(cp)
}

func isSurrogate(cp uint32) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}

func isNoncharacter(cp uint32) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	switch cp & 0xFFFF {
	case 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

func decodeNamed(s string, inAttribute bool) (string, int, bool) {
	// s[0] == '&'. Collect the maximal run of ASCII letters/digits.
	end := 1
	for end < len(s) && isEntityNameChar(s[end]) {
		end++
	}
	run := s[1:end]
	if run == "" {
		return "", 0, false
	}

	// Longest-prefix match against the static table.
	for l := len(run); l >= 1; l-- {
		name := run[:l]
		entry, found := lookupEntity(name)
		if !found {
			continue
		}

		nameEnd := 1 + l
		hasSemicolon := nameEnd < len(s) && s[nameEnd] == ';'

		if !hasSemicolon {
			if entry.semicolonRequired {
				continue // try a shorter prefix
			}
			if inAttribute {
				var next byte
				hasNext := nameEnd < len(s)
				if hasNext {
					next = s[nameEnd]
				}
				if hasNext && (next == '=' || isEntityNameChar(next)) {
					return "", 0, false
				}
			}
			return entry.decoded, nameEnd, true
		}

		return entry.decoded, nameEnd + 1, true
	}

	return "", 0, false
}

func isEntityNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// EncodeText re-escapes decoded text for safe re-emission as element
// content: '<' is always escaped (it would otherwise start a tag) and every
// '&' is written as "&amp", whether or not leaving it raw could have started
// a reference, so encode(decode(s)) parses back to decode(s). A ';' follows
// an escape only where the next character would extend the name into a
// longer entity name.
func EncodeText(s string) string {
	if !needsTextEscaping(s) {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			out = append(out, "&lt"...)
			out = appendDisambiguatingSemicolon(out, "lt", s, i+1)
		case '&':
			out = append(out, "&amp"...)
			out = appendDisambiguatingSemicolon(out, "amp", s, i+1)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

func needsTextEscaping(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '<' || s[i] == '&' {
			return true
		}
	}
	return false
}

// appendDisambiguatingSemicolon appends ';' to a just-written bare entity
// name if the character that follows in the source (at s[next]) would
// otherwise extend the name into a different, longer valid entity.
func appendDisambiguatingSemicolon(out []byte, name, s string, next int) []byte {
	if next < len(s) && extendsAKnownName(name, s[next]) {
		out = append(out, ';')
	}
	return out
}

// appendAttrDisambiguatingSemicolon appends ';' to a just-written bare
// entity name inside an attribute value when the next character is '=' or
// alphanumeric, because DecodeEntities(_, true) leaves a bare reference
// followed by such a character undecoded.
func appendAttrDisambiguatingSemicolon(out []byte, s string, next int) []byte {
	if next < len(s) && (s[next] == '=' || isEntityNameChar(s[next])) {
		out = append(out, ';')
	}
	return out
}

// EncodeUnquotedAttrValue escapes a decoded attribute value for emission
// without surrounding quotes: '>' is always escaped (an unquoted value's
// character-exclusion rules already forbid it appearing literally, but this
// keeps the encoder safe on its own), and every '&' is written as "&amp".
// A ';' follows an escape when the next character is '=' or alphanumeric.
func EncodeUnquotedAttrValue(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '>':
			out = append(out, "&gt"...)
			out = appendAttrDisambiguatingSemicolon(out, s, i+1)
		case '&':
			out = append(out, "&amp"...)
			out = appendAttrDisambiguatingSemicolon(out, s, i+1)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

// EncodeQuotedAttrValue escapes a decoded attribute value for emission
// inside the given quote character: the quote itself is escaped with the
// shortest numeric reference, and every '&' is written as "&amp" (with a
// ';' when the next character is '=' or alphanumeric).
func EncodeQuotedAttrValue(s string, quote byte) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == quote:
			var next byte
			hasNext := i+1 < len(s)
			if hasNext {
				next = s[i+1]
			}
			out = append(out, EncodeNumericEscape(quote, next, hasNext)...)
		case s[i] == '&':
			out = append(out, "&amp"...)
			out = appendAttrDisambiguatingSemicolon(out, s, i+1)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

// EncodeNumericEscape renders a single byte as the shortest safe decimal
// numeric character reference, appending ';' only when the following byte
// would otherwise be absorbed as an extra digit.
func EncodeNumericEscape(c byte, next byte, hasNext bool) string {
	esc := "&#" + strconv.Itoa(int(c))
	if hasNext && next >= '0' && next <= '9' {
		esc += ";"
	}
	return esc
}
