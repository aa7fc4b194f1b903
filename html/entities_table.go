package html

// namedEntity is one row of the static named-character-reference table
// assumed available per spec: a decoded UTF-8 replacement plus whether the
// terminating ';' is mandatory for this name to match.
type namedEntity struct {
	decoded           string
	semicolonRequired bool
}

// legacyEntities is the historical HTML4/Latin-1 entity set that HTML5
// still allows to match without a trailing ';' (HTML5 §13.5 "Named
// character references", legacy compatibility list). Grounded on the
// teacher's namedEntities table, generalized with the semicolon-optional
// flag this minifier needs.
var legacyEntities = map[string]string{
	"amp": "&", "AMP": "&", "lt": "<", "LT": "<", "gt": ">", "GT": ">",
	"quot": "\"", "QUOT": "\"", "nbsp": " ",
	"iexcl": "¡", "cent": "¢", "pound": "£", "curren": "¤",
	"yen": "¥", "brvbar": "¦", "sect": "§", "uml": "¨",
	"copy": "©", "COPY": "©", "ordf": "ª", "laquo": "«",
	"not": "¬", "shy": "­", "reg": "®", "REG": "®",
	"macr": "¯", "deg": "°", "plusmn": "±", "sup2": "²",
	"sup3": "³", "acute": "´", "micro": "µ", "para": "¶",
	"middot": "·", "cedil": "¸", "sup1": "¹", "ordm": "º",
	"raquo": "»", "frac14": "¼", "frac12": "½", "frac34": "¾",
	"iquest": "¿",
	"Agrave": "À", "Aacute": "Á", "Acirc": "Â", "Atilde": "Ã",
	"Auml": "Ä", "Aring": "Å", "AElig": "Æ", "Ccedil": "Ç",
	"Egrave": "È", "Eacute": "É", "Ecirc": "Ê", "Euml": "Ë",
	"Igrave": "Ì", "Iacute": "Í", "Icirc": "Î", "Iuml": "Ï",
	"ETH": "Ð", "Ntilde": "Ñ", "Ograve": "Ò", "Oacute": "Ó",
	"Ocirc": "Ô", "Otilde": "Õ", "Ouml": "Ö", "times": "×",
	"Oslash": "Ø", "Ugrave": "Ù", "Uacute": "Ú", "Ucirc": "Û",
	"Uuml": "Ü", "Yacute": "Ý", "THORN": "Þ", "szlig": "ß",
	"agrave": "à", "aacute": "á", "acirc": "â", "atilde": "ã",
	"auml": "ä", "aring": "å", "aelig": "æ", "ccedil": "ç",
	"egrave": "è", "eacute": "é", "ecirc": "ê", "euml": "ë",
	"igrave": "ì", "iacute": "í", "icirc": "î", "iuml": "ï",
	"eth": "ð", "ntilde": "ñ", "ograve": "ò", "oacute": "ó",
	"ocirc": "ô", "otilde": "õ", "ouml": "ö", "divide": "÷",
	"oslash": "ø", "ugrave": "ù", "uacute": "ú", "ucirc": "û",
	"uuml": "ü", "yacute": "ý", "thorn": "þ", "yuml": "ÿ",
}

// modernEntities is a broader set of HTML5 named references that always
// require the trailing ';'. Not exhaustive (the full WHATWG table has
// over two thousand names) but covers the common symbols, punctuation,
// arrows, math operators, and Greek letters a production document is
// likely to use, generalized from the teacher's namedEntities map.
var modernEntities = map[string]string{
	"apos": "'", "trade": "™",
	"ndash": "–", "mdash": "—", "lsquo": "‘", "rsquo": "’",
	"sbquo": "‚", "ldquo": "“", "rdquo": "”", "bdquo": "„",
	"hellip": "…", "prime": "′", "Prime": "″",
	"bull": "•", "thinsp": " ", "ensp": " ", "emsp": " ",
	"minus": "−", "lowast": "∗", "le": "≤", "ge": "≥",
	"ne": "≠", "equiv": "≡", "asymp": "≈", "infin": "∞",
	"sum": "∑", "prod": "∏", "radic": "√", "part": "∂",
	"int": "∫", "isin": "∈", "notin": "∉", "nsub": "⊄",
	"sub": "⊂", "sube": "⊆", "sup": "⊃", "supe": "⊇",
	"larr": "←", "uarr": "↑", "rarr": "→", "darr": "↓",
	"harr": "↔", "lArr": "⇐", "uArr": "⇑", "rArr": "⇒",
	"dArr": "⇓", "hArr": "⇔",
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ",
	"nu": "ν", "xi": "ξ", "omicron": "ο", "pi": "π",
	"rho": "ρ", "sigma": "σ", "tau": "τ", "upsilon": "υ",
	"phi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Alpha": "Α", "Beta": "Β", "Gamma": "Γ", "Delta": "Δ",
	"Epsilon": "Ε", "Zeta": "Ζ", "Eta": "Η", "Theta": "Θ",
	"Iota": "Ι", "Kappa": "Κ", "Lambda": "Λ", "Mu": "Μ",
	"Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο", "Pi": "Π",
	"Rho": "Ρ", "Sigma": "Σ", "Tau": "Τ", "Upsilon": "Υ",
	"Phi": "Φ", "Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
	"loz": "◊", "spades": "♠", "clubs": "♣", "hearts": "♥",
	"diams": "♦", "euro": "€", "angst": "Å", "permil": "‰",
}

// entities is the merged static lookup table consulted by the decoder:
// ASCII name -> decoded bytes + semicolon-required flag. entityPrefixes
// records every shorter, non-empty prefix of every key, letting the encoder check
// in O(1) whether appending a character after a matched name could ever
// extend it into a longer valid name (the "would extend the entity" test
// from spec §4.1's unintentional-entity rule).
var (
	entities       map[string]namedEntity
	entityPrefixes map[string]bool
)

func init() {
	entities = make(map[string]namedEntity, len(legacyEntities)+len(modernEntities))
	for name, decoded := range legacyEntities {
		entities[name] = namedEntity{decoded: decoded, semicolonRequired: false}
	}
	for name, decoded := range modernEntities {
		entities[name] = namedEntity{decoded: decoded, semicolonRequired: true}
	}

	entityPrefixes = make(map[string]bool)
	for name := range entities {
		for i := 1; i < len(name); i++ {
			entityPrefixes[name[:i]] = true
		}
	}
}

// lookupEntity returns the table row for name, if any.
func lookupEntity(name string) (namedEntity, bool) {
	e, ok := entities[name]
	return e, ok
}

// extendsAKnownName reports whether name+next is a prefix of some longer
// entity name (or itself a full entity name longer than name). Used by the
// encoder to decide whether a bare, unterminated escape could be misread
// if more alphanumeric characters follow it in the output stream.
func extendsAKnownName(name string, next byte) bool {
	if next < '0' || (next > '9' && next < 'A') || (next > 'Z' && next < 'a') || next > 'z' {
		return false
	}
	candidate := name + string(next)
	if entityPrefixes[candidate] {
		return true
	}
	if _, ok := entities[candidate]; ok {
		return true
	}
	return false
}
