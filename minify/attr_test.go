package minify

import "testing"

func TestRenderAttributeBooleanDropsValue(t *testing.T) {
	r, ok := renderAttribute("input", "disabled", "disabled", true, Cfg{})
	if !ok {
		t.Fatal("Expected boolean attribute to be kept")
	}
	if r.body != "disabled" {
		t.Errorf("Expected bare 'disabled', got %q", r.body)
	}
}

func TestRenderAttributeDefaultValueDropped(t *testing.T) {
	_, ok := renderAttribute("a", "target", "_self", true, Cfg{})
	if ok {
		t.Error("Expected default value target=_self to be dropped")
	}
}

func TestRenderAttributeEmptyNotPreservedDropped(t *testing.T) {
	_, ok := renderAttribute("div", "class", "", true, Cfg{})
	if ok {
		t.Error("Expected empty class to be dropped")
	}
}

func TestRenderAttributeEmptyPreservedKept(t *testing.T) {
	r, ok := renderAttribute("img", "alt", "", true, Cfg{})
	if !ok {
		t.Fatal("Expected alt='' to be preserved")
	}
	if r.body != "alt" {
		t.Errorf("Expected bare 'alt' for kept-empty value, got %q", r.body)
	}
}

func TestRenderAttributeNoValueSentinelTreatedAsEmpty(t *testing.T) {
	r, ok := renderAttribute("img", "alt", "", false, Cfg{})
	if !ok {
		t.Fatal("Expected value-less alt to be preserved like alt=''")
	}
	if r.body != "alt" {
		t.Errorf("Expected bare 'alt', got %q", r.body)
	}
}

func TestRenderAttributeCollapsesClass(t *testing.T) {
	r, ok := renderAttribute("div", "class", "  a   b  ", true, Cfg{})
	if !ok {
		t.Fatal("Expected class to be kept")
	}
	if !contains(r.body, "a b") {
		t.Errorf("Expected collapsed class value 'a b' in %q", r.body)
	}
}

func TestEncodeAttrValuePrefersUnquoted(t *testing.T) {
	r, ok := renderAttribute("div", "id", "main", true, Cfg{})
	if !ok {
		t.Fatal("Expected id to be kept")
	}
	if r.body != "id=main" {
		t.Errorf("Expected unquoted id=main, got %q", r.body)
	}
	if !r.endsUnquoted {
		t.Error("Expected endsUnquoted=true for unquoted value")
	}
}

func TestEncodeAttrValueQuotesWhenSpacePresent(t *testing.T) {
	r, ok := renderAttribute("div", "title", "hello world", true, Cfg{})
	if !ok {
		t.Fatal("Expected title to be kept")
	}
	if r.body != `title="hello world"` {
		t.Errorf("Expected double-quoted value, got %q", r.body)
	}
	if r.endsUnquoted {
		t.Error("Expected endsUnquoted=false for quoted value")
	}
}

func TestEncodeAttrValuePrefersSingleQuoteWhenShorter(t *testing.T) {
	// Double-quoting forces escaping the embedded double quote; single
	// quoting does not, making it strictly shorter.
	r, ok := renderAttribute("div", "data-q", `say "hi"`, true, Cfg{})
	if !ok {
		t.Fatal("Expected attribute to be kept")
	}
	if r.body[len("data-q=")] != '\'' {
		t.Errorf("Expected single-quoted encoding to win on length, got %q", r.body)
	}
}

func TestCanUnquoteRejectsWhitespaceAndGtByDefault(t *testing.T) {
	for _, v := range []string{"a b", "a>b"} {
		if canUnquote(v, Cfg{}) {
			t.Errorf("canUnquote(%q) = true, want false", v)
		}
	}
}

func TestCanUnquoteAllowsQuotesAndEqualsByDefault(t *testing.T) {
	// Default (non-strict) mode keeps values like these unquoted; only
	// whitespace and '>' can break out of the attribute list unbraced.
	for _, v := range []string{`a"b`, "a'b", "a=b", "a<b", "a`b", "=x"} {
		if !canUnquote(v, Cfg{}) {
			t.Errorf("canUnquote(%q) = false, want true in default mode", v)
		}
	}
}

func TestCanUnquoteStrictModeRejectsSpecialChars(t *testing.T) {
	strict := Cfg{EnsureSpecCompliantUnquotedAttributeValues: true}
	for _, v := range []string{`a"b`, "a'b", "a=b", "a<b", "a`b", "=x"} {
		if canUnquote(v, strict) {
			t.Errorf("canUnquote(%q) = true in strict mode, want false", v)
		}
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
