package minify

import (
	"strings"
	"testing"
)

func TestMinifyCollapsesFormattedWhitespace(t *testing.T) {
	out := string(Minify([]byte("<a>   \n&#32;   </a>"), Cfg{}))
	if !strings.Contains(out, "<a> </a>") {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyDestroyWholeAndTrim(t *testing.T) {
	out := string(Minify([]byte("<ul>   \n&#32;a<pre></pre>   <pre></pre>b   </ul>"), Cfg{}))
	if !strings.Contains(out, "<ul>a<pre></pre><pre></pre>b") {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyPreserveWhitespaceSensitiveDescendant(t *testing.T) {
	src := "<pre>  <span>  1    2   </span>  </pre>"
	out := string(Minify([]byte(src), Cfg{}))
	if !strings.Contains(out, src) {
		t.Errorf("Expected <pre> subtree preserved byte-for-byte, got %q", out)
	}
}

func TestMinifyDelimiterSwitchPicksShorter(t *testing.T) {
	out := string(Minify([]byte(`<a b="&quot;hello"></a>`), Cfg{}))
	if !strings.Contains(out, `b='"hello'`) {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyBooleanAttribute(t *testing.T) {
	out := string(Minify([]byte(`<div hidden="false"></div>`), Cfg{}))
	if !strings.Contains(out, "<div hidden>") {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyDefaultAttributeValueDropped(t *testing.T) {
	out := string(Minify([]byte(`<script type="application/javascript"></script>`), Cfg{}))
	if !strings.Contains(out, "<script>") {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyUnmatchedEndTagReinterpreted(t *testing.T) {
	out := string(Minify([]byte("Hello</p>Goodbye"), Cfg{}))
	if !strings.Contains(out, "Hello<p>Goodbye") {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyUnintentionalEntityPrevention(t *testing.T) {
	out := string(Minify([]byte("&ampamp;"), Cfg{}))
	if !strings.Contains(out, "&ampamp;") {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyOmitsImplicitHTMLAndHead(t *testing.T) {
	out := string(Minify([]byte("<!DOCTYPE html><html><head>  <meta> <body>"), Cfg{}))
	if out != "<!DOCTYPE html><meta><body>" {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyCollapseAndTrimClass(t *testing.T) {
	out := string(Minify([]byte("<a class=\"  c\n \n  \"></a>"), Cfg{}))
	if !strings.Contains(out, "<a class=c>") {
		t.Errorf("Got %q", out)
	}
}

func TestMinifyIdempotent(t *testing.T) {
	inputs := []string{
		"<div id=\"a\" class=\"  b  c \"><p>Hello   World</p></div>",
		"<ul><li>One<li>Two<li>Three</ul>",
		"<!DOCTYPE html><html lang=en><head><title>T</title></head><body><p>Hi</p></body></html>",
	}
	for _, in := range inputs {
		once := Minify([]byte(in), Cfg{})
		twice := Minify(once, Cfg{})
		if string(once) != string(twice) {
			t.Errorf("Not idempotent for %q:\n once=%q\n twice=%q", in, once, twice)
		}
	}
}

func TestMinifyLengthNonIncrease(t *testing.T) {
	inputs := []string{
		"<div id=\"a\" class=\"  b  c \"><p>Hello   World</p></div>",
		"<ul><li>One<li>Two<li>Three</ul>",
		"<p>plain text, no risky entities</p>",
	}
	for _, in := range inputs {
		out := Minify([]byte(in), Cfg{})
		// Allow slack for forced entity expansion around risky '&' runs.
		if len(out) > len(in)+8 {
			t.Errorf("Expected minified output not much longer than input for %q, got %q (%d > %d)", in, out, len(out), len(in))
		}
	}
}

func TestMinifyPreservesPreByteForByte(t *testing.T) {
	text := "  weird   \t spacing \n here  "
	out := string(Minify([]byte("<div><pre>"+text+"</pre></div>"), Cfg{}))
	if !strings.Contains(out, text) {
		t.Errorf("Expected <pre> content %q preserved, got %q", text, out)
	}
}

func TestMinifyAttributesSortedInOutput(t *testing.T) {
	out := string(Minify([]byte(`<div zeta="1" alpha="2" mu="3"></div>`), Cfg{}))
	ia, iz, im := strings.Index(out, "alpha"), strings.Index(out, "zeta"), strings.Index(out, "mu")
	if !(ia < im && im < iz) {
		t.Errorf("Expected alpha < mu < zeta ordering in %q", out)
	}
}

func TestMinifyEmptyInput(t *testing.T) {
	out := Minify([]byte(""), Cfg{})
	if len(out) != 0 {
		t.Errorf("Expected empty output for empty input, got %q", out)
	}
}
