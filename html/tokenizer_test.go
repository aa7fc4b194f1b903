package html

import "testing"

func attrValue(attrs []rawAttr, name string) (string, bool) {
	for _, a := range attrs {
		if a.name == name {
			return a.value, a.hasValue
		}
	}
	return "", false
}

func TestTokenizerText(t *testing.T) {
	input := "Hello, World!"
	tokenizer := NewTokenizer(input)

	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	if token.Type != TextToken {
		t.Errorf("Expected TextToken, got %v", token.Type)
	}
	if token.Data != "Hello, World!" {
		t.Errorf("Expected 'Hello, World!', got %v", token.Data)
	}
}

func TestTokenizerSimpleTag(t *testing.T) {
	input := "<div>"
	tokenizer := NewTokenizer(input)

	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	if token.Type != StartTagToken {
		t.Errorf("Expected StartTagToken, got %v", token.Type)
	}
	if token.Data != "div" {
		t.Errorf("Expected tag name 'div', got %v", token.Data)
	}
}

func TestTokenizerEndTag(t *testing.T) {
	input := "</div>"
	tokenizer := NewTokenizer(input)

	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	if token.Type != EndTagToken {
		t.Errorf("Expected EndTagToken, got %v", token.Type)
	}
	if token.Data != "div" {
		t.Errorf("Expected tag name 'div', got %v", token.Data)
	}
}

func TestTokenizerSelfClosingTag(t *testing.T) {
	input := "<br />"
	tokenizer := NewTokenizer(input)

	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	if token.Type != SelfClosingTagToken {
		t.Errorf("Expected SelfClosingTagToken, got %v", token.Type)
	}
	if token.Data != "br" {
		t.Errorf("Expected tag name 'br', got %v", token.Data)
	}
}

func TestTokenizerAttributes(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedID    string
		expectedClass string
	}{
		{
			name:          "double quoted attributes",
			input:         `<div id="main" class="container">`,
			expectedID:    "main",
			expectedClass: "container",
		},
		{
			name:          "single quoted attributes",
			input:         `<div id='main' class='container'>`,
			expectedID:    "main",
			expectedClass: "container",
		},
		{
			name:          "unquoted attributes",
			input:         `<div id=main class=container>`,
			expectedID:    "main",
			expectedClass: "container",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)
			token, ok := tokenizer.Next()

			if !ok {
				t.Fatal("Expected token")
			}
			if token.Type != StartTagToken {
				t.Errorf("Expected StartTagToken, got %v", token.Type)
			}
			id, _ := attrValue(token.Attrs, "id")
			class, _ := attrValue(token.Attrs, "class")
			if id != tt.expectedID {
				t.Errorf("Expected id='%v', got '%v'", tt.expectedID, id)
			}
			if class != tt.expectedClass {
				t.Errorf("Expected class='%v', got '%v'", tt.expectedClass, class)
			}
		})
	}
}

func TestTokenizerNoValueAttribute(t *testing.T) {
	tokenizer := NewTokenizer(`<input disabled value="">`)
	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	_, hasValue := attrValue(token.Attrs, "disabled")
	if hasValue {
		t.Error("Expected disabled to have no value")
	}
	value, hasValue := attrValue(token.Attrs, "value")
	if !hasValue || value != "" {
		t.Errorf("Expected value='' with hasValue=true, got %q hasValue=%v", value, hasValue)
	}
}

func TestTokenizerComment(t *testing.T) {
	input := "<!-- This is a comment -->"
	tokenizer := NewTokenizer(input)

	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	if token.Type != CommentToken {
		t.Errorf("Expected CommentToken, got %v", token.Type)
	}
	if token.Data != " This is a comment " {
		t.Errorf("Expected ' This is a comment ', got %v", token.Data)
	}
	if token.Bogus {
		t.Error("Expected a real comment to not be marked Bogus")
	}
}

func TestTokenizerBogusComment(t *testing.T) {
	input := "<!weird stuff>"
	tokenizer := NewTokenizer(input)

	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	if token.Type != CommentToken || !token.Bogus {
		t.Errorf("Expected a bogus CommentToken, got %v (bogus=%v)", token.Type, token.Bogus)
	}
	if token.Data != "weird stuff" {
		t.Errorf("Expected 'weird stuff', got %v", token.Data)
	}
}

func TestTokenizerProcessingInstruction(t *testing.T) {
	input := "<?xml-stylesheet href=\"a.xsl\"?>"
	tokenizer := NewTokenizer(input)

	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	if token.Type != ProcessingInstructionToken {
		t.Errorf("Expected ProcessingInstructionToken, got %v", token.Type)
	}
	if token.Data != `xml-stylesheet href="a.xsl"` {
		t.Errorf("Unexpected PI body: %v", token.Data)
	}
}

func TestTokenizerDoctype(t *testing.T) {
	input := "<!DOCTYPE html>"
	tokenizer := NewTokenizer(input)

	token, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected token")
	}
	if token.Type != DoctypeToken {
		t.Errorf("Expected DoctypeToken, got %v", token.Type)
	}
}

func TestTokenizerRawText(t *testing.T) {
	tokenizer := NewTokenizer(`<script>if (1 < 2) { alert("&amp;"); }</script>after`)

	token, ok := tokenizer.Next()
	if !ok || token.Type != StartTagToken || token.Data != "script" {
		t.Fatalf("Expected script start tag, got %+v ok=%v", token, ok)
	}

	tokenizer.StartRawText("script", false)
	token, ok = tokenizer.Next()
	if !ok || token.Type != RawTextToken {
		t.Fatalf("Expected RawTextToken, got %+v ok=%v", token, ok)
	}
	want := `if (1 < 2) { alert("&amp;"); }`
	if token.Data != want {
		t.Errorf("Expected raw text %q unmodified (no entity decoding), got %q", want, token.Data)
	}

	token, ok = tokenizer.Next()
	if !ok || token.Type != TextToken || token.Data != "after" {
		t.Errorf("Expected trailing text 'after', got %+v ok=%v", token, ok)
	}
}

func TestTokenizerRawTextEscapable(t *testing.T) {
	tokenizer := NewTokenizer(`<title>A &amp; B</title>`)

	_, ok := tokenizer.Next()
	if !ok {
		t.Fatal("Expected start tag")
	}
	tokenizer.StartRawText("title", true)
	token, ok := tokenizer.Next()
	if !ok || token.Type != RawTextToken {
		t.Fatalf("Expected RawTextToken, got %+v ok=%v", token, ok)
	}
	if token.Data != "A & B" {
		t.Errorf("Expected entities decoded in escapable raw text, got %q", token.Data)
	}
}

func TestTokenizerMultipleTokens(t *testing.T) {
	input := "<html><body>Hello</body></html>"
	tokenizer := NewTokenizer(input)

	expectedTokens := []struct {
		tokenType TokenType
		data      string
	}{
		{StartTagToken, "html"},
		{StartTagToken, "body"},
		{TextToken, "Hello"},
		{EndTagToken, "body"},
		{EndTagToken, "html"},
	}

	for i, expected := range expectedTokens {
		token, ok := tokenizer.Next()
		if !ok {
			t.Fatalf("Expected token %d", i)
		}
		if token.Type != expected.tokenType {
			t.Errorf("Token %d: expected type %v, got %v", i, expected.tokenType, token.Type)
		}
		if token.Data != expected.data {
			t.Errorf("Token %d: expected data '%v', got '%v'", i, expected.data, token.Data)
		}
	}
}
