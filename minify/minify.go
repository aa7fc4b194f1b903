package minify

import (
	"strings"

	"github.com/quietbyte/htmlmin/dom"
	"github.com/quietbyte/htmlmin/html"
	"github.com/quietbyte/htmlmin/log"
)

// Minify parses src as HTML and returns the smallest byte sequence that
// renders identically under cfg's settings.
func Minify(src []byte, cfg Cfg) []byte {
	doc := html.Parse(string(src))
	applyDelegates(doc, cfg)
	minifyWhitespace(doc)
	return emitDocument(doc, cfg)
}

// applyDelegates walks the tree once, running the CSS delegate over
// <style> elements and style="" attributes, and the JS delegate over
// <script> elements whose type is empty or a recognized JavaScript MIME
// type. A delegate that fails leaves the original bytes untouched.
func applyDelegates(n *dom.Node, cfg Cfg) {
	if n.Type == dom.ElementNode {
		applyElementDelegates(n, cfg)
	}
	for _, child := range n.Children {
		applyDelegates(child, cfg)
	}
}

func applyElementDelegates(n *dom.Node, cfg Cfg) {
	if cfg.MinifyCSS && n.HasAttribute("style") {
		if out, ok := minifyCSSDeclarations(n.GetAttribute("style")); ok {
			n.SetAttribute("style", out)
		} else {
			log.Warnf("style attribute failed to minify, kept as-is")
		}
	}

	switch n.Data {
	case "style":
		if !cfg.MinifyCSS {
			return
		}
		rawText(n, func(body string) (string, bool) {
			return minifyCSSStylesheet(body)
		})
	case "script":
		if !cfg.MinifyJS || !isJavaScriptType(n.GetAttribute("type")) {
			return
		}
		rawText(n, func(body string) (string, bool) {
			return minifyJS(body)
		})
	}
}

// rawText runs fn over a raw-text element's sole child, if present,
// replacing its content on success and logging on failure.
func rawText(n *dom.Node, fn func(string) (string, bool)) {
	if len(n.Children) != 1 || n.Children[0].Type != dom.RawTextNode {
		return
	}
	body := n.Children[0]
	out, ok := fn(body.Data)
	if !ok {
		log.Warnf("%s contents failed to minify, kept as-is", n.Data)
		return
	}
	body.Data = out
}

// javaScriptMIMETypes lists the type="" values that are still JavaScript
// per the WHATWG "JavaScript MIME type" list; anything else (a module
// script's "module", a data-block type, ...) is left untouched.
var javaScriptMIMETypes = map[string]bool{
	"": true, "text/javascript": true, "application/javascript": true,
	"text/ecmascript": true, "application/ecmascript": true,
	"text/jscript": true,
}

func isJavaScriptType(t string) bool {
	return javaScriptMIMETypes[strings.ToLower(strings.TrimSpace(t))]
}
