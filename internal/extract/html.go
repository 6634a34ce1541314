package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is the readable text of an HTML page.
type Document struct {
	Title string
	Text  string
}

// skipped elements never contribute text.
var skipped = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"nav": true, "footer": true, "aside": true, "iframe": true, "svg": true,
}

// blocks are separated from their neighbours by a newline so that words in
// adjacent paragraphs never fuse into one run.
var blocks = map[string]bool{
	"p": true, "div": true, "section": true, "br": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "ul": true, "ol": true, "tr": true, "td": true, "th": true,
	"pre": true, "blockquote": true, "table": true,
}

// TextFromHTML returns the title and body text of an HTML document. The
// content root is <main>, then <article>, then <body>. Unparseable input
// yields an empty Document.
func TextFromHTML(input []byte) Document {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil || root == nil {
		return Document{}
	}

	var doc Document
	if head := findElement(root, "head"); head != nil {
		if t := findElement(head, "title"); t != nil && t.FirstChild != nil {
			doc.Title = strings.TrimSpace(t.FirstChild.Data)
		}
	}

	content := findElement(root, "main")
	if content == nil {
		content = findElement(root, "article")
	}
	if content == nil {
		content = findElement(root, "body")
	}
	if content == nil {
		return doc
	}

	var b strings.Builder
	writeText(&b, content)
	doc.Text = tidyLines(b.String())
	return doc
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		if skipped[name] || isConsentBanner(n) {
			return
		}
		if blocks[name] {
			b.WriteByte('\n')
			defer b.WriteByte('\n')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}

// isConsentBanner matches cookie and consent containers by id, class, role,
// aria-label or data-* attributes.
func isConsentBanner(n *html.Node) bool {
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if key != "id" && key != "class" && key != "role" && key != "aria-label" && !strings.HasPrefix(key, "data-") {
			continue
		}
		val := strings.ToLower(attr.Val)
		for _, marker := range []string{"cookie", "consent", "gdpr"} {
			if strings.Contains(val, marker) {
				return true
			}
		}
	}
	return false
}

// tidyLines trims every line, collapses inner whitespace and keeps at most one
// blank line between paragraphs.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
