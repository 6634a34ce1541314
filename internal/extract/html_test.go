package extract

import (
	"strings"
	"testing"
)

func TestTextFromHTML_PrefersMainOverBody(t *testing.T) {
	page := `<!doctype html>
    <html>
      <head><title>समाचार</title></head>
      <body>
        <nav>मेनू Home</nav>
        <main>
          <h1>मुख्य शीर्षक</h1>
          <p>यह मुख्य अनुच्छेद है।</p>
        </main>
        <footer>पाद टिप्पणी</footer>
      </body>
    </html>`

	doc := TextFromHTML([]byte(page))
	if doc.Title != "समाचार" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if !strings.Contains(doc.Text, "मुख्य शीर्षक") || !strings.Contains(doc.Text, "यह मुख्य अनुच्छेद है।") {
		t.Fatalf("expected main content, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "मेनू") || strings.Contains(doc.Text, "पाद") {
		t.Fatalf("did not expect nav or footer text, got %q", doc.Text)
	}
}

func TestTextFromHTML_FallbackToBody(t *testing.T) {
	doc := TextFromHTML([]byte(`<html><body><h2>Body Heading</h2><p>Body paragraph</p></body></html>`))
	if doc.Text != "Body Heading\n\nBody paragraph" {
		t.Fatalf("unexpected text %q", doc.Text)
	}
}

func TestTextFromHTML_BlocksDoNotFuse(t *testing.T) {
	doc := TextFromHTML([]byte(`<body><div>राम</div><div>श्याम</div><script>var x = "सीता"</script></body>`))
	if got := Extract(doc.Text); got != "राम श्याम" {
		t.Fatalf("unexpected extraction %q from %q", got, doc.Text)
	}
}

func TestTextFromHTML_SkipsConsentBanner(t *testing.T) {
	page := `<body><div class="cookie-banner">कुकी स्वीकार करें</div><p>सामग्री</p></body>`
	doc := TextFromHTML([]byte(page))
	if strings.Contains(doc.Text, "कुकी") {
		t.Fatalf("expected consent banner to be dropped, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "सामग्री") {
		t.Fatalf("expected paragraph text, got %q", doc.Text)
	}
}
