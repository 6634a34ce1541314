package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hyperifyio/devextract/internal/extract"
)

// readInput returns the text to extract from: inline text, stdin or a file.
// Byte order marks select UTF-16 decoding and are stripped; anything else is
// taken as UTF-8. In HTML mode every source goes through TextFromHTML.
func (a *App) readInput() (string, error) {
	b, err := a.readRaw()
	if err != nil {
		return "", err
	}
	if a.cfg.HTML {
		doc := extract.TextFromHTML(b)
		if doc.Title == "" {
			return doc.Text, nil
		}
		return doc.Title + "\n" + doc.Text, nil
	}
	return string(b), nil
}

func (a *App) readRaw() ([]byte, error) {
	if a.cfg.Text != "" {
		return []byte(a.cfg.Text), nil
	}
	var r io.Reader
	path := strings.TrimSpace(a.cfg.InputPath)
	if path == "" || path == "-" {
		r = a.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		defer f.Close()
		r = f
	}
	b, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

func decode(r io.Reader) ([]byte, error) {
	return io.ReadAll(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
}
