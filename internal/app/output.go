package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hyperifyio/devextract/internal/extract"
)

// Result is the JSON shape of one extraction.
type Result struct {
	Text       string `json:"text"`
	Characters int    `json:"characters"`
	Graphemes  int    `json:"graphemes"`
}

func newResult(text string) Result {
	return Result{
		Text:       text,
		Characters: extract.CharCount(text),
		Graphemes:  extract.GraphemeCount(text),
	}
}

func render(format string, res Result, showCount bool) ([]byte, error) {
	var buf bytes.Buffer
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	default:
		if res.Text != "" {
			buf.WriteString(res.Text)
			buf.WriteByte('\n')
		}
		if showCount {
			fmt.Fprintf(&buf, "%d characters\n", res.Characters)
		}
	}
	return buf.Bytes(), nil
}

func (a *App) writeOutput(b []byte) error {
	path := strings.TrimSpace(a.cfg.OutputPath)
	if path == "" || path == "-" {
		_, err := a.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
