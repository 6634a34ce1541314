package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const pdfFontFamily = "devanagari"

// writePDF renders the extracted text as wrapped paragraphs followed by a
// character count line. Devanagari needs a UTF-8 TrueType font; the core
// PDF fonts only cover Latin-1.
func writePDF(res Result, fontPath string, fontSize float64, outPath string) error {
	if fontPath == "" {
		return errors.New("pdf: font path is required")
	}
	if fontSize <= 0 {
		fontSize = defaultPDFFontSize
	}
	// gofpdf joins font file names onto its font directory, which turns
	// absolute paths relative; load the bytes ourselves.
	font, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("pdf: load font %s: %w", fontPath, err)
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", font)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf: load font %s: %w", fontPath, err)
	}
	pdf.SetFont(pdfFontFamily, "", fontSize)
	pdf.AddPage()

	lineHeight := fontSize * 0.6
	if res.Text != "" {
		pdf.MultiCell(0, lineHeight, res.Text, "", "L", false)
	}
	pdf.Ln(lineHeight)
	pdf.SetFont(pdfFontFamily, "", fontSize*0.7)
	pdf.CellFormat(0, lineHeight, fmt.Sprintf("%d characters", res.Characters), "", 1, "L", false, 0, "")

	return pdf.OutputFileAndClose(outPath)
}
