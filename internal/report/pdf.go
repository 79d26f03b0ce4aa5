package report

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ErrNoFont is returned by WritePDF when no TrueType font is configured. The
// PDF core fonts cannot render CJK text.
var ErrNoFont = errors.New("pdf: a UTF-8 TrueType font is required")

const pdfFamily = "report"

var stemLineRe = regexp.MustCompile(`^\d+\. `)

// WritePDF lays out a text report on A4 pages using the font at fontPath.
// Stem lines are set slightly larger, blank lines become vertical space.
func WritePDF(text, outPath, fontPath string) error {
	if strings.TrimSpace(fontPath) == "" {
		return ErrNoFont
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font(pdfFamily, "", fontPath)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("load font %s: %w", fontPath, err)
	}
	pdf.SetFont(pdfFamily, "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			pdf.Ln(4)
			continue
		}
		if stemLineRe.MatchString(line) {
			pdf.SetFont(pdfFamily, "", 12)
			pdf.MultiCell(0, 6, line, "", "L", false)
			pdf.SetFont(pdfFamily, "", 11)
			continue
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan report: %w", err)
	}
	return pdf.OutputFileAndClose(outPath)
}
