package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// SheetField is one labelled row on a contract sheet.
type SheetField struct {
	Label string
	Value string
}

// PDFExporter renders a supervision contract into a printable sheet.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// RenderSheet creates a single-page PDF with a title and labelled fields.
func (e *PDFExporter) RenderSheet(title string, fields []SheetField) ([]byte, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("pdf sheet requires at least one field")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	const labelWidth = 55.0
	const valueWidth = 125.0
	for _, field := range fields {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(labelWidth, 8, field.Label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(valueWidth, 8, field.Value, "1", 1, "L", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
