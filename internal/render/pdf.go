package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"wattplan-cloud/internal/slides"
)

// BuildProposalPDF renders the included slides into a landscape PDF, one
// page per slide.
func BuildProposalPDF(customerName string, slideList []slides.Slide) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Energy Plan - %s", customerName), false)

	for _, slide := range slideList {
		if !slide.IsIncluded {
			continue
		}
		fields, err := SlideFields(slide.Content)
		if err != nil {
			return nil, err
		}

		pdf.AddPage()
		pdf.SetFont("Arial", "B", 20)
		pdf.Cell(0, 14, slide.Title)
		pdf.Ln(18)

		pdf.SetFont("Arial", "", 12)
		for _, field := range fields {
			pdf.SetFont("Arial", "B", 12)
			pdf.CellFormat(110, 8, field.Label, "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 12)
			pdf.CellFormat(0, 8, field.Value, "", 0, "L", false, 0, "")
			pdf.Ln(8)
		}

		pdf.SetY(-18)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(0, 6, fmt.Sprintf("Slide %d", slide.SlideNumber))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
