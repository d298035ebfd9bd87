// Package document renders finalized orders into downloadable artifacts.
package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"shopbot/logic"
)

// PDFRenderer produces the Order Summary PDF: a header, one bordered row
// per line item, and a Total row, with prices formatted to two decimals.
// Rendering the same order twice yields byte-identical output because the
// creation date comes from the injectable clock.
type PDFRenderer struct {
	now func() time.Time
}

// NewPDFRenderer returns a renderer using the wall clock.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{now: time.Now}
}

// NewPDFRendererAt returns a renderer with a fixed clock. Tests use this to
// assert byte-identical output for identical orders.
func NewPDFRendererAt(now func() time.Time) *PDFRenderer {
	return &PDFRenderer{now: now}
}

// Render implements logic.DocumentRenderer.
func (r *PDFRenderer) Render(order *logic.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(r.now())
	pdf.SetModificationDate(r.now())
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Order Summary", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(60, 10, "Product", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 10, "Quantity", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 10, "Price", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, line := range order.Lines {
		pdf.CellFormat(60, 10, line.Product, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("%d", line.Quantity), "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 10, fmt.Sprintf("$%.2f", float64(line.LineTotal)), "1", 1, "", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(60, 10, "Total", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 10, "", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 10, fmt.Sprintf("$%.2f", float64(order.GrandTotal)), "1", 1, "", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render order summary: %w", err)
	}
	return buf.Bytes(), nil
}

var _ logic.DocumentRenderer = (*PDFRenderer)(nil)
