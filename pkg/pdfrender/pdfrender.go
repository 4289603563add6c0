package pdfrender

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Color scheme - neutral document theme
var (
	colorHeading     = [3]int{33, 37, 41}    // Near black
	colorMuted       = [3]int{108, 117, 125} // Gray labels
	colorTableHeader = [3]int{52, 58, 64}    // Dark header fill
	colorTableAlt    = [3]int{248, 249, 250} // Alternating row
	colorRule        = [3]int{222, 226, 230} // Divider lines
)

// LineRow is one printable row of the items table. Blank draft items are
// filtered out before rendering.
type LineRow struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

// TotalsBlock is the money summary rendered under the items table.
type TotalsBlock struct {
	Subtotal       float64
	TaxRatePercent float64
	TaxAmount      float64
	ShowTax        bool
	DiscountAmount float64
	ShowDiscount   bool
	Total          float64
}

// DocumentView is everything the renderer needs to produce a document PDF.
// It is assembled by the export service from the draft and its totals.
type DocumentView struct {
	Title      string
	Number     string
	IssueDate  string
	Currency   string
	FromName   string
	FromEmail  string
	FromPhone  string
	ToName     string
	Rows       []LineRow
	Totals     TotalsBlock
	FooterNote string
}

// Renderer produces a PDF document from a view.
type Renderer interface {
	Render(view DocumentView) ([]byte, error)
}

// FPDFRenderer renders documents with go-pdf/fpdf.
type FPDFRenderer struct{}

// NewFPDFRenderer creates a new PDF renderer
func NewFPDFRenderer() *FPDFRenderer {
	return &FPDFRenderer{}
}

// Render produces an A4 portrait PDF for the given view.
func (r *FPDFRenderer) Render(view DocumentView) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	r.writeHeader(pdf, view)
	r.writeParties(pdf, view)
	r.writeItemsTable(pdf, view)
	r.writeTotals(pdf, view)
	r.writeFooter(pdf, view)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output error: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *FPDFRenderer) writeHeader(pdf *fpdf.Fpdf, view DocumentView) {
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, view.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.CellFormat(0, 6, view.Number, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+view.IssueDate, "", 1, "L", false, 0, "")

	pdf.Ln(4)
	pdf.SetDrawColor(colorRule[0], colorRule[1], colorRule[2])
	x := pdf.GetX()
	y := pdf.GetY()
	pageWidth, _ := pdf.GetPageSize()
	pdf.Line(x, y, pageWidth-20, y)
	pdf.Ln(4)
}

func (r *FPDFRenderer) writeParties(pdf *fpdf.Fpdf, view DocumentView) {
	startY := pdf.GetY()
	colWidth := 85.0

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.CellFormat(colWidth, 5, "FROM", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	for _, line := range []string{view.FromName, view.FromEmail, view.FromPhone} {
		if line == "" {
			continue
		}
		pdf.CellFormat(colWidth, 5, line, "", 1, "L", false, 0, "")
	}
	fromEndY := pdf.GetY()

	pdf.SetXY(20+colWidth+10, startY)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.CellFormat(colWidth, 5, "BILL TO", "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	if view.ToName != "" {
		pdf.CellFormat(colWidth, 5, view.ToName, "", 2, "L", false, 0, "")
	}

	if pdf.GetY() < fromEndY {
		pdf.SetY(fromEndY)
	}
	pdf.SetX(20)
	pdf.Ln(8)
}

func (r *FPDFRenderer) writeItemsTable(pdf *fpdf.Fpdf, view DocumentView) {
	widths := []float64{90, 20, 30, 30}
	headers := []string{"Description", "Qty", "Unit Price", "Amount"}
	aligns := []string{"L", "R", "R", "R"}

	pdf.SetFillColor(colorTableHeader[0], colorTableHeader[1], colorTableHeader[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	pdf.SetFont("Helvetica", "", 9)
	for i, row := range view.Rows {
		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(colorTableAlt[0], colorTableAlt[1], colorTableAlt[2])
		}
		pdf.CellFormat(widths[0], 7, row.Description, "", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[1], 7, trimZeros(row.Quantity), "", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[2], 7, formatAmount(view.Currency, row.UnitPrice), "", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[3], 7, formatAmount(view.Currency, row.Amount), "", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetDrawColor(colorRule[0], colorRule[1], colorRule[2])
	x := pdf.GetX()
	y := pdf.GetY()
	pageWidth, _ := pdf.GetPageSize()
	pdf.Line(x, y, pageWidth-20, y)
	pdf.Ln(4)
}

func (r *FPDFRenderer) writeTotals(pdf *fpdf.Fpdf, view DocumentView) {
	labelWidth := 140.0
	valueWidth := 30.0

	writeRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelWidth, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueWidth, 7, value, "", 1, "R", false, 0, "")
	}

	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	writeRow("Subtotal", formatAmount(view.Currency, view.Totals.Subtotal), false)

	if view.Totals.ShowTax && view.Totals.TaxAmount > 0 {
		label := fmt.Sprintf("Tax (%s%%)", trimZeros(view.Totals.TaxRatePercent))
		writeRow(label, formatAmount(view.Currency, view.Totals.TaxAmount), false)
	}
	if view.Totals.ShowDiscount && view.Totals.DiscountAmount > 0 {
		writeRow("Discount", "-"+formatAmount(view.Currency, view.Totals.DiscountAmount), false)
	}

	writeRow("Total", formatAmount(view.Currency, view.Totals.Total), true)
}

func (r *FPDFRenderer) writeFooter(pdf *fpdf.Fpdf, view DocumentView) {
	if view.FooterNote == "" {
		return
	}
	pdf.SetY(-35)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.CellFormat(0, 5, view.FooterNote, "", 0, "C", false, 0, "")
}

func formatAmount(currency string, v float64) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%s %.2f", currency, v)
}

// trimZeros formats a float without trailing decimal zeros (2 -> "2",
// 2.5 -> "2.5").
func trimZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
