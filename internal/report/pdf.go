package report

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

var (
	colWidths  = [4]float64{35, 40, 40, 75}
	colHeaders = [4]string{"Student", "Started At", "Finished At", "Responses"}
)

const (
	lineHeight  = 5.0
	pageBottomY = 275.0
)

// RenderPDF builds the report document in memory: a centered title, then
// a grid-bordered table with a filled header row and one row per input
// row, in input order.
func RenderPDF(title string, rows []Row) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)
	writeHeaderRow(pdf)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		writeBodyRow(pdf, row)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(107, 115, 255) // #6b73ff
	pdf.SetTextColor(255, 255, 255)
	for i, h := range colHeaders {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// writeBodyRow wraps each cell to its column width and draws the row at
// the tallest cell's height so the grid stays aligned.
func writeBodyRow(pdf *gofpdf.Fpdf, row Row) {
	cells := [4]string{row.Student, row.StartedAt, row.FinishedAt, row.Responses}

	height := lineHeight
	var lines [4][]string
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		lines[i] = pdf.SplitText(cell, colWidths[i]-2)
		if h := float64(len(lines[i])) * lineHeight; h > height {
			height = h
		}
	}

	leftMargin, _, _, _ := pdf.GetMargins()
	if pdf.GetY()+height > pageBottomY {
		pdf.AddPage()
		writeHeaderRow(pdf)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
	}

	y := pdf.GetY()
	x := leftMargin
	for i := range cells {
		pdf.Rect(x, y, colWidths[i], height, "D")
		pdf.SetXY(x+1, y)
		pdf.MultiCell(colWidths[i]-2, lineHeight, strings.Join(lines[i], "\n"), "", "L", false)
		x += colWidths[i]
	}
	pdf.SetXY(leftMargin, y+height)
}
