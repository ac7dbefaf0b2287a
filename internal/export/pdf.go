package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
)

const (
	pdfRowHeight    = 6.0
	pdfBottomMargin = 15.0
)

var pdfColumnWidths = []float64{30, 38, 38, 38, 42}

// WriteSchedulePDF пишет печатную версию: сводка и полная таблица платежей
func WriteSchedulePDF(w io.Writer, result *calculations.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfBottomMargin)
	pdf.SetTitle("Mortgage Amortization Schedule", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Mortgage Amortization Schedule")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	for _, m := range SummaryMetrics(result.Summary) {
		pdf.CellFormat(60, 7, m.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, m.Value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	_, pageHeight := pdf.GetPageSize()
	writeTableHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range DisplayRows(result.Schedule) {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfBottomMargin {
			pdf.AddPage()
			writeTableHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(pdfColumnWidths[i], pdfRowHeight, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 235)
	for i, title := range DisplayHeader {
		pdf.CellFormat(pdfColumnWidths[i], 7, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
