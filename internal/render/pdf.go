package render

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jobsift/jobsift/internal/record"
)

// pdfWidths are the table column widths in millimeters, sized for A4
// portrait with default margins.
var pdfWidths = [4]float64{40, 55, 35, 60}

// WritePDF renders the record table to a PDF file. Resolvable http(s) links
// become clickable; everything else is plain text. The layout is
// intentionally simple: one table row per record, wrapped link text.
func WritePDF(records []record.Record, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range header {
		pdf.CellFormat(pdfWidths[i], 8, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range records {
		f := r.Fields()
		for i := 0; i < 3; i++ {
			pdf.CellFormat(pdfWidths[i], 7, pdfTruncate(pdf, f[i], pdfWidths[i]), "", 0, "L", false, 0, "")
		}
		link := f[3]
		if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
			pdf.CellFormat(pdfWidths[3], 7, pdfTruncate(pdf, link, pdfWidths[3]), "", 1, "L", false, 0, link)
		} else {
			pdf.CellFormat(pdfWidths[3], 7, pdfTruncate(pdf, link, pdfWidths[3]), "", 1, "L", false, 0, "")
		}
	}

	return pdf.OutputFileAndClose(outPath)
}

// pdfTruncate trims a cell value until it fits its column, mirroring the
// text-table ellipsis behavior.
func pdfTruncate(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width-2 {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 && pdf.GetStringWidth(string(runes)+"...") > width-2 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
