package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/jmylchreest/colormine/internal/colour"
)

// Swatch sheet layout in millimetres on portrait A4.
const (
	pdfMargin     = 15.0
	pdfSwatch     = 30.0
	pdfGap        = 6.0
	pdfLabel      = 10.0
	pdfColumns    = 5
	pdfPageHeight = 297.0
	pdfHeader     = 20.0
)

// WritePDF renders the palette as a swatch sheet: one filled square per colour,
// numbered in a contrasting ink, with its hex code and nearest colour name
// underneath.
func WritePDF(w io.Writer, p *colour.Palette) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Palette", true)
	pdf.SetCreator("colormine", true)
	pdf.SetAutoPageBreak(false, 0)

	rowHeight := pdfSwatch + pdfLabel + pdfGap
	rowsPerPage := int((pdfPageHeight - 2*pdfMargin - pdfHeader) / rowHeight)

	newPage := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(pdfMargin, pdfMargin)
		pdf.CellFormat(0, 10, fmt.Sprintf("Palette (%d colours)", p.Len()), "", 0, "L", false, 0, "")
	}
	newPage()

	for i, rgb := range p.ToRGBSlice() {
		row := i / pdfColumns
		if row > 0 && row%rowsPerPage == 0 && i%pdfColumns == 0 {
			newPage()
		}
		col := i % pdfColumns
		x := pdfMargin + float64(col)*(pdfSwatch+pdfGap)
		y := pdfMargin + pdfHeader + float64(row%rowsPerPage)*rowHeight

		pdf.SetFillColor(int(rgb.R), int(rgb.G), int(rgb.B))
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, y, pdfSwatch, pdfSwatch, "FD")

		fg := colour.Contrasting(rgb)
		pdf.SetTextColor(int(fg.R), int(fg.G), int(fg.B))
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetXY(x+1, y+1)
		pdf.CellFormat(8, 4, strconv.Itoa(i+1), "", 0, "L", false, 0, "")

		name, _ := colour.NearestName(rgb)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Courier", "B", 9)
		pdf.SetXY(x, y+pdfSwatch+1)
		pdf.CellFormat(pdfSwatch, 4, rgb.Hex(), "", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(x, y+pdfSwatch+5)
		pdf.CellFormat(pdfSwatch, 4, name, "", 0, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
