// Package export renders packed configurations into the formats the
// logistics side consumes: PDF load plans, QR item labels, spreadsheet
// workbooks, and interactive HTML views.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/whowasfra/cargopack/internal/engine"
	"github.com/whowasfra/cargopack/internal/model"
)

// itemColor represents an RGB color for a placed item.
type itemColor struct {
	R, G, B int
}

var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// PDF generates a load plan document: each bin on its own page with a
// top-view diagram of the item footprints, followed by a summary page.
func PDF(path string, configuration []*model.Bin, unfitted []*model.Item, stats engine.Statistics) error {
	if len(configuration) == 0 {
		return fmt.Errorf("no bins to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, bin := range configuration {
		pdf.AddPage()
		renderBinPage(pdf, bin)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, configuration, unfitted, stats)

	return pdf.OutputFileAndClose(path)
}

// renderBinPage draws one bin's top view (X across, Z down) on the current page.
func renderBinPage(pdf *fpdf.Fpdf, bin *model.Bin) {
	binWidth := bin.Width().InexactFloat64()
	binDepth := bin.Depth().InexactFloat64()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Bin %d: %s (%s x %s x %s)", bin.ID+1, bin.Model.Name,
		bin.Width(), bin.Height(), bin.Depth())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	cog := bin.CenterOfGravity()
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Weight: %s / %s | CoG: (%s, %s, %s)",
		len(bin.Items), bin.Weight, bin.MaxWeight(), cog.X, cog.Y, cog.Z)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scale := math.Min(drawWidth/binWidth, drawHeight/binDepth)
	canvasW := binWidth * scale
	canvasH := binDepth * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Bin floor background.
	pdf.SetFillColor(230, 230, 230)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, it := range bin.Items {
		col := itemColors[i%len(itemColors)]
		px := offsetX + it.Position().X.InexactFloat64()*scale
		py := offsetY + it.Position().Z.InexactFloat64()*scale
		pw := it.Width().InexactFloat64() * scale
		ph := it.Depth().InexactFloat64() * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.SetAlpha(0.75, "Normal")
		pdf.Rect(px, py, pw, ph, "FD")
		pdf.SetAlpha(1.0, "Normal")

		if pw > 14 && ph > 6 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(20, 20, 20)
			label := fmt.Sprintf("%s @y=%s", it.Name, it.Position().Y)
			pdf.Text(px+1.5, py+4, label)
		}
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws overall statistics and the unfitted item list.
func renderSummaryPage(pdf *fpdf.Fpdf, configuration []*model.Bin, unfitted []*model.Item, stats engine.Statistics) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Load Plan Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Bins used: %d", len(configuration)),
		fmt.Sprintf("Loaded volume: %s", stats.LoadedVolume),
		fmt.Sprintf("Loaded weight: %s", stats.LoadedWeight),
		fmt.Sprintf("Volume utilisation: %.1f%%", stats.AverageVolume.InexactFloat64()*100),
		fmt.Sprintf("Unfitted items: %d", len(unfitted)),
	}
	y := marginTop + headerHeight + 4
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, line, "", 1, "L", false, 0, "")
		y += 7
	}

	if len(unfitted) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetXY(marginLeft, y+3)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, "Left behind:", "", 1, "L", false, 0, "")
		y += 10

		pdf.SetFont("Helvetica", "", 9)
		for _, it := range unfitted {
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, it.String(), "", 1, "L", false, 0, "")
			y += 5
			if y > pageHeight-marginBottom {
				pdf.AddPage()
				y = marginTop
			}
		}
	}
}
