package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/whowasfra/cargopack/internal/engine"
	"github.com/whowasfra/cargopack/internal/model"
)

// Workbook writes the configuration to a spreadsheet: a summary sheet plus
// one sheet per bin listing every placement.
func Workbook(path string, configuration []*model.Bin, unfitted []*model.Item, stats engine.Statistics) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summary); err != nil {
		return err
	}

	summaryRows := [][]interface{}{
		{"Bins used", len(configuration)},
		{"Loaded volume", stats.LoadedVolume.InexactFloat64()},
		{"Loaded weight", stats.LoadedWeight.InexactFloat64()},
		{"Volume utilisation", stats.AverageVolume.InexactFloat64()},
		{"Unfitted items", len(unfitted)},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return err
		}
	}

	for _, bin := range configuration {
		sheet := fmt.Sprintf("Bin %d", bin.ID+1)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		header := []interface{}{"Item", "ID", "X", "Y", "Z", "Width", "Height", "Depth", "Weight"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}

		for i, it := range bin.Items {
			row := []interface{}{
				it.Name,
				it.ID,
				it.Position().X.InexactFloat64(),
				it.Position().Y.InexactFloat64(),
				it.Position().Z.InexactFloat64(),
				it.Width().InexactFloat64(),
				it.Height().InexactFloat64(),
				it.Depth().InexactFloat64(),
				it.Weight.InexactFloat64(),
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}

		cog := bin.CenterOfGravity()
		footer := []interface{}{
			"Center of gravity", "",
			cog.X.InexactFloat64(), cog.Y.InexactFloat64(), cog.Z.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, len(bin.Items)+3)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &footer); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
