package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/whowasfra/cargopack/internal/model"
)

// sizePattern matches dimension triples like 120x80x60, 1.2×0.8×0.6, or
// 120*80*60 inside a cell.
var sizePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[×x*]\s*(\d+(?:\.\d+)?)\s*[×x*]\s*(\d+(?:\.\d+)?)`)

// ReadItemsExcel imports a batch from the first sheet of a workbook. The
// header row names the columns; sizeColumn cells hold width×height×depth
// triples and weightColumn cells hold plain numbers. Rows without a
// parsable size are skipped.
func ReadItemsExcel(path, sizeColumn, weightColumn string) ([]*model.Item, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheet)
	}

	sizeIdx, weightIdx := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case sizeColumn:
			sizeIdx = i
		case weightColumn:
			weightIdx = i
		}
	}
	if sizeIdx == -1 {
		return nil, fmt.Errorf("%s: size column %q not found", path, sizeColumn)
	}
	if weightIdx == -1 {
		return nil, fmt.Errorf("%s: weight column %q not found", path, weightColumn)
	}

	var items []*model.Item
	for rowIdx, row := range rows[1:] {
		if len(row) <= sizeIdx || len(row) <= weightIdx {
			continue
		}

		w, h, d, ok := extractSize(row[sizeIdx])
		if !ok {
			continue
		}
		weight, err := decimal.NewFromString(strings.TrimSpace(row[weightIdx]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad weight %q", path, rowIdx+2, row[weightIdx])
		}

		it, err := model.NewItem(fmt.Sprintf("row-%d", rowIdx+2), w, h, d, weight)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, rowIdx+2, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func extractSize(text string) (w, h, d decimal.Decimal, ok bool) {
	match := sizePattern.FindStringSubmatch(text)
	if len(match) < 4 {
		return decimal.Zero, decimal.Zero, decimal.Zero, false
	}
	w, err := decimal.NewFromString(match[1])
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, false
	}
	h, err = decimal.NewFromString(match[2])
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, false
	}
	d, err = decimal.NewFromString(match[3])
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, false
	}
	return w, h, d, true
}
