package manifest

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func sampleManifest() Manifest {
	return Manifest{
		DefaultBin: &BinSpec{Name: "van", Width: d("1.67"), Height: d("2"), Depth: d("3.1"), MaxWeight: d("1400")},
		Fleet: []BinSpec{
			{Name: "truck", Width: d("2.4"), Height: d("2.6"), Depth: d("12"), MaxWeight: d("24000")},
		},
		Items: []ItemSpec{
			{Name: "pallet", Width: d("0.8"), Height: d("1"), Depth: d("1.2"), Weight: d("300"), Priority: 2},
		},
	}
}

func TestManifest_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs", "load.json")

	require.NoError(t, Save(path, sampleManifest()))

	loaded, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, loaded.DefaultBin)
	assert.Equal(t, "van", loaded.DefaultBin.Name)
	assert.True(t, loaded.DefaultBin.Width.Equal(d("1.67")))
	require.Len(t, loaded.Fleet, 1)
	require.Len(t, loaded.Items, 1)
	assert.True(t, loaded.Items[0].Weight.Equal(d("300")))
	assert.Equal(t, 2, loaded.Items[0].Priority)
}

func TestManifest_Build(t *testing.T) {
	fleet, defaultBin, items, err := sampleManifest().Build()
	require.NoError(t, err)

	require.Len(t, fleet, 1)
	assert.Equal(t, "truck", fleet[0].Name)
	require.NotNil(t, defaultBin)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Priority)
}

func TestManifest_BuildRejectsInvalidEntries(t *testing.T) {
	m := sampleManifest()
	m.Items = append(m.Items, ItemSpec{Name: "flat", Width: d("0"), Height: d("1"), Depth: d("1"), Weight: d("1")})

	_, _, _, err := m.Build()
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestSettings_LoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "greedy", s.Strategy)
	assert.FileExists(t, path)

	s.Strategy = "multi_anchor"
	require.NoError(t, SaveSettings(path, s))

	reloaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "multi_anchor", reloaded.Strategy)
}

func TestReadItemsExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Size"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Weight"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "1.2x0.8x0.6"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "25.5"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "misc text without dims"))
	require.NoError(t, f.SetCellValue(sheet, "B3", "1"))
	require.NoError(t, f.SetCellValue(sheet, "A4", "crate 40×30×20 cm"))
	require.NoError(t, f.SetCellValue(sheet, "B4", "8"))
	require.NoError(t, f.SaveAs(path))

	items, err := ReadItemsExcel(path, "Size", "Weight")
	require.NoError(t, err)
	require.Len(t, items, 2, "rows without a parsable size are skipped")

	assert.True(t, items[0].Width().Equal(d("1.2")))
	assert.True(t, items[0].Depth().Equal(d("0.6")))
	assert.True(t, items[0].Weight.Equal(d("25.5")))
	assert.True(t, items[1].Width().Equal(d("40")))
}

func TestReadItemsExcel_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Size"))
	require.NoError(t, f.SaveAs(path))

	_, err := ReadItemsExcel(path, "Size", "Weight")
	assert.Error(t, err)
}
