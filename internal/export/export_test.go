package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/whowasfra/cargopack/internal/engine"
	"github.com/whowasfra/cargopack/internal/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// packedFixture runs a real pack so exports see positions the engine produced.
func packedFixture(t *testing.T) (*engine.Packer, []*model.Bin) {
	t.Helper()

	van, err := model.NewBinModel("van", d("10"), d("10"), d("10"), d("100"))
	require.NoError(t, err)

	a, err := model.NewItem("slab-a", d("10"), d("5"), d("10"), d("10"))
	require.NoError(t, err)
	b, err := model.NewItem("slab-b", d("10"), d("5"), d("10"), d("10"))
	require.NoError(t, err)

	p := engine.New()
	p.AddBin(van)
	p.AddBatch(a, b)
	p.Pack(engine.DefaultPackOptions())

	require.Len(t, p.Configuration(), 1)
	require.Len(t, p.Configuration()[0].Items, 2)
	return p, p.Configuration()
}

func TestPDF(t *testing.T) {
	p, configuration := packedFixture(t)
	path := filepath.Join(t.TempDir(), "plan.pdf")

	require.NoError(t, PDF(path, configuration, p.Unfitted(), p.Statistics()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestPDF_EmptyConfiguration(t *testing.T) {
	err := PDF(filepath.Join(t.TempDir(), "plan.pdf"), nil, nil, engine.Statistics{})
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	_, configuration := packedFixture(t)
	path := filepath.Join(t.TempDir(), "labels.pdf")

	require.NoError(t, Labels(path, configuration))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestCollectLabelInfos(t *testing.T) {
	_, configuration := packedFixture(t)

	labels := CollectLabelInfos(configuration)
	require.Len(t, labels, 2)
	assert.Equal(t, 1, labels[0].BinIndex)
	assert.Equal(t, "van", labels[0].BinName)

	names := []string{labels[0].ItemName, labels[1].ItemName}
	assert.ElementsMatch(t, []string{"slab-a", "slab-b"}, names)
}

func TestWorkbook(t *testing.T) {
	p, configuration := packedFixture(t)
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	require.NoError(t, Workbook(path, configuration, p.Unfitted(), p.Statistics()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Summary")
	assert.Contains(t, f.GetSheetList(), "Bin 1")

	header, err := f.GetCellValue("Bin 1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Item", header)

	first, err := f.GetCellValue("Bin 1", "A2")
	require.NoError(t, err)
	assert.NotEmpty(t, first)
}

func TestHTML(t *testing.T) {
	_, configuration := packedFixture(t)
	path := filepath.Join(t.TempDir(), "plan.html")

	require.NoError(t, HTML(path, configuration))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.Contains(html, "Bin 1"), "page should reference the bin")
	assert.True(t, strings.Contains(html, "slab-a"), "page should reference the items")
}

func TestHTML_EmptyConfiguration(t *testing.T) {
	err := HTML(filepath.Join(t.TempDir(), "plan.html"), nil)
	assert.Error(t, err)
}
