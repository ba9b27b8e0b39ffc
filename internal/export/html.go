package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/whowasfra/cargopack/internal/model"
)

// HTML writes an interactive page with one 3D scatter per bin: every placed
// item is a point at its geometric centre carrying its weight as a fourth
// value, and one more point marks the bin's centre of gravity. Axis ranges
// match the bin interior.
func HTML(path string, configuration []*model.Bin) error {
	if len(configuration) == 0 {
		return fmt.Errorf("no bins to export")
	}

	page := components.NewPage()
	page.PageTitle = "cargopack load plan"

	for _, bin := range configuration {
		scatter := charts.NewScatter3D()
		scatter.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title: fmt.Sprintf("Bin %d — %s (%d items, %s weight)",
					bin.ID+1, bin.Model.Name, len(bin.Items), bin.Weight),
			}),
			charts.WithXAxis3DOpts(opts.XAxis3D{Name: "width", Max: bin.Width().InexactFloat64()}),
			charts.WithYAxis3DOpts(opts.YAxis3D{Name: "height", Max: bin.Height().InexactFloat64()}),
			charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "depth", Max: bin.Depth().InexactFloat64()}),
		)

		data := make([]opts.Chart3DData, 0, len(bin.Items)+1)
		for _, it := range bin.Items {
			center := it.Center()
			data = append(data, opts.Chart3DData{
				Name: it.Name,
				Value: []interface{}{
					center.X.InexactFloat64(),
					center.Y.InexactFloat64(),
					center.Z.InexactFloat64(),
					it.Weight.InexactFloat64(),
				},
			})
		}

		cog := bin.CenterOfGravity()
		data = append(data, opts.Chart3DData{
			Name: "center of gravity",
			Value: []interface{}{
				cog.X.InexactFloat64(),
				cog.Y.InexactFloat64(),
				cog.Z.InexactFloat64(),
				0.0,
			},
		})

		scatter.AddSeries("items", data)
		page.AddCharts(scatter)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
