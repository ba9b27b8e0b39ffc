// cargopack — 3D cargo placement for a fleet of bins.
//
// Loads a job manifest (or generates a synthetic batch), runs the placement
// engine, prints the resulting load plan, and optionally exports it.
//
// Build:
//
//	go build -o cargopack ./cmd/cargopack
//
// Examples:
//
//	cargopack -manifest job.json -strategy multi_anchor -out-pdf plan.pdf
//	cargopack -generate 50 -seed 42 -bin 2x2x3:1400 -constraints weight_within_limit,fits_inside_bin,no_overlap,is_supported
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/constraint"
	"github.com/whowasfra/cargopack/internal/engine"
	"github.com/whowasfra/cargopack/internal/export"
	"github.com/whowasfra/cargopack/internal/manifest"
	"github.com/whowasfra/cargopack/internal/model"
)

func main() {
	manifestPath := flag.String("manifest", "", "Path to a JSON job manifest (fleet, default bin, items).")
	xlsxPath := flag.String("import-xlsx", "", "Import the batch from a spreadsheet instead of the manifest items.")
	sizeColumn := flag.String("size-column", "Size", "Header of the spreadsheet column holding WxHxD sizes.")
	weightColumn := flag.String("weight-column", "Weight", "Header of the spreadsheet column holding weights.")

	generate := flag.Int("generate", 0, "Generate this many random items instead of reading a batch.")
	seed := flag.Int64("seed", 1, "Seed for the synthetic batch.")
	binSpec := flag.String("bin", "", "Default bin as WxHxD:maxweight, e.g. 2x2x3:1400.")

	strategy := flag.String("strategy", "", "Placement strategy: greedy or multi_anchor (defaults to config).")
	constraintList := flag.String("constraints", "", "Comma-separated constraint names (defaults to config).")
	decimals := flag.Int("decimals", 0, "Decimal precision for this run (defaults to config).")

	outPDF := flag.String("out-pdf", "", "Write a PDF load plan to this path.")
	outXLSX := flag.String("out-xlsx", "", "Write a spreadsheet load plan to this path.")
	outHTML := flag.String("out-html", "", "Write an interactive HTML view to this path.")
	outLabels := flag.String("out-labels", "", "Write QR item labels to this path.")
	flag.Parse()

	settingsPath, err := manifest.DefaultSettingsPath()
	if err != nil {
		log.Fatalf("resolve config path: %v", err)
	}
	settings, err := manifest.LoadSettings(settingsPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *strategy != "" {
		settings.Strategy = *strategy
	}
	if *decimals > 0 {
		settings.NumberOfDecimals = int32(*decimals)
	}
	if *constraintList != "" {
		settings.Constraints = strings.Split(*constraintList, ",")
	}

	packer := engine.New()

	var items []*model.Item
	switch {
	case *manifestPath != "":
		job, err := manifest.Load(*manifestPath)
		if err != nil {
			log.Fatalf("load manifest: %v", err)
		}
		fleet, defaultBin, batch, err := job.Build()
		if err != nil {
			log.Fatalf("invalid manifest: %v", err)
		}
		packer.AddFleet(fleet...)
		if defaultBin != nil {
			packer.SetDefaultBin(defaultBin)
		}
		items = batch
	case *generate > 0:
		items = engine.GenerateItems(engine.DefaultGeneratorConfig(), *generate, *seed)
	default:
		fmt.Println("Usage: cargopack -manifest job.json | -generate N [-bin WxHxD:maxweight] [options]")
		fmt.Println(" - Packs the batch into the fleet and reports the placement per bin.")
		fmt.Println(" - Exports are optional: -out-pdf, -out-xlsx, -out-html, -out-labels.")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *xlsxPath != "" {
		batch, err := manifest.ReadItemsExcel(*xlsxPath, *sizeColumn, *weightColumn)
		if err != nil {
			log.Fatalf("import batch: %v", err)
		}
		items = batch
	}
	packer.AddBatch(items...)

	if *binSpec != "" {
		defaultBin, err := parseBinSpec(*binSpec)
		if err != nil {
			log.Fatalf("invalid -bin: %v", err)
		}
		packer.SetDefaultBin(defaultBin)
	}

	opts := engine.DefaultPackOptions()
	opts.Strategy = engine.Strategy(settings.Strategy)
	opts.NumberOfDecimals = settings.NumberOfDecimals
	opts.HeightWeight = settings.HeightWeight
	opts.CompactWeight = settings.CompactWeight
	opts.Constraints = nil
	for _, name := range settings.Constraints {
		c, ok := constraint.New(strings.TrimSpace(name))
		if !ok {
			log.Fatalf("unknown constraint %q (available: %s)", name, strings.Join(constraint.Names(), ", "))
		}
		opts.Constraints = append(opts.Constraints, c)
	}

	packer.Pack(opts)
	report(packer)

	if *outPDF != "" {
		if err := export.PDF(*outPDF, packer.Configuration(), packer.Unfitted(), packer.Statistics()); err != nil {
			log.Fatalf("export pdf: %v", err)
		}
		fmt.Printf("wrote %s\n", *outPDF)
	}
	if *outXLSX != "" {
		if err := export.Workbook(*outXLSX, packer.Configuration(), packer.Unfitted(), packer.Statistics()); err != nil {
			log.Fatalf("export workbook: %v", err)
		}
		fmt.Printf("wrote %s\n", *outXLSX)
	}
	if *outHTML != "" {
		if err := export.HTML(*outHTML, packer.Configuration()); err != nil {
			log.Fatalf("export html: %v", err)
		}
		fmt.Printf("wrote %s\n", *outHTML)
	}
	if *outLabels != "" {
		if err := export.Labels(*outLabels, packer.Configuration()); err != nil {
			log.Fatalf("export labels: %v", err)
		}
		fmt.Printf("wrote %s\n", *outLabels)
	}
}

func report(packer *engine.Packer) {
	for _, bin := range packer.Configuration() {
		cog := bin.CenterOfGravity()
		fmt.Printf("%s | CoG (%s, %s, %s)\n", bin, cog.X, cog.Y, cog.Z)
		for _, it := range bin.Items {
			pos := it.Position()
			fmt.Printf("  %-20s %sx%sx%s @ (%s, %s, %s)\n",
				it.Name, it.Width(), it.Height(), it.Depth(), pos.X, pos.Y, pos.Z)
		}
	}

	if unfitted := packer.Unfitted(); len(unfitted) > 0 {
		fmt.Printf("unfitted: %d\n", len(unfitted))
		for _, it := range unfitted {
			fmt.Printf("  %s\n", it)
		}
	}

	stats := packer.Statistics()
	fmt.Printf("loaded volume %s | loaded weight %s | utilisation %.1f%%\n",
		stats.LoadedVolume, stats.LoadedWeight, stats.AverageVolume.InexactFloat64()*100)
}

// parseBinSpec reads WxHxD:maxweight, e.g. "2x2x3:1400".
func parseBinSpec(spec string) (*model.BinModel, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected WxHxD:maxweight, got %q", spec)
	}
	dims := strings.Split(parts[0], "x")
	if len(dims) != 3 {
		return nil, fmt.Errorf("expected three dimensions, got %q", parts[0])
	}

	values := make([]decimal.Decimal, 0, 4)
	for _, raw := range append(dims, parts[1]) {
		v, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", raw, err)
		}
		values = append(values, v)
	}
	return model.NewBinModel("default", values[0], values[1], values[2], values[3])
}
