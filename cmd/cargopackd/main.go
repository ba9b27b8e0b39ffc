// cargopackd — HTTP JSON API around the placement engine.
//
// POST /pack accepts a job (fleet, default bin, items, options) and returns
// the computed placement, the unfitted items, and the run statistics.
//
// Build:
//
//	go build -o cargopackd ./cmd/cargopackd
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whowasfra/cargopack/internal/constraint"
	"github.com/whowasfra/cargopack/internal/engine"
	"github.com/whowasfra/cargopack/internal/manifest"
	"github.com/whowasfra/cargopack/internal/model"
)

// packRequest is the body of POST /pack.
type packRequest struct {
	DefaultBin  *manifest.BinSpec   `json:"default_bin,omitempty"`
	Fleet       []manifest.BinSpec  `json:"fleet"`
	Items       []manifest.ItemSpec `json:"items"`
	Strategy    string              `json:"strategy,omitempty"`
	Constraints []string            `json:"constraints,omitempty"`
	Decimals    int32               `json:"decimals,omitempty"`
	// HeightWeight and CompactWeight tune the multi_anchor score.
	HeightWeight  *float64 `json:"height_weight,omitempty"`
	CompactWeight *float64 `json:"compact_weight,omitempty"`
}

// placement is one placed item in the response.
type placement struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	X        string `json:"x"`
	Y        string `json:"y"`
	Z        string `json:"z"`
	Width    string `json:"width"`
	Height   string `json:"height"`
	Depth    string `json:"depth"`
	Weight   string `json:"weight"`
	Priority int    `json:"priority,omitempty"`
}

// packedBin is one allocated bin in the response.
type packedBin struct {
	ID        int         `json:"id"`
	Model     string      `json:"model"`
	Weight    string      `json:"weight"`
	MaxWeight string      `json:"max_weight"`
	CoG       [3]string   `json:"cog"`
	Items     []placement `json:"items"`
}

// packResponse is the body returned by POST /pack.
type packResponse struct {
	Bins       []packedBin       `json:"bins"`
	Unfitted   []placement       `json:"unfitted"`
	Statistics engine.Statistics `json:"statistics"`
}

func main() {
	addr := flag.String("addr", ":8080", "Listen address.")
	flag.Parse()

	r := gin.Default()
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/pack", handlePack)

	log.Printf("cargopackd listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatal(err)
	}
}

func handlePack(c *gin.Context) {
	var req packRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := manifest.Manifest{DefaultBin: req.DefaultBin, Fleet: req.Fleet, Items: req.Items}
	fleet, defaultBin, items, err := job.Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no items to pack"})
		return
	}

	opts := engine.DefaultPackOptions()
	if req.Strategy != "" {
		opts.Strategy = engine.Strategy(req.Strategy)
	}
	if req.Decimals > 0 {
		opts.NumberOfDecimals = req.Decimals
	}
	if req.HeightWeight != nil {
		opts.HeightWeight = *req.HeightWeight
	}
	if req.CompactWeight != nil {
		opts.CompactWeight = *req.CompactWeight
	}
	if len(req.Constraints) > 0 {
		opts.Constraints = nil
		for _, name := range req.Constraints {
			built, ok := constraint.New(name)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown constraint: " + name})
				return
			}
			opts.Constraints = append(opts.Constraints, built)
		}
	}

	packer := engine.New()
	packer.AddFleet(fleet...)
	if defaultBin != nil {
		packer.SetDefaultBin(defaultBin)
	}
	packer.AddBatch(items...)
	packer.Pack(opts)

	c.JSON(http.StatusOK, buildResponse(packer))
}

func buildResponse(packer *engine.Packer) packResponse {
	resp := packResponse{
		Bins:       make([]packedBin, 0, len(packer.Configuration())),
		Unfitted:   make([]placement, 0, len(packer.Unfitted())),
		Statistics: packer.Statistics(),
	}

	for _, bin := range packer.Configuration() {
		cog := bin.CenterOfGravity()
		out := packedBin{
			ID:        bin.ID,
			Model:     bin.Model.Name,
			Weight:    bin.Weight.String(),
			MaxWeight: bin.MaxWeight().String(),
			CoG:       [3]string{cog.X.String(), cog.Y.String(), cog.Z.String()},
			Items:     make([]placement, 0, len(bin.Items)),
		}
		for _, it := range bin.Items {
			out.Items = append(out.Items, toPlacement(it))
		}
		resp.Bins = append(resp.Bins, out)
	}
	for _, it := range packer.Unfitted() {
		resp.Unfitted = append(resp.Unfitted, toPlacement(it))
	}
	return resp
}

func toPlacement(it *model.Item) placement {
	pos := it.Position()
	return placement{
		Name:     it.Name,
		ID:       it.ID,
		X:        pos.X.String(),
		Y:        pos.Y.String(),
		Z:        pos.Z.String(),
		Width:    it.Width().String(),
		Height:   it.Height().String(),
		Depth:    it.Depth().String(),
		Weight:   it.Weight.String(),
		Priority: it.Priority,
	}
}
