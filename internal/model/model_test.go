package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whowasfra/cargopack/internal/geometry"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func mustItem(t *testing.T, name, w, h, dp, weight string) *Item {
	t.Helper()
	it, err := NewItem(name, d(w), d(h), d(dp), d(weight))
	require.NoError(t, err)
	return it
}

func mustModel(t *testing.T, name, w, h, dp, maxWeight string) *BinModel {
	t.Helper()
	m, err := NewBinModel(name, d(w), d(h), d(dp), d(maxWeight))
	require.NoError(t, err)
	return m
}

// rejectAll is a constraint that never admits a placement.
type rejectAll struct{}

func (rejectAll) Name() string              { return "reject_all" }
func (rejectAll) Weight() int               { return 0 }
func (rejectAll) Evaluate(*Bin, *Item) bool { return false }

// acceptAll admits everything.
type acceptAll struct{}

func (acceptAll) Name() string              { return "accept_all" }
func (acceptAll) Weight() int               { return 0 }
func (acceptAll) Evaluate(*Bin, *Item) bool { return true }

func TestNewItem_Validation(t *testing.T) {
	_, err := NewItem("flat", d("0"), d("1"), d("1"), d("1"))
	assert.Error(t, err)

	_, err = NewItem("negative", d("1"), d("-1"), d("1"), d("1"))
	assert.Error(t, err)

	_, err = NewItem("antigravity", d("1"), d("1"), d("1"), d("-5"))
	assert.Error(t, err)

	it, err := NewItem("ok", d("1"), d("2"), d("3"), d("0"))
	require.NoError(t, err)
	assert.NotEmpty(t, it.ID)
	assert.True(t, it.Volume().Equal(d("6")))
}

func TestItem_CenterAndTop(t *testing.T) {
	it := mustItem(t, "box", "4", "2", "6", "10")
	it.SetPosition(geometry.NewVector3(d("1"), d("1"), d("1")))

	center := it.Center()
	assert.True(t, center.X.Equal(d("3")))
	assert.True(t, center.Y.Equal(d("2")))
	assert.True(t, center.Z.Equal(d("4")))
	assert.True(t, it.Top().Equal(d("3")))
}

func TestBin_PutItemCommitsOnSuccess(t *testing.T) {
	bin := NewBin(0, mustModel(t, "van", "10", "10", "10", "100"))
	it := mustItem(t, "crate", "2", "2", "2", "8")

	ok := bin.PutItem(it, []Constraint{acceptAll{}})

	require.True(t, ok)
	assert.Len(t, bin.Items, 1)
	assert.True(t, bin.Weight.Equal(d("8")))
}

func TestBin_PutItemLeavesBinUnchangedOnFailure(t *testing.T) {
	bin := NewBin(0, mustModel(t, "van", "10", "10", "10", "100"))
	it := mustItem(t, "crate", "2", "2", "2", "8")

	ok := bin.PutItem(it, []Constraint{acceptAll{}, rejectAll{}})

	require.False(t, ok)
	assert.Empty(t, bin.Items)
	assert.True(t, bin.Weight.IsZero())
}

func TestBin_RemoveItem(t *testing.T) {
	bin := NewBin(0, mustModel(t, "van", "10", "10", "10", "100"))
	a := mustItem(t, "a", "2", "2", "2", "3")
	b := mustItem(t, "b", "2", "2", "2", "4")
	bin.AddItem(a)
	bin.AddItem(b)

	require.True(t, bin.RemoveItem(a))
	assert.Len(t, bin.Items, 1)
	assert.Same(t, b, bin.Items[0])
	assert.True(t, bin.Weight.Equal(d("4")))

	assert.False(t, bin.RemoveItem(a), "removing twice fails")
}

func TestBin_CenterOfGravityEmpty(t *testing.T) {
	bin := NewBin(0, mustModel(t, "van", "10", "8", "6", "100"))

	cog := bin.CenterOfGravity()
	assert.True(t, cog.X.Equal(d("5")))
	assert.True(t, cog.Y.Equal(d("4")))
	assert.True(t, cog.Z.Equal(d("3")))
}

func TestBin_CenterOfGravityWeighted(t *testing.T) {
	bin := NewBin(0, mustModel(t, "van", "10", "10", "10", "100"))

	a := mustItem(t, "heavy", "2", "2", "2", "30")
	a.SetPosition(geometry.NewVector3(d("0"), d("0"), d("0"))) // centre (1,1,1)
	bin.AddItem(a)

	b := mustItem(t, "light", "2", "2", "2", "10")
	b.SetPosition(geometry.NewVector3(d("8"), d("0"), d("0"))) // centre (9,1,1)
	bin.AddItem(b)

	cog := bin.CenterOfGravity()
	// (1*30 + 9*10) / 40 = 3
	assert.True(t, cog.X.Equal(d("3")), "got %s", cog.X)
	assert.True(t, cog.Y.Equal(d("1")))
	assert.True(t, cog.Z.Equal(d("1")))
}

func TestQuantize(t *testing.T) {
	it := mustItem(t, "rough", "1.23456", "2.5", "3.00049", "9.8765")
	it.Quantize(3)

	assert.True(t, it.Width().Equal(d("1.235")))
	assert.True(t, it.Depth().Equal(d("3")))
	assert.True(t, it.Weight.Equal(d("9.877")))

	m := mustModel(t, "van", "10.0004", "10", "10", "99.9996")
	m.Quantize(3)
	assert.True(t, m.Width().Equal(d("10")))
	assert.True(t, m.MaxWeight.Equal(d("100")))
}
