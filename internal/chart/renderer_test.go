package chart

import (
	"bytes"
	"context"
	"testing"

	"spendtrack/internal/core"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderProducesPNG(t *testing.T) {
	r := NewRenderer()
	series := []core.CategoryAmount{
		{Name: "Rent", Amount: core.Money{Cents: 15000}},
		{Name: "Food", Amount: core.Money{Cents: 5000}},
	}

	data, err := r.Render(context.Background(), series, "$")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("expected PNG output, got %d bytes", len(data))
	}
}

func TestRenderSingleCategory(t *testing.T) {
	r := NewRenderer()
	data, err := r.Render(context.Background(),
		[]core.CategoryAmount{{Name: "Misc", Amount: core.Money{Cents: 100}}}, "$")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("expected PNG output")
	}
}

func TestRenderEqualValues(t *testing.T) {
	r := NewRenderer()
	series := []core.CategoryAmount{
		{Name: "Rent", Amount: core.Money{Cents: 5000}},
		{Name: "Food", Amount: core.Money{Cents: 5000}},
	}

	data, err := r.Render(context.Background(), series, "$")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("expected PNG output")
	}
}

func TestRenderEmptySeries(t *testing.T) {
	r := NewRenderer()
	if _, err := r.Render(context.Background(), nil, "$"); err == nil {
		t.Fatalf("expected error for empty series")
	}
}
