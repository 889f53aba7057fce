package main

import (
	"image/color"
	"testing"

	"github.com/uitrail/uitrail/pkg/model"
)

func renderTree() *model.Snapshot {
	root := model.Element{ID: 1, Kind: model.KindContainer, Bounds: [4]int{0, 0, 200, 100}, Children: []model.Element{
		{ID: 2, Kind: model.KindCheckbox, Text: "Wrap", Bounds: [4]int{10, 10, 80, 20}},
	}}
	return model.Index(&root)
}

func TestRenderSnapshot(t *testing.T) {
	img, count := renderSnapshot(renderTree(), renderOptions{Mode: labelNone})
	if count != 2 {
		t.Fatalf("drew %d boxes, want 2", count)
	}

	b := img.Bounds()
	if b.Dx() != 200+renderMargin || b.Dy() != 100+renderMargin {
		t.Errorf("canvas = %dx%d, want %dx%d", b.Dx(), b.Dy(), 200+renderMargin, 100+renderMargin)
	}

	// Top-left corner of the checkbox box should carry a border pixel.
	if img.RGBAAt(10, 10) == (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Error("expected a box border pixel at (10, 10), found background")
	}
}

func TestRenderSnapshot_Highlight(t *testing.T) {
	img, _ := renderSnapshot(renderTree(), renderOptions{Mode: labelNone, Highlight: 2})

	// The highlighted element gets a doubled border one pixel out.
	want := color.RGBA{R: 220, G: 30, B: 30, A: 255}
	if got := img.RGBAAt(9, 9); got != want {
		t.Errorf("highlight border pixel = %v, want %v", got, want)
	}
}
