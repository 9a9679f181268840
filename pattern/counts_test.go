package pattern

import (
	"image/color"
	"reflect"
	"testing"

	"beadkit/palette"
)

func TestCounts(t *testing.T) {
	g := newGrid(3, 2)
	g.set(0, 0, filled(255, 0, 0))
	g.set(1, 0, filled(0, 0, 255))
	g.set(2, 0, filled(255, 0, 0))
	g.set(0, 1, filled(0, 255, 0))
	g.set(1, 1, filled(0, 0, 255))

	want := []Count{
		{Color: color.RGBA{B: 255, A: 255}, Beads: 2},
		{Color: color.RGBA{R: 255, A: 255}, Beads: 2},
		{Color: color.RGBA{G: 255, A: 255}, Beads: 1},
	}
	if got := g.Counts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Counts() = %+v, want %+v", got, want)
	}
}

func TestCountsEmpty(t *testing.T) {
	if got := newGrid(4, 4).Counts(); len(got) != 0 {
		t.Errorf("Counts() of an empty grid = %+v", got)
	}
}

func TestSnap(t *testing.T) {
	pal := palette.New("bw", color.Palette{
		color.RGBA{A: 255},
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})

	g := newGrid(3, 1)
	g.set(0, 0, filled(30, 20, 40))
	g.set(2, 0, filled(230, 240, 220))

	snapped := g.Snap(pal)
	want := []Cell{filled(0, 0, 0), {}, filled(255, 255, 255)}
	if !reflect.DeepEqual(snapped.Cells, want) {
		t.Errorf("Snap() cells = %+v, want %+v", snapped.Cells, want)
	}
	if g.Cell(0, 0) != filled(30, 20, 40) {
		t.Error("Snap() modified the source grid")
	}
}

func TestSnapEmptyPalette(t *testing.T) {
	g := newGrid(1, 1)
	g.set(0, 0, filled(1, 2, 3))

	snapped := g.Snap(palette.New("none", nil))
	if !reflect.DeepEqual(snapped.Cells, g.Cells) {
		t.Errorf("Snap() with empty palette = %+v", snapped.Cells)
	}
}
