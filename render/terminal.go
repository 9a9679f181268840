package render

import (
	"fmt"

	"beadkit/pattern"

	"github.com/gdamore/tcell/v2"
)

// CellWriter is the part of a tcell screen the terminal preview draws on.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Terminal paints grid onto w, two terminal columns per bead so cells come
// out roughly square. Empty cells show a dim dot.
func Terminal(w CellWriter, grid *pattern.Grid) {
	for y := range grid.Rows {
		for x := range grid.Columns {
			cell := grid.Cell(x, y)
			if !cell.Filled {
				w.SetContent(2*x, y, '·', nil, emptyStyle)
				w.SetContent(2*x+1, y, ' ', nil, tcell.StyleDefault)
				continue
			}

			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(cell.R), int32(cell.G), int32(cell.B)))
			w.SetContent(2*x, y, ' ', nil, style)
			w.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
}

// ShowTerminal displays grid full screen until a key is pressed.
func ShowTerminal(grid *pattern.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("could not initialise terminal: %w", err)
	}
	defer screen.Fini()

	draw := func() {
		screen.Clear()
		Terminal(screen, grid)
		screen.Show()
	}
	draw()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
