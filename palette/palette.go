// Package palette loads the colour sets beads are snapped to.
package palette

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"beadkit/okcolor"
)

// Palette is a named colour set with cached OKLab coordinates for matching.
type Palette struct {
	Name   string
	Colors color.Palette
	lab    []okcolor.Lab
}

func New(name string, colors color.Palette) *Palette {
	p := &Palette{
		Name:   name,
		Colors: colors,
		lab:    make([]okcolor.Lab, len(colors)),
	}
	for i, c := range colors {
		p.lab[i] = okcolor.LabModel.Convert(c).(okcolor.Lab)
	}
	return p
}

// Nearest returns the index and colour of the perceptually closest palette
// entry. It returns -1 and nil for an empty palette.
func (p *Palette) Nearest(c color.Color) (int, color.Color) {
	if len(p.Colors) == 0 {
		return -1, nil
	}

	lc := okcolor.LabModel.Convert(c).(okcolor.Lab)
	best, bestDist := 0, lc.Distance(p.lab[0])
	for i := 1; i < len(p.lab) && bestDist > 0; i++ {
		if d := lc.Distance(p.lab[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, p.Colors[best]
}

func (p *Palette) Len() int {
	return len(p.Colors)
}

// Load resolves name to a built-in palette, a RIFF .pal file, or a text file
// with one hex colour per line.
func Load(name string) (*Palette, error) {
	if hexes, ok := builtin[name]; ok {
		colors, err := parseHexList(hexes)
		if err != nil {
			return nil, fmt.Errorf("invalid built-in palette %q: %w", name, err)
		}
		return New(name, colors), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	var colors color.Palette
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pal":
		pals, err := ReadRIFF(f)
		if err != nil {
			return nil, fmt.Errorf("could not read palette %q: %w", name, err)
		}
		for _, pal := range pals {
			colors = append(colors, pal...)
		}
	default:
		if colors, err = ReadHex(f); err != nil {
			return nil, fmt.Errorf("could not read palette %q: %w", name, err)
		}
	}

	if len(colors) == 0 {
		return nil, fmt.Errorf("palette %q has no colours", name)
	}
	return New(filepath.Base(name), colors), nil
}

// Builtin lists the names accepted by Load without a file.
func Builtin() []string {
	return []string{"bw", "gray16", "vga16", "beads24"}
}

var builtin = map[string][]string{
	"bw": {"#000000", "#ffffff"},
	"gray16": {
		"#000000", "#111111", "#222222", "#333333", "#444444", "#555555", "#666666", "#777777",
		"#888888", "#999999", "#aaaaaa", "#bbbbbb", "#cccccc", "#dddddd", "#eeeeee", "#ffffff",
	},
	"vga16": {
		"#000000", "#0000aa", "#00aa00", "#00aaaa", "#aa0000", "#aa00aa", "#aa5500", "#aaaaaa",
		"#555555", "#5555ff", "#55ff55", "#55ffff", "#ff5555", "#ff55ff", "#ffff55", "#ffffff",
	},
	// common fuse bead shades
	"beads24": {
		"#ffffff", "#f0e6c8", "#fbe25a", "#f7a81b", "#f0642d", "#d8232a", "#a8193d", "#f49ac1",
		"#e6007e", "#8b4ea0", "#4a2c84", "#1f3f93", "#1c8fd6", "#7fcbe6", "#00a19a", "#39a935",
		"#9ccc3c", "#1e5631", "#8a5a2b", "#5b3a29", "#c9a27e", "#9d9d9c", "#4d4d4d", "#000000",
	},
}
