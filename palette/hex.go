package palette

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ReadHex reads one #RRGGBB colour per line. Blank lines and lines starting
// with ';' or '#' followed by a space are skipped.
func ReadHex(r io.Reader) (color.Palette, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "# ") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not scan hex palette: %w", err)
	}

	return parseHexList(lines)
}

// WriteHex writes the palette in the format ReadHex reads.
func WriteHex(w io.Writer, pal color.Palette) error {
	for i, c := range pal {
		cf, _ := colorful.MakeColor(c)
		if _, err := fmt.Fprintln(w, cf.Hex()); err != nil {
			return fmt.Errorf("could not write colour %d/%d: %w", i, len(pal), err)
		}
	}
	return nil
}

func parseHexList(hexes []string) (color.Palette, error) {
	pal := make(color.Palette, 0, len(hexes))
	for i, h := range hexes {
		if !strings.HasPrefix(h, "#") {
			h = "#" + h
		}
		cf, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q on entry %d: %w", h, i, err)
		}
		r, g, b := cf.RGB255()
		pal = append(pal, color.RGBA{R: r, G: g, B: b, A: 0xFF})
	}
	return pal, nil
}
