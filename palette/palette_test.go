package palette

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadBuiltin(t *testing.T) {
	want := map[string]int{"bw": 2, "gray16": 16, "vga16": 16, "beads24": 24}

	for _, name := range Builtin() {
		t.Run(name, func(t *testing.T) {
			p, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", name, err)
			}
			if p.Len() != want[name] {
				t.Errorf("Load(%q) has %d colours, want %d", name, p.Len(), want[name])
			}
		})
	}
}

func TestNearest(t *testing.T) {
	p, err := Load("vga16")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   color.Color
		want color.RGBA
	}{
		{color.RGBA{R: 250, G: 90, B: 85, A: 255}, color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}},
		{color.RGBA{R: 2, G: 1, B: 3, A: 255}, color.RGBA{A: 0xff}},
		{color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 255}, color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}},
	}

	for _, tt := range tests {
		_, got := p.Nearest(tt.in)
		if got != tt.want {
			t.Errorf("Nearest(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNearestEmpty(t *testing.T) {
	if i, c := New("empty", nil).Nearest(color.White); i != -1 || c != nil {
		t.Errorf("Nearest on empty palette = %d, %v", i, c)
	}
}

func TestRIFFRoundTrip(t *testing.T) {
	pals := []color.Palette{
		{color.RGBA{R: 1, G: 2, B: 3, A: 255}, color.RGBA{R: 250, G: 128, B: 0, A: 255}},
		{color.RGBA{R: 9, G: 9, B: 9, A: 255}},
	}

	var buf bytes.Buffer
	n, err := WriteRIFF(&buf, pals)
	if err != nil {
		t.Fatalf("WriteRIFF() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteRIFF() reported %d bytes, wrote %d", n, buf.Len())
	}

	got, err := ReadRIFF(&buf)
	if err != nil {
		t.Fatalf("ReadRIFF() error = %v", err)
	}
	if !reflect.DeepEqual(got, pals) {
		t.Errorf("ReadRIFF() = %v, want %v", got, pals)
	}
}

func TestReadRIFFRejectsOtherForms(t *testing.T) {
	doc := []byte("RIFF\x04\x00\x00\x00WAVE")
	if _, err := ReadRIFF(bytes.NewReader(doc)); err == nil {
		t.Error("ReadRIFF() accepted a WAVE document")
	}
}

func TestReadHex(t *testing.T) {
	in := "; bead colours\n#ff0000\n\n00ff00\n# comment\n#00f\n"

	got, err := ReadHex(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadHex() error = %v", err)
	}
	want := color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadHex() = %v, want %v", got, want)
	}

	if _, err := ReadHex(strings.NewReader("#zzzzzz\n")); err == nil {
		t.Error("ReadHex() accepted an invalid colour")
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	pal := color.Palette{color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.RGBA{R: 40, G: 50, B: 60, A: 255}}

	var riff bytes.Buffer
	if _, err := WriteRIFF(&riff, []color.Palette{pal}); err != nil {
		t.Fatal(err)
	}
	palPath := filepath.Join(dir, "mine.pal")
	if err := os.WriteFile(palPath, riff.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var hex bytes.Buffer
	if err := WriteHex(&hex, pal); err != nil {
		t.Fatal(err)
	}
	hexPath := filepath.Join(dir, "mine.hex")
	if err := os.WriteFile(hexPath, hex.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{palPath, hexPath} {
		p, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", path, err)
		}
		if !reflect.DeepEqual(p.Colors, pal) {
			t.Errorf("Load(%q) colours = %v, want %v", path, p.Colors, pal)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.pal")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}
