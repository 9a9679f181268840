// Package bead implements the command that turns pictures into bead patterns.
package bead

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"beadkit/palette"
	"beadkit/parallel"
	"beadkit/pattern"
	"beadkit/render"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Paths       []string `arg:"" optional:"" help:"Pictures or folders to convert" default:"."`
	Dest        string   `help:"Destination folder for patterns. Relative to each source folder if not absolute." default:"beads"`
	Columns     int      `help:"Beads per row" default:"20" group:"grid"`
	Rows        int      `help:"Bead rows" default:"20" group:"grid"`
	OffsetX     int      `help:"Horizontal shift of the sample points, in scaled pixels" default:"0" group:"grid"`
	OffsetY     int      `help:"Vertical shift of the sample points, in scaled pixels" default:"0" group:"grid"`
	Scale       float64  `help:"Scale applied to the picture before sampling" default:"1" group:"grid"`
	BeadSize    int      `help:"Rendered size of one bead in pixels" default:"20" group:"render"`
	NoHighlight bool     `help:"Draw flat beads without the glint" group:"render"`
	NoBorder    bool     `help:"Do not outline beads" group:"render"`
	Palette     string   `help:"Palette name (bw, gray16, vga16, beads24), PAL file in RIFF format or hex list file to snap beads to" group:"render"`
	Format      string   `help:"Output format of the pattern" enum:"png,gif,jpeg,bmp,tiff" default:"png" group:"render"`
	Preview     bool     `help:"Also write the source picture with the grid drawn over it"`
	Counts      bool     `help:"Log how many beads of each colour a pattern needs"`
	Show        bool     `help:"Display the pattern in the terminal (single picture only)"`
	Overwrite   bool     `help:"Replace existing output files"`

	Pal *palette.Palette `kong:"-"`
}

func (c *CLICmd) spec() pattern.Spec {
	return pattern.Spec{
		Columns: c.Columns,
		Rows:    c.Rows,
		OffsetX: c.OffsetX,
		OffsetY: c.OffsetY,
		Scale:   c.Scale,
	}
}

func (c *CLICmd) style() render.Style {
	style := render.DefaultStyle()
	style.BeadSize = c.BeadSize
	style.Highlight = style.Highlight && !c.NoHighlight
	style.Border = style.Border && !c.NoBorder
	return style
}

func (c *CLICmd) Validate() error {
	if err := c.spec().Validate(); err != nil {
		return err
	}
	if c.BeadSize <= 0 {
		return fmt.Errorf("invalid bead size: %d", c.BeadSize)
	}

	if len(c.Paths) == 0 {
		c.Paths = []string{"."}
	}
	for i, p := range c.Paths {
		abs, err := filepath.Abs(p)
		if err == nil {
			_, err = os.Stat(abs)
		}
		if err != nil {
			return fmt.Errorf("invalid source path %q: %w", p, err)
		}
		c.Paths[i] = abs
	}

	if c.Show {
		if len(c.Paths) != 1 {
			return fmt.Errorf("--show needs exactly one picture")
		}
		if info, _ := os.Stat(c.Paths[0]); info.IsDir() {
			return fmt.Errorf("--show needs a picture, not a folder")
		}
	}

	if c.Palette != "" {
		pal, err := palette.Load(c.Palette)
		if err != nil {
			return err
		}
		c.Pal = pal
	}

	return nil
}

type job struct {
	src     string
	dest    string
	scanned bool // found by listing a folder rather than named on the command line
}

func (c *CLICmd) jobs() ([]job, error) {
	var res []job
	for _, p := range c.Paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("could not stat %q: %w", p, err)
		}

		if !info.IsDir() {
			res = append(res, job{src: p, dest: c.destFor(filepath.Dir(p))})
			continue
		}

		files, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("unable to read folder %q: %w", p, err)
		}
		dest := c.destFor(p)
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			res = append(res, job{src: filepath.Join(p, file.Name()), dest: dest, scanned: true})
		}
	}
	return res, nil
}

func (c *CLICmd) destFor(srcDir string) string {
	if filepath.IsAbs(c.Dest) {
		return c.Dest
	}
	return filepath.Join(srcDir, c.Dest)
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	jobs, err := c.jobs()
	if err != nil {
		return err
	}

	dests := make(map[string]struct{})
	for _, j := range jobs {
		if _, ok := dests[j.dest]; ok {
			continue
		}
		if err := os.MkdirAll(j.dest, 0o755); err != nil {
			return fmt.Errorf("unable to create destination folder %q: %w", j.dest, err)
		}
		dests[j.dest] = struct{}{}
	}

	var (
		processedCount, skippedCount, errCount atomic.Uint64
		shown                                  atomic.Pointer[pattern.Grid]
	)
	for _, j := range jobs {
		pool.Do(func() {
			logger := slog.Default().With("file", j.src)

			grid, err := c.convert(logger, j)
			switch {
			case errors.Is(err, image.ErrFormat) && j.scanned:
				skippedCount.Add(1)
				logger.Debug("skipping file that is not a picture")
			case err != nil:
				errCount.Add(1)
				logger.Error("could not convert picture", "error", err)
			default:
				processedCount.Add(1)
				shown.Store(grid)
			}
		})
	}

	pool.Wait()

	processed := processedCount.Load()
	errs := errCount.Load()
	slog.Info("stats", "processed", processed, "skipped", skippedCount.Load(), "errors", errs,
		"total", processed+errs)

	if errs > 0 {
		return fmt.Errorf("error processing %d files", errs)
	}

	if grid := shown.Load(); c.Show && grid != nil {
		return render.ShowTerminal(grid)
	}
	return nil
}

func (c *CLICmd) convert(logger *slog.Logger, j job) (*pattern.Grid, error) {
	imgFile, err := os.Open(j.src)
	if err != nil {
		return nil, fmt.Errorf("could not open picture: %w", err)
	}
	img, imgType, err := image.Decode(imgFile)
	if closeErr := imgFile.Close(); closeErr != nil {
		logger.Warn("could not close picture", "error", closeErr)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode picture: %w", err)
	}
	logger.Debug("decoded", "type", imgType, "size", img.Bounds().Size())

	grid, err := pattern.Sample(img, c.spec())
	if err != nil {
		return nil, err
	}
	if c.Pal != nil {
		grid = grid.Snap(c.Pal)
	}

	out, err := render.Pattern(grid, c.style())
	if err != nil {
		return nil, fmt.Errorf("could not render pattern: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(j.src), filepath.Ext(j.src))
	if err := render.Save(out, c.Format, j.dest, name+".bead."+c.Format, c.Overwrite); err != nil {
		return nil, err
	}

	if c.Preview {
		preview, err := render.Preview(img, c.Columns, c.Rows, render.DefaultPreviewSize)
		if err != nil {
			return nil, fmt.Errorf("could not render preview: %w", err)
		}
		if err := render.Save(preview, "png", j.dest, name+".grid.png", c.Overwrite); err != nil {
			return nil, err
		}
	}

	if c.Counts {
		logCounts(logger, grid)
	}
	logger.Info("pattern written", "dest", j.dest, "beads", grid.Filled())

	return grid, nil
}

func logCounts(logger *slog.Logger, grid *pattern.Grid) {
	counts := grid.Counts()
	logger.Info("bill of materials", "colours", len(counts), "beads", grid.Filled())
	for _, cnt := range counts {
		col, _ := colorful.MakeColor(cnt.Color)
		logger.Info("beads", "colour", col.Hex(), "count", cnt.Beads)
	}
}
