package weight

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"beadkit/render"
	"beadkit/store"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
)

const dataFile = "weight.json"

type CLICmd struct {
	Set    SetCmd    `cmd:"" help:"Record the weight of a day"`
	Delete DeleteCmd `cmd:"" help:"Remove the record of a day"`
	Show   ShowCmd   `cmd:"" help:"Print a month calendar with statistics"`
	Chart  ChartCmd  `cmd:"" help:"Draw the weight trend of a month"`
}

type SetCmd struct {
	Weight string `arg:"" help:"Weight in kg, above 0 and at most 300"`
	Date   string `help:"Day to record (YYYY-MM-DD), today if empty"`

	kg decimal.Decimal
}

func (c *SetCmd) Validate() error {
	kg, err := ParseWeight(c.Weight)
	if err != nil {
		return err
	}
	c.kg = kg

	if c.Date == "" {
		c.Date = time.Now().Format(DateLayout)
	}
	return checkDate(c.Date)
}

func (c *SetCmd) Run(dir store.Dir) error {
	log, err := load(dir)
	if err != nil {
		return err
	}

	_, replaced := log.Get(c.Date)
	if err := log.Set(c.Date, c.kg); err != nil {
		return err
	}
	if err := store.Save(dir.Path(dataFile), log); err != nil {
		return err
	}

	slog.Info("weight recorded", "date", c.Date, "kg", c.kg.String(), "replaced", replaced)
	return nil
}

type DeleteCmd struct {
	Date string `arg:"" help:"Day to remove (YYYY-MM-DD)"`
}

func (c *DeleteCmd) Run(dir store.Dir) error {
	log, err := load(dir)
	if err != nil {
		return err
	}

	if !log.Delete(c.Date) {
		return fmt.Errorf("no weight recorded on %s", c.Date)
	}
	if err := store.Save(dir.Path(dataFile), log); err != nil {
		return err
	}

	slog.Info("weight removed", "date", c.Date)
	return nil
}

type ShowCmd struct {
	Month string `help:"Month to show (YYYY-MM), current month if empty"`
	Shift int    `help:"Months to move from --month, negative for earlier ones" default:"0"`
}

func (c *ShowCmd) Run(dir store.Dir, kctx *kong.Context) error {
	log, err := load(dir)
	if err != nil {
		return err
	}

	now := time.Now()
	month, err := pickMonth(c.Month, c.Shift, now)
	if err != nil {
		return err
	}
	return WriteMonth(kctx.Stdout, log, month, now)
}

type ChartCmd struct {
	Month  string `help:"Month to chart (YYYY-MM), current month if empty"`
	Shift  int    `help:"Months to move from --month, negative for earlier ones" default:"0"`
	Out    string `help:"Output PNG file" type:"path" default:"weight.png"`
	Width  int    `help:"Chart width in pixels" default:"600"`
	Height int    `help:"Chart height in pixels" default:"300"`
}

func (c *ChartCmd) Run(dir store.Dir) error {
	log, err := load(dir)
	if err != nil {
		return err
	}

	month, err := pickMonth(c.Month, c.Shift, time.Now())
	if err != nil {
		return err
	}
	entries, err := log.Month(month)
	if err != nil {
		return err
	}

	img, err := render.WeightChart(ChartValues(entries), c.Width, c.Height)
	if err != nil {
		return fmt.Errorf("could not chart %s: %w", month, err)
	}

	if err := render.Save(img, "png", filepath.Dir(c.Out), filepath.Base(c.Out), true); err != nil {
		return err
	}

	slog.Info("chart written", "month", month, "points", len(entries), "file", c.Out)
	return nil
}

// ChartValues returns the weights of entries in kilograms, in order.
func ChartValues(entries []Entry) []float64 {
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i], _ = e.Weight.Float64()
	}
	return values
}

// WriteMonth prints the calendar and statistics of month.
func WriteMonth(w io.Writer, log *Log, month string, today time.Time) error {
	days, err := log.Calendar(month, today)
	if err != nil {
		return err
	}
	stats, err := log.Stats(month)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", month)
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		fmt.Fprintf(&b, "%9s", name)
	}
	b.WriteByte('\n')

	for i, d := range days {
		var cell string
		switch {
		case d.OtherMonth:
			cell = "."
		case d.HasWeight:
			cell = fmt.Sprintf("%d:%s", d.Day, d.Weight.StringFixed(1))
		default:
			cell = fmt.Sprintf("%d", d.Day)
		}
		if d.Today {
			cell = "*" + cell
		}
		fmt.Fprintf(&b, "%9s", cell)
		if i%7 == 6 {
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "\nrecorded days: %d\n", stats.RecordedDays)
	if stats.RecordedDays == 0 {
		b.WriteString("initial: --\ncurrent: --\nchange: --\n")
	} else {
		change := stats.Change.StringFixed(1)
		if stats.Change.Sign() > 0 {
			change = "+" + change
		}
		fmt.Fprintf(&b, "initial: %skg\ncurrent: %skg\nchange: %skg\n",
			stats.Initial.String(), stats.Current.String(), change)
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func load(dir store.Dir) (*Log, error) {
	log := NewLog()
	if _, err := store.Load(dir.Path(dataFile), log); err != nil {
		return nil, err
	}
	return log, nil
}

// pickMonth resolves an optional YYYY-MM month, defaulting to the month of
// now, and moves it by shift months.
func pickMonth(month string, shift int, now time.Time) (string, error) {
	if month == "" {
		month = now.Format(MonthLayout)
	}
	return ShiftMonth(month, shift)
}
