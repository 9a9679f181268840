package trip

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"beadkit/geo"
	"beadkit/store"

	"github.com/alecthomas/kong"
)

const dataFile = "trip.json"

type CLICmd struct {
	Add      AddCmd      `cmd:"" help:"Append a stop to the trip"`
	Locate   LocateCmd   `cmd:"" help:"Set the coordinates of a stop"`
	Remove   RemoveCmd   `cmd:"" help:"Remove a stop"`
	List     ListCmd     `cmd:"" default:"withargs" help:"List the stops and route summary"`
	Optimize OptimizeCmd `cmd:"" help:"Order the stops by arrival date and time"`
	Clear    ClearCmd    `cmd:"" help:"Remove every stop"`
}

type AddCmd struct {
	Location string   `arg:"" help:"Place name"`
	Date     string   `help:"Arrival date (YYYY-MM-DD), today if empty"`
	Time     string   `help:"Arrival time (HH:MM)" default:"12:00"`
	Notes    string   `help:"Free text notes"`
	Lat      *float64 `help:"Latitude in degrees"`
	Lon      *float64 `help:"Longitude in degrees"`
}

func (c *AddCmd) Validate() error {
	if (c.Lat == nil) != (c.Lon == nil) {
		return fmt.Errorf("--lat and --lon must be given together")
	}
	return nil
}

func (c *AddCmd) Run(dir store.Dir) error {
	plan, err := load(dir)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format(DateLayout)
	}

	stop, err := plan.Add(Stop{Location: c.Location, Date: date, Time: c.Time, Notes: c.Notes})
	if err != nil {
		return err
	}
	if c.Lat != nil {
		if err := plan.Locate(stop.ID, geo.Point{Lat: *c.Lat, Lon: *c.Lon}); err != nil {
			return err
		}
	}

	if err := store.Save(dir.Path(dataFile), plan); err != nil {
		return err
	}
	slog.Info("stop added", "id", stop.ID, "location", stop.Location, "date", stop.Date, "time", stop.Time)
	return nil
}

type LocateCmd struct {
	ID  int64   `arg:"" help:"Stop ID"`
	Lat float64 `arg:"" help:"Latitude in degrees"`
	Lon float64 `arg:"" help:"Longitude in degrees"`
}

func (c *LocateCmd) Run(dir store.Dir) error {
	return update(dir, func(p *Plan) error {
		return p.Locate(c.ID, geo.Point{Lat: c.Lat, Lon: c.Lon})
	})
}

type RemoveCmd struct {
	ID int64 `arg:"" help:"Stop ID"`
}

func (c *RemoveCmd) Run(dir store.Dir) error {
	return update(dir, func(p *Plan) error {
		return p.Remove(c.ID)
	})
}

type OptimizeCmd struct{}

func (c *OptimizeCmd) Run(dir store.Dir) error {
	return update(dir, (*Plan).Optimize)
}

type ClearCmd struct{}

func (c *ClearCmd) Run(dir store.Dir) error {
	return update(dir, func(p *Plan) error {
		if len(p.Stops) == 0 {
			return fmt.Errorf("trip is already empty")
		}
		p.Clear()
		return nil
	})
}

type ListCmd struct {
	Speed float64 `help:"Average speed in km/h for the time estimate" default:"50"`
}

func (c *ListCmd) Run(dir store.Dir, kctx *kong.Context) error {
	plan, err := load(dir)
	if err != nil {
		return err
	}
	return WritePlan(kctx.Stdout, plan, c.Speed)
}

// WritePlan prints the stops in order followed by the route summary.
func WritePlan(w io.Writer, plan *Plan, speedKmh float64) error {
	var b strings.Builder
	if len(plan.Stops) == 0 {
		b.WriteString("no stops yet\n")
	}
	for i, s := range plan.Stops {
		fmt.Fprintf(&b, "%d. [%d] %s (%s %s)", i+1, s.ID, s.Location, s.Date, s.Time)
		if s.Coordinates != nil {
			fmt.Fprintf(&b, " @ %.4f, %.4f", s.Coordinates.Lat, s.Coordinates.Lon)
		}
		if s.Notes != "" {
			fmt.Fprintf(&b, " - %s", s.Notes)
		}
		b.WriteByte('\n')
	}

	sum := plan.Summary(speedKmh)
	fmt.Fprintf(&b, "stops: %d, located: %d\n", sum.Stops, sum.Located)
	if sum.Located < 2 {
		b.WriteString("distance: --\ntime: --\n")
	} else {
		fmt.Fprintf(&b, "distance: %.1f km\ntime: %d min\n", sum.DistanceKm, int(sum.Duration.Minutes()))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func load(dir store.Dir) (*Plan, error) {
	plan := &Plan{}
	if _, err := store.Load(dir.Path(dataFile), plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func update(dir store.Dir, f func(*Plan) error) error {
	plan, err := load(dir)
	if err != nil {
		return err
	}
	if err := f(plan); err != nil {
		return err
	}
	if err := store.Save(dir.Path(dataFile), plan); err != nil {
		return err
	}
	slog.Info("trip updated", "stops", len(plan.Stops))
	return nil
}
