// Package trip keeps an ordered list of stops and measures the route between them.
package trip

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"beadkit/geo"
)

const (
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04"
	DefaultTime = "12:00"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrNotFound     = errors.New("stop not found")
	ErrTooFewStops  = errors.New("at least two stops are needed")
)

// Stop is a place to visit. Coordinates stay nil until the caller locates it.
type Stop struct {
	ID          int64      `json:"id"`
	Location    string     `json:"location"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Notes       string     `json:"notes,omitempty"`
	Coordinates *geo.Point `json:"coordinates"`
}

func (s Stop) arrival() time.Time {
	t, err := time.Parse(DateLayout+" "+TimeLayout, s.Date+" "+s.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Plan is the ordered list of stops of one trip. LastID is the highest ID
// ever handed out, so removed IDs are never reused.
type Plan struct {
	Stops  []Stop `json:"stops"`
	LastID int64  `json:"lastId"`
}

// Add appends a stop, assigning it an ID and defaulting its time to noon.
func (p *Plan) Add(s Stop) (Stop, error) {
	s.Location = strings.TrimSpace(s.Location)
	s.Notes = strings.TrimSpace(s.Notes)
	if s.Location == "" {
		return Stop{}, fmt.Errorf("%w: location", ErrMissingField)
	}
	if s.Date == "" {
		return Stop{}, fmt.Errorf("%w: date", ErrMissingField)
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return Stop{}, fmt.Errorf("invalid date %q: %w", s.Date, err)
	}
	if s.Time == "" {
		s.Time = DefaultTime
	}
	if _, err := time.Parse(TimeLayout, s.Time); err != nil {
		return Stop{}, fmt.Errorf("invalid time %q: %w", s.Time, err)
	}

	s.ID = p.newID()
	p.Stops = append(p.Stops, s)
	return s, nil
}

func (p *Plan) newID() int64 {
	for _, s := range p.Stops {
		p.LastID = max(p.LastID, s.ID)
	}
	p.LastID++
	return p.LastID
}

func (p *Plan) index(id int64) (int, error) {
	i := slices.IndexFunc(p.Stops, func(s Stop) bool { return s.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return i, nil
}

// Locate attaches coordinates to the stop with the given ID.
func (p *Plan) Locate(id int64, at geo.Point) error {
	i, err := p.index(id)
	if err != nil {
		return err
	}
	if at.Lat < -90 || at.Lat > 90 || at.Lon < -180 || at.Lon > 180 {
		return fmt.Errorf("coordinates out of range: %v, %v", at.Lat, at.Lon)
	}
	p.Stops[i].Coordinates = &at
	return nil
}

func (p *Plan) Remove(id int64) error {
	i, err := p.index(id)
	if err != nil {
		return err
	}
	p.Stops = slices.Delete(p.Stops, i, i+1)
	return nil
}

func (p *Plan) Clear() {
	p.Stops = nil
}

// Optimize orders the stops by arrival date and time, keeping the current
// order for equal arrivals.
func (p *Plan) Optimize() error {
	if len(p.Stops) < 2 {
		return ErrTooFewStops
	}
	slices.SortStableFunc(p.Stops, func(a, b Stop) int {
		return a.arrival().Compare(b.arrival())
	})
	return nil
}

// Located returns the coordinates of the stops that have them, in plan order.
func (p *Plan) Located() []geo.Point {
	var res []geo.Point
	for _, s := range p.Stops {
		if s.Coordinates != nil {
			res = append(res, *s.Coordinates)
		}
	}
	return res
}

// Summary is the straight-line route through the located stops.
type Summary struct {
	Stops      int
	Located    int
	DistanceKm float64
	Duration   time.Duration
}

// Summary measures the route at speedKmh; non-positive speeds use geo.DefaultSpeedKmh.
func (p *Plan) Summary(speedKmh float64) Summary {
	if speedKmh <= 0 {
		speedKmh = geo.DefaultSpeedKmh
	}

	points := p.Located()
	km := geo.PathLength(points)
	return Summary{
		Stops:      len(p.Stops),
		Located:    len(points),
		DistanceKm: km,
		Duration:   geo.TravelTime(km, speedKmh),
	}
}
