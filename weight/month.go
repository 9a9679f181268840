package weight

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalendarCells is the size of a month view: six Sunday-first weeks.
const CalendarCells = 42

// Stats summarises one month of records.
type Stats struct {
	RecordedDays int
	Initial      decimal.Decimal // first record of the month
	Current      decimal.Decimal // last record of the month
	Change       decimal.Decimal // Current - Initial
}

// Stats returns the month summary. With no records every value is zero.
func (l *Log) Stats(month string) (Stats, error) {
	entries, err := l.Month(month)
	if err != nil {
		return Stats{}, err
	}
	if len(entries) == 0 {
		return Stats{}, nil
	}

	first, last := entries[0].Weight, entries[len(entries)-1].Weight
	return Stats{
		RecordedDays: len(entries),
		Initial:      first,
		Current:      last,
		Change:       last.Sub(first),
	}, nil
}

// Day is one cell of a month calendar.
type Day struct {
	Date       string
	Day        int
	OtherMonth bool // leading or trailing day of a neighbouring month
	Today      bool
	Weight     decimal.Decimal
	HasWeight  bool
}

// Calendar lays out month as 42 Sunday-first cells. Days of neighbouring
// months fill the first and last weeks and never carry weights.
func (l *Log) Calendar(month string, today time.Time) ([]Day, error) {
	first, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	start := first.AddDate(0, 0, -int(first.Weekday()))
	todayStr := today.Format(DateLayout)

	days := make([]Day, CalendarCells)
	for i := range days {
		t := start.AddDate(0, 0, i)
		d := Day{
			Date:       t.Format(DateLayout),
			Day:        t.Day(),
			OtherMonth: t.Month() != first.Month() || t.Year() != first.Year(),
		}
		if !d.OtherMonth {
			d.Today = d.Date == todayStr
			d.Weight, d.HasWeight = l.Get(d.Date)
		}
		days[i] = d
	}
	return days, nil
}

// ShiftMonth returns the month n months after month (before for negative n).
func ShiftMonth(month string, n int) (string, error) {
	t, err := parseMonth(month)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, n, 0).Format(MonthLayout), nil
}
