// Package weight keeps a daily body-weight log and summarises it per month.
package weight

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/shopspring/decimal"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	ErrInvalidWeight = errors.New("weight must be above 0 and at most 300 kg")
	ErrInvalidDate   = errors.New("invalid date")
)

var maxWeight = decimal.New(300, 0)

// Entry is the weight recorded on one day.
type Entry struct {
	Date   string
	Weight decimal.Decimal
}

// Log maps days to weights in kilograms, iterated in date order.
type Log struct {
	days *treemap.Map
}

func NewLog() *Log {
	return &Log{days: treemap.NewWithStringComparator()}
}

// ParseWeight reads a kilogram value such as "72.5".
func ParseWeight(s string) (decimal.Decimal, error) {
	kg, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	return kg, checkWeight(kg)
}

func checkWeight(kg decimal.Decimal) error {
	if kg.Sign() <= 0 || kg.Cmp(maxWeight) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidWeight, kg)
	}
	return nil
}

func checkDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDate, date, err)
	}
	return nil
}

func parseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q: %w", ErrInvalidDate, month, err)
	}
	return t, nil
}

// Set records kg for date (YYYY-MM-DD), replacing any earlier record.
func (l *Log) Set(date string, kg decimal.Decimal) error {
	if err := checkDate(date); err != nil {
		return err
	}
	if err := checkWeight(kg); err != nil {
		return err
	}
	l.days.Put(date, kg)
	return nil
}

func (l *Log) Get(date string) (decimal.Decimal, bool) {
	v, ok := l.days.Get(date)
	if !ok {
		return decimal.Zero, false
	}
	return v.(decimal.Decimal), true
}

// Delete removes the record for date and reports whether there was one.
func (l *Log) Delete(date string) bool {
	if _, ok := l.days.Get(date); !ok {
		return false
	}
	l.days.Remove(date)
	return true
}

func (l *Log) Len() int {
	return l.days.Size()
}

// Entries returns every record in date order.
func (l *Log) Entries() []Entry {
	res := make([]Entry, 0, l.days.Size())
	it := l.days.Iterator()
	for it.Next() {
		res = append(res, Entry{Date: it.Key().(string), Weight: it.Value().(decimal.Decimal)})
	}
	return res
}

// Month returns the records of month (YYYY-MM) in date order.
func (l *Log) Month(month string) ([]Entry, error) {
	if _, err := parseMonth(month); err != nil {
		return nil, err
	}

	// keys are fixed width, so the month's days sort between these bounds
	from, to := month+"-01", month+"-31"
	var res []Entry
	it := l.days.Iterator()
	for it.Next() {
		date := it.Key().(string)
		if date < from {
			continue
		}
		if date > to {
			break
		}
		res = append(res, Entry{Date: date, Weight: it.Value().(decimal.Decimal)})
	}
	return res, nil
}

func (l *Log) MarshalJSON() ([]byte, error) {
	doc := make(map[string]decimal.Decimal, l.days.Size())
	it := l.days.Iterator()
	for it.Next() {
		doc[it.Key().(string)] = it.Value().(decimal.Decimal)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON accepts weights as JSON numbers or strings. Invalid records
// fail the whole document.
func (l *Log) UnmarshalJSON(data []byte) error {
	var doc map[string]decimal.Decimal
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	days := treemap.NewWithStringComparator()
	for date, kg := range doc {
		if err := checkDate(date); err != nil {
			return err
		}
		if err := checkWeight(kg); err != nil {
			return fmt.Errorf("record %s: %w", date, err)
		}
		days.Put(date, kg)
	}
	l.days = days
	return nil
}
