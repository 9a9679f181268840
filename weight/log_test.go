package weight

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func kg(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"72.5", false},
		{"300", false},
		{"0.1", false},
		{"0", true},
		{"-3", true},
		{"300.01", true},
		{"heavy", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ParseWeight(tt.in)
		if tt.wantErr != (err != nil) {
			t.Errorf("ParseWeight(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("ParseWeight(%q) error = %v, want ErrInvalidWeight", tt.in, err)
		}
	}
}

func TestLogSetGetDelete(t *testing.T) {
	l := NewLog()

	if err := l.Set("2025-01-02", kg("72.5")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := l.Set("2025-01-02", kg("72.3")); err != nil {
		t.Fatalf("Set() replacing error = %v", err)
	}
	if got, ok := l.Get("2025-01-02"); !ok || !got.Equal(kg("72.3")) {
		t.Errorf("Get() = %v, %v", got, ok)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}

	if err := l.Set("2025-02-30", kg("70")); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Set() on an impossible date error = %v", err)
	}
	if err := l.Set("2025-01-03", kg("301")); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Set() of 301 kg error = %v", err)
	}

	if !l.Delete("2025-01-02") {
		t.Error("Delete() of a recorded day = false")
	}
	if l.Delete("2025-01-02") {
		t.Error("Delete() of a missing day = true")
	}
	if l.Len() != 0 {
		t.Errorf("Len() after delete = %d", l.Len())
	}
}

func testLog(t *testing.T) *Log {
	t.Helper()
	l := NewLog()
	for date, w := range map[string]string{
		"2024-12-31": "74.0",
		"2025-01-20": "72.1",
		"2025-01-02": "72.5",
		"2025-01-31": "71.9",
		"2025-02-01": "71.8",
	} {
		if err := l.Set(date, kg(w)); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func TestMonth(t *testing.T) {
	l := testLog(t)

	entries, err := l.Month("2025-01")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"2025-01-02", "2025-01-20", "2025-01-31"}
	if len(entries) != len(want) {
		t.Fatalf("Month() = %+v, want dates %v", entries, want)
	}
	for i, e := range entries {
		if e.Date != want[i] {
			t.Errorf("entry %d date = %s, want %s", i, e.Date, want[i])
		}
	}

	if _, err := l.Month("2025-13"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Month() with a bad month error = %v", err)
	}
}

func TestStats(t *testing.T) {
	l := testLog(t)

	s, err := l.Stats("2025-01")
	if err != nil {
		t.Fatal(err)
	}
	if s.RecordedDays != 3 {
		t.Errorf("RecordedDays = %d, want 3", s.RecordedDays)
	}
	if !s.Initial.Equal(kg("72.5")) || !s.Current.Equal(kg("71.9")) || !s.Change.Equal(kg("-0.6")) {
		t.Errorf("Stats() = %+v", s)
	}

	empty, err := l.Stats("2025-03")
	if err != nil {
		t.Fatal(err)
	}
	if empty.RecordedDays != 0 || !empty.Change.IsZero() {
		t.Errorf("Stats() of an empty month = %+v", empty)
	}
}

func TestCalendar(t *testing.T) {
	l := testLog(t)
	today := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

	days, err := l.Calendar("2025-01", today)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != CalendarCells {
		t.Fatalf("Calendar() has %d cells", len(days))
	}

	// 2025-01-01 is a Wednesday
	lead := []string{"2024-12-29", "2024-12-30", "2024-12-31"}
	for i, date := range lead {
		if days[i].Date != date || !days[i].OtherMonth || days[i].HasWeight {
			t.Errorf("leading cell %d = %+v, want other-month %s without weight", i, days[i], date)
		}
	}
	if d := days[3]; d.Date != "2025-01-01" || d.OtherMonth || d.Day != 1 {
		t.Errorf("first day cell = %+v", d)
	}
	if d := days[22]; d.Date != "2025-01-20" || !d.Today || !d.HasWeight || !d.Weight.Equal(kg("72.1")) {
		t.Errorf("today cell = %+v", d)
	}
	if d := days[34]; d.Date != "2025-02-01" || !d.OtherMonth || d.HasWeight {
		t.Errorf("first trailing cell = %+v", d)
	}
	if d := days[41]; d.Date != "2025-02-08" {
		t.Errorf("last cell = %+v", d)
	}

	flagged := 0
	for _, d := range days {
		if d.Today {
			flagged++
		}
	}
	if flagged != 1 {
		t.Errorf("%d cells flagged today", flagged)
	}
}

func TestCalendarSundayStart(t *testing.T) {
	// 2026-02-01 is a Sunday: no leading days
	days, err := NewLog().Calendar("2026-02", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if days[0].Date != "2026-02-01" || days[0].OtherMonth {
		t.Errorf("first cell = %+v", days[0])
	}
	if days[28].Date != "2026-03-01" || !days[28].OtherMonth {
		t.Errorf("cell after the month = %+v", days[28])
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		month string
		n     int
		want  string
	}{
		{"2025-01", 1, "2025-02"},
		{"2025-01", -1, "2024-12"},
		{"2025-12", 1, "2026-01"},
	}

	for _, tt := range tests {
		got, err := ShiftMonth(tt.month, tt.n)
		if err != nil || got != tt.want {
			t.Errorf("ShiftMonth(%s, %d) = %s, %v, want %s", tt.month, tt.n, got, err, tt.want)
		}
	}
}

func TestLogJSON(t *testing.T) {
	l := testLog(t)

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}

	back := NewLog()
	if err := json.Unmarshal(data, back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Len() != l.Len() {
		t.Fatalf("round trip has %d records, want %d", back.Len(), l.Len())
	}
	for _, e := range l.Entries() {
		if got, ok := back.Get(e.Date); !ok || !got.Equal(e.Weight) {
			t.Errorf("record %s = %v, want %v", e.Date, got, e.Weight)
		}
	}
}

func TestLogJSONNumbers(t *testing.T) {
	l := NewLog()
	if err := json.Unmarshal([]byte(`{"2025-01-02": 72.5, "2025-01-03": "72.4"}`), l); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got, _ := l.Get("2025-01-02"); !got.Equal(kg("72.5")) {
		t.Errorf("numeric record = %v", got)
	}

	if err := json.Unmarshal([]byte(`{"2025-01-02": 0}`), NewLog()); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Unmarshal() of a zero weight error = %v", err)
	}
}
