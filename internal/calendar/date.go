// Package calendar provides a civil date value type. The streak logic works
// on calendar-day differences, never on 24h elapsed-time differences, so
// dates are year/month/day triples without time-of-day or timezone.
package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}

func FromTime(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: t.Month(),
		Day:   t.Day(),
	}
}

// Parse parses a date in YYYY-MM-DD form, the format of all
// date values persisted in the store.
func Parse(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date [%s]: %w", s, err)
	}
	return FromTime(t), nil
}

func (d Date) String() string {
	return d.time().Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

func (d Date) AddDays(days int) Date {
	return FromTime(d.time().AddDate(0, 0, days))
}

// DaysBetween returns the number of calendar days from d to other,
// positive when other is after d.
func (d Date) DaysBetween(other Date) int {
	return int(other.time().Sub(d.time()).Hours() / 24)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// time pins the date to midnight UTC, which makes day arithmetic exact.
func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
