package models

import (
	"fmt"
	"time"
)

// DateLayout is the textual form of a Date
const DateLayout = "2006-01-02"

// TimestampLayout is the textual form of wall-clock fields such as
// data_atualizacao
const TimestampLayout = "2006-01-02 15:04:05"

var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// Date is a calendar date without time of day. Text formats render it as
// YYYY-MM-DD, columnar formats store it as days since the Unix epoch.
type Date struct {
	t time.Time
}

// NewDate truncates t to its calendar date
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// DateFromDays builds a Date from days since the Unix epoch
func DateFromDays(days int32) Date {
	return Date{t: epoch.AddDate(0, 0, int(days))}
}

// Time returns the date at midnight UTC
func (d Date) Time() time.Time {
	return d.t
}

// Days returns the number of days since the Unix epoch
func (d Date) Days() int32 {
	return int32(d.t.Sub(epoch).Hours() / 24)
}

// String implements fmt.Stringer
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date %s", string(b))
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
