package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day without a date, stored as seconds since midnight.
type Clock int

const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
)

// NewClock builds a Clock from hour, minute and optional second.
func NewClock(hour, minute int, second ...int) Clock {
	s := 0
	if len(second) > 0 {
		s = second[0]
	}
	return Clock(hour*minutesPerHour*secondsPerMinute + minute*secondsPerMinute + s)
}

// ClockOf extracts the time of day of t in t's own location.
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute(), t.Second())
}

// ParseClock accepts "HH:MM" or "HH:MM:SS".
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}

	vals := make([]int, 3)
	limits := []int{hoursPerDay, minutesPerHour, secondsPerMinute}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n >= limits[i] {
			return 0, fmt.Errorf("invalid time format: %q", s)
		}
		vals[i] = n
	}

	return NewClock(vals[0], vals[1], vals[2]), nil
}

// MustClock is ParseClock for literals; it panics on bad input.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int   { return int(c) / (minutesPerHour * secondsPerMinute) }
func (c Clock) Minute() int { return int(c) / secondsPerMinute % minutesPerHour }
func (c Clock) Second() int { return int(c) % secondsPerMinute }

// String renders "HH:MM", or "HH:MM:SS" when seconds are present.
func (c Clock) String() string {
	if c.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On places the clock time on the calendar day of date.
func (c Clock) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), c.Second(), 0, date.Location())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value stores the clock as "HH:MM:SS" text so the column is portable across drivers.
func (c Clock) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second()), nil
}

func (c *Clock) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return c.scanString(v)
	case []byte:
		return c.scanString(string(v))
	case time.Time:
		*c = ClockOf(v)
		return nil
	case nil:
		*c = 0
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Clock", src)
	}
}

func (c *Clock) scanString(s string) error {
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ClockPtr is a helper for optional clock fields.
func ClockPtr(s string) *Clock {
	c := MustClock(s)
	return &c
}
