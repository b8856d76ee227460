package timeslot

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidClockTime = errors.New("time must be in HH:MM format")

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
}

func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return ClockTime{}, ErrInvalidClockTime
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (c ClockTime) Minutes() int { return c.minutes }

func (c ClockTime) Before(other ClockTime) bool {
	return c.minutes < other.minutes
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// On returns the instant this time of day falls on for the given calendar day.
func (c ClockTime) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.minutes/60, c.minutes%60, 0, 0, loc)
}
