package filter

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ClockWindow is an inclusive time-of-day range in seconds since midnight
// UTC. A window whose Start is after its Stop wraps around midnight.
type ClockWindow struct {
	Start int64
	Stop  int64
	Set   bool
}

// Contains reports whether the time of day of t (UTC) lies in the window.
// An unset window contains everything.
func (w ClockWindow) Contains(t time.Time) bool {
	if !w.Set {
		return true
	}
	t = t.UTC()
	s := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	if w.Start <= w.Stop {
		return s >= w.Start && s <= w.Stop
	}
	return s >= w.Start || s <= w.Stop
}

// DateWindow is an inclusive range of epoch seconds UTC. The stop bound
// covers the whole of its calendar day.
type DateWindow struct {
	Start int64
	Stop  int64
	Set   bool
}

// Contains reports whether t lies in the window. An unset window contains
// everything.
func (w DateWindow) Contains(t time.Time) bool {
	if !w.Set {
		return true
	}
	s := t.Unix()
	return s >= w.Start && s <= w.Stop
}

// ParseClock parses HH:MM or HH:MM:SS into seconds since midnight.
func ParseClock(s string) (int64, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return int64(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q: want HH:MM or HH:MM:SS", s)
}

// ParseDate parses YYYY-MM-DD into epoch seconds at midnight UTC.
func ParseDate(s string) (int64, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t.Unix(), nil
}

func newClockWindow(since, until string) (ClockWindow, error) {
	if since == "" && until == "" {
		return ClockWindow{}, nil
	}
	w := ClockWindow{Start: 0, Stop: secondsPerDay - 1, Set: true}
	var err error
	if since != "" {
		if w.Start, err = ParseClock(since); err != nil {
			return ClockWindow{}, fmt.Errorf("since-time: %w", err)
		}
	}
	if until != "" {
		if w.Stop, err = ParseClock(until); err != nil {
			return ClockWindow{}, fmt.Errorf("until-time: %w", err)
		}
	}
	return w, nil
}

func newDateWindow(since, until string) (DateWindow, error) {
	if since == "" && until == "" {
		return DateWindow{}, nil
	}
	w := DateWindow{Start: 0, Stop: 1<<63 - 1, Set: true}
	var err error
	if since != "" {
		if w.Start, err = ParseDate(since); err != nil {
			return DateWindow{}, fmt.Errorf("since-date: %w", err)
		}
	}
	if until != "" {
		if w.Stop, err = ParseDate(until); err != nil {
			return DateWindow{}, fmt.Errorf("until-date: %w", err)
		}
		w.Stop += secondsPerDay - 1
	}
	if w.Start > w.Stop {
		return DateWindow{}, fmt.Errorf("since-date %s is after until-date %s", since, until)
	}
	return w, nil
}
