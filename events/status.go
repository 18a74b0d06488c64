package events

import (
	"fmt"
	"time"
)

// Status is the time-derived state of an event relative to a given instant.
// The three real statuses are mutually exclusive; StatusUnknown is the
// degraded result for events whose timestamps don't parse.
type Status string

const (
	StatusLive     Status = "LIVE"
	StatusUpcoming Status = "UPCOMING"
	StatusRecent   Status = "RECENT"
	StatusUnknown  Status = "UNKNOWN"
)

// Classify decides the status of an event from its timing and the external
// live flag. The rules are evaluated in order; the order matters at the
// boundaries (start and end are inclusive for LIVE).
func Classify(start time.Time, end *time.Time, live bool, now time.Time) Status {
	switch {
	case end != nil && !now.Before(start) && !now.After(*end):
		return StatusLive
	case live && !now.Before(start):
		return StatusLive
	case now.Before(start):
		return StatusUpcoming
	case end != nil && now.After(*end):
		return StatusRecent
	case now.After(start):
		return StatusRecent
	default:
		return StatusUpcoming
	}
}

// StatusAt classifies the event at the given instant. An unparseable start
// time, or a non-empty end time that doesn't parse, degrades to
// StatusUnknown rather than failing.
func (e Event) StatusAt(now time.Time) Status {
	start, ok := ParseTimestamp(e.StartTime)
	if !ok {
		return StatusUnknown
	}

	var end *time.Time
	if e.EndTime != "" {
		t, ok := ParseTimestamp(e.EndTime)
		if !ok {
			return StatusUnknown
		}
		end = &t
	}

	return Classify(start, end, e.IsLive, now)
}

// Timing is the derived presentation state of an event. It is recomputed on
// every read and never persisted.
type Timing struct {
	Status  Status `json:"status"`
	Display string `json:"statusDisplay,omitempty"`
}

// TimingAt returns the status together with its display string: elapsed time
// for LIVE, a countdown for UPCOMING, "Ended" for RECENT. Unknown events get
// no display string.
func (e Event) TimingAt(now time.Time) Timing {
	status := e.StatusAt(now)

	switch status {
	case StatusLive:
		start, _ := ParseTimestamp(e.StartTime)
		return Timing{Status: status, Display: LiveElapsed(start, now)}
	case StatusUpcoming:
		start, _ := ParseTimestamp(e.StartTime)
		return Timing{Status: status, Display: UpcomingCountdown(start, now)}
	case StatusRecent:
		return Timing{Status: status, Display: "Ended"}
	default:
		return Timing{Status: status}
	}
}

// LiveElapsed formats the time since start as H:MM:SS. The hour field is
// zero-padded to two digits and widens naturally past 99 for multi-day
// events.
func LiveElapsed(start, now time.Time) string {
	d := now.Sub(start)
	if d < 0 {
		d = 0
	}

	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// UpcomingCountdown formats the time remaining until start. The first
// non-zero unit sets the granularity; every finer unit down to seconds is
// always shown ("2d 03h 15m 40s", "03h 15m 40s", "15m 40s", "40s").
func UpcomingCountdown(start, now time.Time) string {
	d := start.Sub(now)
	if d < 0 {
		d = 0
	}

	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %02dh %02dm %02ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%02dm %02ds", minutes, seconds)
	default:
		return fmt.Sprintf("%02ds", seconds)
	}
}
