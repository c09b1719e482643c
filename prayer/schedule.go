// Package prayer serves the static five-prayer schedule for the
// supported cities. Times do not vary by date; the optional date is
// echoed back for display only. This is a documented approximation,
// not a solar computation.
package prayer

import (
	"fmt"
	"time"

	"github.com/marhaba-travel/marhaba/core"
)

// DateLayout is the accepted format for the optional date argument.
const DateLayout = "2006-01-02"

// Entry is one named prayer with its time of day (HH:MM, 24-hour).
type Entry struct {
	Name string
	Time string
}

// Schedule is a city's five prayers for a date, in canonical order.
type Schedule struct {
	City    string
	Date    time.Time
	Entries [5]Entry
}

// prayerNames is the canonical prayer order.
var prayerNames = [5]string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

var times = map[string][5]string{
	"dubai":          {"05:30", "12:15", "15:45", "18:30", "20:00"},
	"abu dhabi":      {"05:35", "12:20", "15:50", "18:35", "20:05"},
	"sharjah":        {"05:28", "12:12", "15:42", "18:27", "19:57"},
	"ajman":          {"05:29", "12:13", "15:43", "18:28", "19:58"},
	"ras al khaimah": {"05:25", "12:10", "15:40", "18:25", "19:55"},
	"fujairah":       {"05:20", "12:05", "15:35", "18:20", "19:50"},
	"umm al quwain":  {"05:27", "12:12", "15:42", "18:27", "19:57"},
}

// Lookup returns the schedule for a city. The date is optional: empty
// means today, anything else must parse as YYYY-MM-DD. Unsupported
// cities fail with core.ErrUnknownCity, bad dates with
// core.ErrInvalidDate.
func Lookup(city, date string) (*Schedule, error) {
	key := core.NormalizeCity(city)
	dayTimes, ok := times[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownCity, city)
	}

	day := time.Now()
	if date != "" {
		parsed, err := time.Parse(DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", core.ErrInvalidDate, date)
		}
		day = parsed
	}

	sched := &Schedule{City: key, Date: day}
	for i, name := range prayerNames {
		sched.Entries[i] = Entry{Name: name, Time: dayTimes[i]}
	}
	return sched, nil
}
