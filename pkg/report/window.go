// Package report holds the dashboard's derived-data transforms. Every function
// takes an already-fetched snapshot and returns fresh output; nothing in here
// touches the database or mutates its inputs.
package report

import "time"

const dateLayout = "2006-01-02"

// Window is an inclusive date range anchored at a reference time.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow spans from the start of today through the end of the day N days
// out. Used with N=30 for the upcoming planting calendar.
func DayWindow(now time.Time, days int) Window {
	return Window{
		Start: startOfDay(now),
		End:   endOfDay(now.AddDate(0, 0, days)),
	}
}

// MonthWindow spans the last `months` calendar months including the current
// one, i.e. [startOfMonth(now - (months-1)), endOfMonth(now)].
func MonthWindow(now time.Time, months int) Window {
	return Window{
		Start: startOfMonth(now.AddDate(0, -(months - 1), 0)),
		End:   endOfMonth(now),
	}
}

// MonthBuckets returns one window per calendar month for the last n months,
// oldest first, ending with the current month.
func MonthBuckets(now time.Time, n int) []Window {
	out := make([]Window, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := now.AddDate(0, -i, 0)
		out = append(out, Window{Start: startOfMonth(m), End: endOfMonth(m)})
	}
	return out
}

// Contains reports whether a "2006-01-02" date string falls inside the window.
// Blank or malformed dates are outside every window.
func (w Window) Contains(date string) bool {
	d, err := time.ParseInLocation(dateLayout, date, w.Start.Location())
	if err != nil {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}

// Label is the short month name of the window start, e.g. "Jun".
func (w Window) Label() string { return w.Start.Format("Jan") }

// Filter returns the records whose date field falls inside the window,
// preserving input order. date returns "" for records without the field.
func Filter[T any](items []T, date func(T) string, w Window) []T {
	var out []T
	for _, it := range items {
		if w.Contains(date(it)) {
			out = append(out, it)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return endOfDay(startOfMonth(t).AddDate(0, 1, -1))
}
