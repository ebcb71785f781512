// Package calendar turns sparse per-day activity counts into a week-aligned
// heatmap grid. Everything here is pure: the same input always yields the
// same grid.
package calendar

import "time"

const (
	DefaultWindowDays = 365

	// DateLayout is the key format of DailyCounts.
	DateLayout = "2006-01-02"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DailyCounts maps a DateLayout day to its activity count.
type DailyCounts map[string]int

func (d DailyCounts) Add(day time.Time, n int) {
	d[Day(day).Format(DateLayout)] += n
}

// Cell is one day of the grid. Cells outside the window are padding and
// always carry a zero count.
type Cell struct {
	Date     time.Time
	Count    int
	Level    int
	InWindow bool
}

func (c Cell) Key() string {
	return c.Date.Format(DateLayout)
}

// Week is one grid column, Sunday first.
type Week struct {
	Days       [7]Cell
	MonthLabel string
}

type Grid struct {
	Start       time.Time
	End         time.Time
	WindowStart time.Time
	WindowEnd   time.Time
	Weeks       []Week
	Total       int
	MaxLevel    int
}

func (g Grid) DayCount() int {
	return len(g.Weeks) * 7
}

// Level buckets a count into one of five fixed tiers.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 7:
		return 3
	default:
		return 4
	}
}

// Day returns midnight UTC of t's calendar date as seen in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Build lays out the windowDays days ending at today into whole weeks.
// A non-positive windowDays falls back to DefaultWindowDays.
func Build(counts DailyCounts, today time.Time, windowDays int) Grid {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	windowEnd := Day(today)
	windowStart := windowEnd.AddDate(0, 0, -(windowDays - 1))

	gridStart := windowStart.AddDate(0, 0, -int(windowStart.Weekday()))
	gridEnd := windowEnd.AddDate(0, 0, int(time.Saturday-windowEnd.Weekday()))

	g := Grid{
		Start:       gridStart,
		End:         gridEnd,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Weeks:       make([]Week, 0, int(gridEnd.Sub(gridStart).Hours()/24)/7+1),
	}

	var prevMonth time.Month
	for weekStart := gridStart; !weekStart.After(gridEnd); weekStart = weekStart.AddDate(0, 0, 7) {
		var w Week
		for i := range w.Days {
			date := weekStart.AddDate(0, 0, i)
			cell := Cell{Date: date}

			if !date.Before(windowStart) && !date.After(windowEnd) {
				cell.InWindow = true
				cell.Count = counts[date.Format(DateLayout)]
				cell.Level = Level(cell.Count)
				if cell.Count > 0 {
					g.Total += cell.Count
				}
				g.MaxLevel = max(g.MaxLevel, cell.Level)
			}
			w.Days[i] = cell
		}

		if m := weekStart.Month(); m != prevMonth {
			w.MonthLabel = monthNames[m-1]
			prevMonth = m
		}
		g.Weeks = append(g.Weeks, w)
	}

	return g
}
