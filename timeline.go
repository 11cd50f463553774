package main

import (
	"fmt"
	"time"
)

// Period marker constants
const (
	// QuarterMonths is the number of calendar months in a quarter.
	QuarterMonths = 3

	// YearMonths is the number of calendar months between year markers.
	YearMonths = 12

	// QuarterLabelOffsetDays places the "Qn" text roughly in the middle of its quarter.
	QuarterLabelOffsetDays = 45

	// YearLabelOffsetMonths places the year text in the middle of its year.
	YearLabelOffsetMonths = 6
)

// Window is the date range shown on the horizontal axis. It is defined on its
// own and does not follow the activity dates.
type Window struct {
	Start time.Time
	End   time.Time
}

// newWindow parses the configured window bounds
func newWindow(config Config) (Window, error) {
	start, err := parseDate(config.Window.Start)
	if err != nil {
		return Window{}, fmt.Errorf("window start: %w", err)
	}
	end, err := parseDate(config.Window.End)
	if err != nil {
		return Window{}, fmt.Errorf("window end: %w", err)
	}
	return Window{Start: start, End: end}, nil
}

// Days returns the width of the window in days
func (w Window) Days() float64 {
	return w.End.Sub(w.Start).Hours() / hoursPerDay
}

// Contains reports whether t lies inside the window, bounds included
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// monthStarts returns the first-of-month dates inside the window, beginning
// at the first month start on or after w.Start and stepping every `step`
// months. When alignJanuary is set the sequence begins at the first January.
func monthStarts(w Window, step int, alignJanuary bool) []time.Time {
	first := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	if first.Before(w.Start) {
		first = first.AddDate(0, 1, 0)
	}
	if alignJanuary && first.Month() != time.January {
		first = time.Date(first.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	var markers []time.Time
	for k := 0; ; k++ {
		// Derive each marker from the first one so month lengths never accumulate drift
		t := time.Date(first.Year(), first.Month()+time.Month(k*step), 1, 0, 0, 0, 0, time.UTC)
		if t.After(w.End) {
			break
		}
		markers = append(markers, t)
	}
	return markers
}

// quarterStarts returns every quarter boundary (3 months apart) within the window
func quarterStarts(w Window) []time.Time {
	return monthStarts(w, QuarterMonths, false)
}

// yearStarts returns every January 1st within the window
func yearStarts(w Window) []time.Time {
	return monthStarts(w, YearMonths, true)
}

// quarterNumber returns the 1-based quarter of the year t falls in
func quarterNumber(t time.Time) int {
	return (int(t.Month())-1)/QuarterMonths + 1
}

func quarterLabel(t time.Time) string {
	return fmt.Sprintf("Q%d", quarterNumber(t))
}

func quarterLabelCenter(t time.Time) time.Time {
	return t.AddDate(0, 0, QuarterLabelOffsetDays)
}

func yearLabelCenter(t time.Time) time.Time {
	return t.AddDate(0, YearLabelOffsetMonths, 0)
}

// reportOutsideWindow logs activities the axis limits will clip. The chart is
// drawn unchanged either way.
func reportOutsideWindow(rows []ActivityRow, w Window) {
	for i, row := range rows {
		if !w.Contains(row.Start) || !w.Contains(row.End) {
			debugPrint("Activity %d (%s) extends outside %s..%s and will be clipped",
				i, row.Name, w.Start.Format(dateLayout), w.End.Format(dateLayout))
		}
	}
}
