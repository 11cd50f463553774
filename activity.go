package main

import (
	"fmt"
	"time"
)

// dateLayout is the only date format accepted in the chart definition.
const dateLayout = "2006-01-02"

// hoursPerDay converts a time.Duration to whole calendar days for UTC dates.
const hoursPerDay = 24

// Activity is a project phase as written in the chart definition
type Activity struct {
	Name  string `yaml:"name"`  // Label shown on the vertical axis
	Start string `yaml:"start"` // First day (YYYY-MM-DD)
	End   string `yaml:"end"`   // Last day (YYYY-MM-DD)
}

// ActivityRow is one entry of the activity table with parsed dates and the
// derived duration in days. Rows keep the order of the definition, which is
// also the top-to-bottom order on the chart.
type ActivityRow struct {
	Name     string
	Start    time.Time
	End      time.Time
	Duration int
}

// parseDate parses a YYYY-MM-DD literal as a UTC calendar date
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date '%s': %w", value, err)
	}
	return t, nil
}

// daysBetween returns end - start in whole days
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / hoursPerDay)
}

// buildActivityTable converts the literal activities into the activity table.
// Dates are parsed, durations computed, and nothing else is checked: an
// activity ending before it starts simply gets a negative duration.
func buildActivityTable(activities []Activity) ([]ActivityRow, error) {
	rows := make([]ActivityRow, 0, len(activities))

	for i, activity := range activities {
		start, err := parseDate(activity.Start)
		if err != nil {
			return nil, fmt.Errorf("activity %d (%s): %w", i, activity.Name, err)
		}
		end, err := parseDate(activity.End)
		if err != nil {
			return nil, fmt.Errorf("activity %d (%s): %w", i, activity.Name, err)
		}

		rows = append(rows, ActivityRow{
			Name:     activity.Name,
			Start:    start,
			End:      end,
			Duration: daysBetween(start, end),
		})
		debugPrint("Activity %d: %s %s -> %s (%d days)", i, activity.Name, activity.Start, activity.End, rows[i].Duration)
	}

	return rows, nil
}
