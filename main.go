/*
Package main renders a static Gantt chart of project phases to a PNG image.

The chart is defined entirely by chart.yaml, which is compiled into the binary:
a list of activities (name, start, end), a fixed timeline window, and styling.
The program runs a single pass with no flags or arguments:

 1. build the activity table with per-activity durations in days
 2. compute quarter and year markers inside the timeline window
 3. assign each activity an evenly spaced row
 4. draw bars, dashed quarter separators with "Qn" labels, solid year
    separators with bold year labels and a title banner, then save the PNG

Activities are drawn top to bottom in definition order. The window does not
follow the activity dates: anything outside it is clipped by the axis limits.
*/
package main

import (
	"fmt"
	"io"
	"os"
)

// Global debug flag, set from the chart definition
var debugMode bool

// debugPrint prints debug messages when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// buildChart runs the data, timeline and layout stages
func buildChart(config Config) (Chart, error) {
	rows, err := buildActivityTable(config.Activities)
	if err != nil {
		return Chart{}, fmt.Errorf("error building activity table: %w", err)
	}

	window, err := newWindow(config)
	if err != nil {
		return Chart{}, fmt.Errorf("error parsing timeline window: %w", err)
	}
	reportOutsideWindow(rows, window)

	chart := Chart{
		Title:     config.Title,
		Rows:      rows,
		Positions: rowPositions(len(rows), config.Figure.Spacing),
		Window:    window,
		Quarters:  quarterStarts(window),
		Years:     yearStarts(window),
	}
	debugPrint("Window %s..%s: %d quarter markers, %d year markers",
		config.Window.Start, config.Window.End, len(chart.Quarters), len(chart.Years))

	return chart, nil
}

// run renders the chart described by config, writes it to the configured
// path and prints the confirmation message to out.
func run(config Config, out io.Writer) error {
	debugMode = config.Debug

	chart, err := buildChart(config)
	if err != nil {
		return err
	}

	dc, err := renderChart(chart, config)
	if err != nil {
		return fmt.Errorf("error rendering chart: %w", err)
	}

	if err := savePNG(dc, config.Output.Path); err != nil {
		return err
	}
	debugPrint("Wrote %dx%d px to %s", dc.Width(), dc.Height(), config.Output.Path)

	fmt.Fprintln(out, config.Output.Message)
	return nil
}

func main() {
	config, err := loadConfig(chartYAML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading chart definition: %v\n", err)
		os.Exit(1)
	}

	if err := run(config, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
