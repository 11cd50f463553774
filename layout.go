package main

import (
	"time"
)

// Axes placement inside the figure, as fractions of the figure size
const (
	AxesLeft   = 0.125
	AxesRight  = 0.9
	AxesBottom = 0.11
	AxesTop    = 0.88

	// AxesMargin is the fraction of the data range added on each side of the vertical axis.
	AxesMargin = 0.05

	// PointsPerInch converts point sizes (fonts, line widths) to inches.
	PointsPerInch = 72
)

// rowPositions returns the vertical position of each activity: i * spacing
func rowPositions(n int, spacing float64) []float64 {
	positions := make([]float64, n)
	for i := range positions {
		positions[i] = float64(i) * spacing
	}
	return positions
}

// figureHeight returns the figure height in inches for n activities,
// never less than minHeight so short tables still get a usable chart.
func figureHeight(n int, spacing, minHeight float64) float64 {
	return max(minHeight, spacing*float64(n))
}

// Axes maps data coordinates (dates horizontally, row units vertically) to
// pixel coordinates in figure space. The vertical axis is inverted: low row
// values are drawn at the top.
type Axes struct {
	X0, X1 float64 // Left and right pixel edges
	Y0, Y1 float64 // Top and bottom pixel edges

	Window Window
	YMin   float64 // Row value drawn at Y0
	YMax   float64 // Row value drawn at Y1
}

// newAxes places the axes inside a figure of the given size in pixels and
// fits the vertical range to the bars with a small margin.
func newAxes(figWidth, figHeight float64, window Window, positions []float64, barHeight float64) Axes {
	lo, hi := 0.0, 0.0
	if len(positions) > 0 {
		lo, hi = positions[0], positions[0]
		for _, p := range positions {
			lo = min(lo, p)
			hi = max(hi, p)
		}
	}
	lo -= barHeight / 2
	hi += barHeight / 2
	margin := (hi - lo) * AxesMargin
	if margin == 0 {
		margin = AxesMargin
	}

	return Axes{
		X0:     AxesLeft * figWidth,
		X1:     AxesRight * figWidth,
		Y0:     (1 - AxesTop) * figHeight,
		Y1:     (1 - AxesBottom) * figHeight,
		Window: window,
		YMin:   lo - margin,
		YMax:   hi + margin,
	}
}

// Width returns the pixel width of the axes
func (a Axes) Width() float64 { return a.X1 - a.X0 }

// Height returns the pixel height of the axes
func (a Axes) Height() float64 { return a.Y1 - a.Y0 }

// XDays maps a day offset from the window start to a pixel column
func (a Axes) XDays(days float64) float64 {
	return a.X0 + days/a.Window.Days()*a.Width()
}

// X maps a date to a pixel column
func (a Axes) X(t time.Time) float64 {
	return a.XDays(t.Sub(a.Window.Start).Hours() / hoursPerDay)
}

// Y maps a row value to a pixel row
func (a Axes) Y(v float64) float64 {
	return a.Y0 + (v-a.YMin)/(a.YMax-a.YMin)*a.Height()
}

// RowScale is the number of pixels per row unit
func (a Axes) RowScale() float64 {
	return a.Height() / (a.YMax - a.YMin)
}
