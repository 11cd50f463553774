package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowPositions(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		spacing float64
	}{
		{name: "literal table", n: 4, spacing: 0.4},
		{name: "single row", n: 1, spacing: 0.4},
		{name: "wide spacing", n: 7, spacing: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions := rowPositions(tt.n, tt.spacing)
			require.Len(t, positions, tt.n)
			assert.Equal(t, 0.0, positions[0])
			for i := 1; i < len(positions); i++ {
				assert.Greater(t, positions[i], positions[i-1])
				assert.InDelta(t, tt.spacing, positions[i]-positions[i-1], 1e-9)
			}
		})
	}

	assert.Empty(t, rowPositions(0, 0.4))
}

func TestFigureHeight(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{name: "single activity uses the floor", n: 1, want: 2},
		{name: "literal table sits on the floor", n: 4, want: 2},
		{name: "above the floor", n: 6, want: 2.4},
		{name: "large table", n: 10, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, figureHeight(tt.n, 0.4, 2), 1e-9)
		})
	}
}

func TestAxesMapping(t *testing.T) {
	window := Window{Start: date(2026, time.January, 1), End: date(2029, time.December, 31)}
	positions := rowPositions(4, 0.4)
	axes := newAxes(1200, 200, window, positions, 0.2)

	assert.InDelta(t, 150, axes.X0, 1e-9)
	assert.InDelta(t, 1080, axes.X1, 1e-9)
	assert.InDelta(t, axes.X0, axes.X(window.Start), 1e-9)
	assert.InDelta(t, axes.X1, axes.X(window.End), 1e-9)
	assert.InDelta(t, (axes.X0+axes.X1)/2, axes.XDays(window.Days()/2), 1e-9)

	// Bars plus a 5% margin: [-0.1, 1.3] widened by 0.07 on each side
	assert.InDelta(t, -0.17, axes.YMin, 1e-9)
	assert.InDelta(t, 1.37, axes.YMax, 1e-9)
	assert.InDelta(t, axes.Y0, axes.Y(axes.YMin), 1e-9)
	assert.InDelta(t, axes.Y1, axes.Y(axes.YMax), 1e-9)

	// First activity is drawn at the top
	for i := 1; i < len(positions); i++ {
		assert.Less(t, axes.Y(positions[i-1]), axes.Y(positions[i]))
	}
	assert.InDelta(t, axes.Height()/(axes.YMax-axes.YMin), axes.RowScale(), 1e-9)
}
