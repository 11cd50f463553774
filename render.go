package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Label placement constants, in row units on the vertical axis
const (
	// QuarterLabelRow is where the "Qn" labels sit, beyond the first row.
	QuarterLabelRow = -0.4

	// YearLabelRowOffset places year labels past the last row.
	YearLabelRowOffset = 0.5
)

// Offsets in points
const (
	TickLabelPad = 3.5 // gap between a tick and its label
	TitleGap     = 6.0 // gap between the title and the rest of the figure
)

// dash pattern for quarter separators, as multiples of the line width
var quarterDash = []float64{3.7, 1.6}

// Chart is everything the renderer needs, produced by the earlier pipeline stages
type Chart struct {
	Title     string
	Rows      []ActivityRow
	Positions []float64
	Window    Window
	Quarters  []time.Time
	Years     []time.Time
}

// BoundingBox is a rectangle in figure pixel coordinates
type BoundingBox struct {
	Left, Top, Right, Bottom float64
}

// Union returns the smallest box containing both boxes
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Left:   math.Min(b.Left, o.Left),
		Top:    math.Min(b.Top, o.Top),
		Right:  math.Max(b.Right, o.Right),
		Bottom: math.Max(b.Bottom, o.Bottom),
	}
}

// Width returns the horizontal extent of the box
func (b BoundingBox) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent of the box
func (b BoundingBox) Height() float64 { return b.Bottom - b.Top }

// textItem is a label anchored at (X, Y). AX and AY select the anchor point
// inside the text: 0.5 centres it, AX=1 right-aligns, AY=0 puts the baseline on Y.
type textItem struct {
	Text   string
	Face   font.Face
	X, Y   float64
	AX, AY float64
}

// Bounds returns the pixel box the text will cover once drawn
func (t textItem) Bounds() BoundingBox {
	m := measureText(t.Face, t.Text)
	left := t.X - t.AX*m.Width
	baseline := t.Y + t.AY*m.Height
	return BoundingBox{
		Left:   left,
		Top:    baseline - m.Ascent,
		Right:  left + m.Width,
		Bottom: baseline + m.Descent,
	}
}

// chartLayout is the complete pixel geometry of a chart, computed before any
// drawing happens so the canvas can be sized to a tight bounding box.
type chartLayout struct {
	Axes     Axes
	Bounds   BoundingBox // Extent of all content in figure coordinates
	Pad      float64     // Padding around Bounds in pixels
	Width    int         // Canvas width in pixels
	Height   int         // Canvas height in pixels
	PointPx  float64     // Pixels per point
	TickLen  float64
	Names    []textItem
	Quarters []textItem
	Years    []textItem
	Title    textItem
}

// Offset returns the translation from figure coordinates to canvas pixels
func (l chartLayout) Offset() (float64, float64) {
	return l.Pad - l.Bounds.Left, l.Pad - l.Bounds.Top
}

// layoutChart computes where every element goes. Sizes in points are scaled
// by dpi/72 and figure sizes in inches by dpi.
func layoutChart(chart Chart, config Config, fonts fontSet) chartLayout {
	dpi := config.Output.DPI
	pointPx := dpi / PointsPerInch

	figWidth := config.Figure.Width * dpi
	figHeight := figureHeight(len(chart.Rows), config.Figure.Spacing, config.Figure.MinHeight) * dpi
	axes := newAxes(figWidth, figHeight, chart.Window, chart.Positions, config.Figure.BarHeight)
	debugPrint("Figure %.0fx%.0f px, axes x=[%.1f, %.1f] y=[%.1f, %.1f], rows [%.3f, %.3f]",
		figWidth, figHeight, axes.X0, axes.X1, axes.Y0, axes.Y1, axes.YMin, axes.YMax)

	layout := chartLayout{
		Axes:    axes,
		Pad:     config.Figure.PadInches * dpi,
		PointPx: pointPx,
		TickLen: config.Lines.TickSize * pointPx,
	}

	bounds := BoundingBox{Left: axes.X0 - layout.TickLen, Top: axes.Y0, Right: axes.X1, Bottom: axes.Y1}

	// Activity names right-aligned against the ticks
	nameFace := fonts.Face(config.Font.LabelSize, false)
	for i, row := range chart.Rows {
		item := textItem{
			Text: row.Name,
			Face: nameFace,
			X:    axes.X0 - layout.TickLen - TickLabelPad*pointPx,
			Y:    axes.Y(chart.Positions[i]),
			AX:   1,
			AY:   0.5,
		}
		layout.Names = append(layout.Names, item)
		bounds = bounds.Union(item.Bounds())
	}

	quarterFace := fonts.Face(config.Font.QuarterSize, false)
	for _, q := range chart.Quarters {
		item := textItem{
			Text: quarterLabel(q),
			Face: quarterFace,
			X:    axes.X(quarterLabelCenter(q)),
			Y:    axes.Y(QuarterLabelRow),
			AX:   0.5,
			AY:   0.5,
		}
		layout.Quarters = append(layout.Quarters, item)
		bounds = bounds.Union(item.Bounds())
	}

	lastRow := 0.0
	for _, p := range chart.Positions {
		lastRow = math.Max(lastRow, p)
	}
	yearFace := fonts.Face(config.Font.YearSize, true)
	for _, y := range chart.Years {
		item := textItem{
			Text: fmt.Sprintf("%d", y.Year()),
			Face: yearFace,
			X:    axes.X(yearLabelCenter(y)),
			Y:    axes.Y(lastRow + YearLabelRowOffset),
			AX:   0.5,
			AY:   0,
		}
		layout.Years = append(layout.Years, item)
		bounds = bounds.Union(item.Bounds())
	}

	// Title banner centred on the figure, above everything else
	titleFace := fonts.Face(config.Font.TitleSize, true)
	titleBounds := measureText(titleFace, chart.Title)
	layout.Title = textItem{
		Text: chart.Title,
		Face: titleFace,
		X:    figWidth / 2,
		Y:    bounds.Top - TitleGap*pointPx - titleBounds.Descent,
		AX:   0.5,
		AY:   0,
	}
	if chart.Title != "" {
		bounds = bounds.Union(layout.Title.Bounds())
	}

	layout.Bounds = bounds
	layout.Width = int(math.Ceil(bounds.Width() + 2*layout.Pad))
	layout.Height = int(math.Ceil(bounds.Height() + 2*layout.Pad))
	debugPrint("Tight bounding box [%.1f, %.1f, %.1f, %.1f] -> canvas %dx%d px",
		bounds.Left, bounds.Top, bounds.Right, bounds.Bottom, layout.Width, layout.Height)

	return layout
}

// drawText draws a laid-out label in the current color
func drawText(dc *gg.Context, t textItem) {
	dc.SetFontFace(t.Face)
	dc.DrawStringAnchored(t.Text, t.X, t.Y, t.AX, t.AY)
}

// drawChart paints the chart back to front: bars, quarter separators,
// quarter labels, year separators, year labels, then the axes frame, the
// activity names and the title.
func drawChart(chart Chart, layout chartLayout, config Config) *gg.Context {
	axes := layout.Axes
	pointPx := layout.PointPx

	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetHexColor(config.Colors.Background)
	dc.Clear()
	dc.Translate(layout.Offset())

	// Bars, clipped to the axes so the window limits hide anything outside
	dc.DrawRectangle(axes.X0, axes.Y0, axes.Width(), axes.Height())
	dc.Clip()
	barHeight := config.Figure.BarHeight * axes.RowScale()
	dc.SetLineWidth(config.Lines.BarEdge * pointPx)
	for i, row := range chart.Rows {
		x := axes.X(row.Start)
		width := axes.XDays(float64(row.Duration)) - axes.X0
		y := axes.Y(chart.Positions[i]) - barHeight/2
		dc.DrawRectangle(x, y, width, barHeight)
		dc.SetHexColor(config.Colors.Bar)
		dc.FillPreserve()
		dc.SetHexColor(config.Colors.BarEdge)
		dc.Stroke()
	}
	dc.ResetClip()

	// Quarter separators
	quarterWidth := config.Lines.Quarter * pointPx
	dc.SetHexColor(config.Colors.QuarterLine)
	dc.SetLineWidth(quarterWidth)
	dc.SetDash(quarterDash[0]*quarterWidth, quarterDash[1]*quarterWidth)
	for _, q := range chart.Quarters {
		x := axes.X(q)
		dc.DrawLine(x, axes.Y0, x, axes.Y1)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetHexColor(config.Colors.Text)
	for _, item := range layout.Quarters {
		drawText(dc, item)
	}

	// Year separators
	dc.SetHexColor(config.Colors.YearLine)
	dc.SetLineWidth(config.Lines.Year * pointPx)
	for _, y := range chart.Years {
		x := axes.X(y)
		dc.DrawLine(x, axes.Y0, x, axes.Y1)
		dc.Stroke()
	}

	dc.SetHexColor(config.Colors.Text)
	for _, item := range layout.Years {
		drawText(dc, item)
	}

	// Axes frame and row ticks; the horizontal axis has no ticks
	dc.SetHexColor(config.Colors.Text)
	dc.SetLineWidth(config.Lines.Frame * pointPx)
	dc.DrawRectangle(axes.X0, axes.Y0, axes.Width(), axes.Height())
	dc.Stroke()
	for _, p := range chart.Positions {
		y := axes.Y(p)
		dc.DrawLine(axes.X0-layout.TickLen, y, axes.X0, y)
		dc.Stroke()
	}

	for _, item := range layout.Names {
		drawText(dc, item)
	}
	if chart.Title != "" {
		drawText(dc, layout.Title)
	}

	return dc
}

// renderChart lays out and draws the chart at the configured resolution
func renderChart(chart Chart, config Config) (*gg.Context, error) {
	fonts, err := loadFonts(config.Output.DPI)
	if err != nil {
		return nil, err
	}
	layout := layoutChart(chart, config, fonts)
	return drawChart(chart, layout, config), nil
}

// savePNG encodes the canvas and writes it to path
func savePNG(dc *gg.Context, path string) error {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("error encoding PNG: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing PNG file: %w", err)
	}
	return nil
}
