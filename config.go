package main

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed chart.yaml
var chartYAML []byte

// Config is the complete literal definition of the chart. It maps directly to
// chart.yaml, which is embedded into the binary; there is no runtime input.
//
// Sizes follow the plotting conventions the chart was designed with:
//   - figure dimensions are in inches and become pixels through output.dpi
//   - font sizes and line widths are in points (1/72 inch)
//   - spacing and bar_height are in row units on the vertical axis
type Config struct {
	Title string `yaml:"title"` // Banner drawn above the whole figure
	Debug bool   `yaml:"debug"` // Enable [DEBUG] output on stderr

	Output struct {
		Path    string  `yaml:"path"`    // PNG file path, relative to the working directory
		DPI     float64 `yaml:"dpi"`     // Rasterisation resolution in dots per inch
		Message string  `yaml:"message"` // Confirmation line printed after a successful save
	} `yaml:"output"`
	Figure struct {
		Width     float64 `yaml:"width"`      // Figure width in inches
		MinHeight float64 `yaml:"min_height"` // Floor for the figure height in inches
		Spacing   float64 `yaml:"spacing"`    // Vertical distance between consecutive activities
		BarHeight float64 `yaml:"bar_height"` // Bar thickness in row units
		PadInches float64 `yaml:"pad_inches"` // Padding around the tight bounding box
	} `yaml:"figure"`
	Window struct {
		Start string `yaml:"start"` // First visible day (YYYY-MM-DD)
		End   string `yaml:"end"`   // Last visible day (YYYY-MM-DD)
	} `yaml:"window"`
	Colors struct {
		Background  string `yaml:"background"`   // Canvas fill (hex color code)
		Bar         string `yaml:"bar"`          // Activity bar fill
		BarEdge     string `yaml:"bar_edge"`     // Activity bar border
		QuarterLine string `yaml:"quarter_line"` // Dashed quarter separators
		YearLine    string `yaml:"year_line"`    // Solid year separators
		Text        string `yaml:"text"`         // All labels and the title
	} `yaml:"colors"`
	Font struct {
		TitleSize   float64 `yaml:"title_size"`   // Bold title banner
		LabelSize   float64 `yaml:"label_size"`   // Activity names on the vertical axis
		QuarterSize float64 `yaml:"quarter_size"` // "Qn" labels
		YearSize    float64 `yaml:"year_size"`    // Bold year labels
	} `yaml:"font"`
	Lines struct {
		BarEdge  float64 `yaml:"bar_edge"`  // Bar border width
		Quarter  float64 `yaml:"quarter"`   // Quarter separator width
		Year     float64 `yaml:"year"`      // Year separator width
		Frame    float64 `yaml:"frame"`     // Axes frame and tick width
		TickSize float64 `yaml:"tick_size"` // Length of the vertical axis ticks
	} `yaml:"lines"`
	Activities []Activity `yaml:"activities"`
}

// getDefaultConfig returns the settings every chart starts from before
// chart.yaml is applied: a 12in wide figure at 300 DPI, light blue bars with
// black borders, dashed light gray quarter lines and solid black year lines.
func getDefaultConfig() Config {
	var config Config

	config.Output.Path = "gantt.png"
	config.Output.DPI = 300
	config.Output.Message = "Grafico salvato in gantt.png"

	config.Figure.Width = 12
	config.Figure.MinHeight = 2
	config.Figure.Spacing = 0.4
	config.Figure.BarHeight = 0.2
	config.Figure.PadInches = 0.1

	config.Window.Start = "2026-01-01"
	config.Window.End = "2029-12-31"

	config.Colors.Background = "#ffffff"
	config.Colors.Bar = "#add8e6"
	config.Colors.BarEdge = "#000000"
	config.Colors.QuarterLine = "#d3d3d3"
	config.Colors.YearLine = "#000000"
	config.Colors.Text = "#000000"

	config.Font.TitleSize = 14
	config.Font.LabelSize = 10
	config.Font.QuarterSize = 8
	config.Font.YearSize = 10

	config.Lines.BarEdge = 1.2
	config.Lines.Quarter = 0.8
	config.Lines.Year = 1.2
	config.Lines.Frame = 0.8
	config.Lines.TickSize = 3.5

	return config
}

// loadConfig applies a YAML chart definition on top of the defaults. Keys
// missing from data keep their default values.
func loadConfig(data []byte) (Config, error) {
	config := getDefaultConfig()
	if len(data) == 0 {
		return config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing chart definition: %w", err)
	}

	return config, nil
}
