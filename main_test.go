package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesChart(t *testing.T) {
	config, err := loadConfig(chartYAML)
	require.NoError(t, err)
	config.Output.Path = filepath.Join(t.TempDir(), "gantt.png")

	var out bytes.Buffer
	require.NoError(t, run(config, &out))
	assert.Equal(t, "Grafico salvato in gantt.png\n", out.String())

	info, err := os.Stat(config.Output.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(config.Output.Path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.DecodeConfig(file)
	require.NoError(t, err)
	// 12in at 300 DPI with the vertical labels pushed outside the axes
	assert.Greater(t, img.Width, 3000)
	assert.Greater(t, img.Height, 600)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config, string)
		wantErr string
	}{
		{
			name: "malformed activity date",
			modify: func(c *Config, dir string) {
				c.Activities[1].End = "2027-02-30"
			},
			wantErr: "error building activity table",
		},
		{
			name: "malformed window",
			modify: func(c *Config, dir string) {
				c.Window.Start = "2026/01/01"
			},
			wantErr: "error parsing timeline window",
		},
		{
			name: "unwritable output path",
			modify: func(c *Config, dir string) {
				c.Output.Path = filepath.Join(dir, "no-such-dir", "gantt.png")
			},
			wantErr: "error writing PNG file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			config, err := loadConfig(chartYAML)
			require.NoError(t, err)
			config.Output.DPI = testDPI
			config.Output.Path = filepath.Join(dir, "gantt.png")
			tt.modify(&config, dir)

			var out bytes.Buffer
			err = run(config, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, out.String(), "no confirmation on failure")
		})
	}
}

func TestBuildChart(t *testing.T) {
	config, err := loadConfig(chartYAML)
	require.NoError(t, err)

	chart, err := buildChart(config)
	require.NoError(t, err)

	assert.Equal(t, config.Title, chart.Title)
	assert.Len(t, chart.Rows, 4)
	assert.Equal(t, []float64{0, 0.4, 0.8, 1.2}, roundAll(chart.Positions))
	assert.Len(t, chart.Quarters, 16)
	assert.Len(t, chart.Years, 4)
}

func roundAll(values []float64) []float64 {
	rounded := make([]float64, len(values))
	for i, v := range values {
		rounded[i] = float64(int(v*1000+0.5)) / 1000
	}
	return rounded
}
