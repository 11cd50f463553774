package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEmptyUsesDefaults(t *testing.T) {
	config, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)
}

func TestLoadConfigEmbeddedChart(t *testing.T) {
	config, err := loadConfig(chartYAML)
	require.NoError(t, err)

	assert.Equal(t, "Diagramma di Gantt con anni e trimestri (2026–2029)", config.Title)
	assert.False(t, config.Debug)
	assert.Equal(t, "gantt.png", config.Output.Path)
	assert.Equal(t, 300.0, config.Output.DPI)
	assert.Equal(t, "Grafico salvato in gantt.png", config.Output.Message)
	assert.Equal(t, "2026-01-01", config.Window.Start)
	assert.Equal(t, "2029-12-31", config.Window.End)
	assert.Equal(t, 0.4, config.Figure.Spacing)
	assert.Equal(t, 2.0, config.Figure.MinHeight)

	require.Len(t, config.Activities, 4)
	assert.Equal(t, Activity{Name: "Analisi iniziale", Start: "2026-01-10", End: "2026-05-15"}, config.Activities[0])
	assert.Equal(t, Activity{Name: "Rilascio finale", Start: "2028-07-01", End: "2029-03-30"}, config.Activities[3])

	// Sections absent from chart.yaml keep their defaults
	assert.Equal(t, 14.0, config.Font.TitleSize)
	assert.Equal(t, 1.2, config.Lines.Year)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	data := []byte(`
title: "Roadmap"
figure:
  spacing: 1.0
colors:
  bar: "#ff0000"
`)
	config, err := loadConfig(data)
	require.NoError(t, err)

	defaults := getDefaultConfig()
	assert.Equal(t, "Roadmap", config.Title)
	assert.Equal(t, 1.0, config.Figure.Spacing)
	assert.Equal(t, defaults.Figure.BarHeight, config.Figure.BarHeight)
	assert.Equal(t, "#ff0000", config.Colors.Bar)
	assert.Equal(t, defaults.Colors.BarEdge, config.Colors.BarEdge)
	assert.Equal(t, defaults.Output, config.Output)
	assert.Empty(t, config.Activities)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := loadConfig([]byte("title: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing chart definition")
}
