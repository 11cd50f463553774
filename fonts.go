package main

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet holds the parsed typefaces used by the chart and the resolution
// faces are rasterised at.
type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
	dpi     float64
}

// loadFonts parses the bundled Go fonts for rendering at dpi
func loadFonts(dpi float64) (fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("error parsing regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("error parsing bold font: %w", err)
	}
	return fontSet{regular: regular, bold: bold, dpi: dpi}, nil
}

// Face returns a face of the given point size
func (f fontSet) Face(size float64, bold bool) font.Face {
	typeface := f.regular
	if bold {
		typeface = f.bold
	}
	return truetype.NewFace(typeface, &truetype.Options{
		Size:    size,
		DPI:     f.dpi,
		Hinting: font.HintingFull,
	})
}

// TextBounds represents the measured size of a single line of text in pixels
type TextBounds struct {
	Width   float64
	Height  float64 // Line height, as used for anchoring
	Ascent  float64
	Descent float64
}

// measureText measures text the same way the drawing context anchors it
func measureText(face font.Face, text string) TextBounds {
	metrics := face.Metrics()
	return TextBounds{
		Width:   float64(font.MeasureString(face, text)) / 64,
		Height:  float64(metrics.Height) / 64,
		Ascent:  float64(metrics.Ascent) / 64,
		Descent: float64(metrics.Descent) / 64,
	}
}
