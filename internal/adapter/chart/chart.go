// Package chart renders aggregation results as PNG bar charts.
package chart

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Bar is one labelled value in a chart. Bars are drawn in slice order,
// left to right.
type Bar struct {
	Label string
	Value float64
}

// ErrNoData reports a chart request with nothing to draw.
var ErrNoData = errors.New("no data to chart")

// Canvas and layout constants, sized for comfortable reading of up to a
// few dozen bars.
const (
	chartWidth  = 1000
	chartHeight = 600

	marginLeft   = 80.0
	marginRight  = 40.0
	marginTop    = 60.0
	marginBottom = 70.0

	barFill = "#87CEEB" // sky blue
	gridInk = "#D0D0D0"
)

// WriteBarChart renders bars as a vertical bar chart PNG at path, creating
// parent directories as needed. Negative values hang below a zero
// baseline.
func WriteBarChart(path, title, yLabel string, bars []Bar) error {
	if len(bars) == 0 {
		return ErrNoData
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, chartWidth, chartHeight)
	dc.Fill()

	scale := newValueScale(bars)

	drawGrid(dc, scale)
	drawBars(dc, bars, scale)
	drawFrame(dc, title, yLabel, scale)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

// valueScale maps data values onto canvas y coordinates. The value range
// always includes zero so bars have a common baseline.
type valueScale struct {
	lo, hi float64
}

func newValueScale(bars []Bar) valueScale {
	var lo, hi float64
	for _, b := range bars {
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	// Leave headroom so the tallest bar stays off the frame.
	span := hi - lo
	if hi > 0 {
		hi += span * 0.05
	}
	if lo < 0 {
		lo -= span * 0.05
	}
	return valueScale{lo: lo, hi: hi}
}

func (s valueScale) y(v float64) float64 {
	top := marginTop
	bottom := chartHeight - marginBottom
	frac := (v - s.lo) / (s.hi - s.lo)
	return bottom - frac*(bottom-top)
}

// tickStep picks a 1/2/5-based step that yields roughly six intervals.
func (s valueScale) tickStep() float64 {
	raw := (s.hi - s.lo) / 6
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag <= 1:
		return mag
	case raw/mag <= 2:
		return 2 * mag
	case raw/mag <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func drawGrid(dc *gg.Context, scale valueScale) {
	step := scale.tickStep()

	dc.SetHexColor(gridInk)
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for v := math.Ceil(scale.lo/step) * step; v <= scale.hi; v += step {
		y := scale.y(v)
		dc.DrawLine(marginLeft, y, chartWidth-marginRight, y)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetRGB(0, 0, 0)
	for v := math.Ceil(scale.lo/step) * step; v <= scale.hi; v += step {
		dc.DrawStringAnchored(formatTick(v), marginLeft-8, scale.y(v), 1, 0.5)
	}
}

func drawBars(dc *gg.Context, bars []Bar, scale valueScale) {
	slot := (chartWidth - marginLeft - marginRight) / float64(len(bars))
	baseline := scale.y(0)

	for i, b := range bars {
		x := marginLeft + float64(i)*slot + slot*0.15
		y := scale.y(b.Value)

		top := math.Min(y, baseline)
		height := math.Abs(baseline - y)

		dc.SetHexColor(barFill)
		dc.DrawRectangle(x, top, slot*0.7, height)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(b.Label, x+slot*0.35, chartHeight-marginBottom+16, 0.5, 0.5)
	}
}

func drawFrame(dc *gg.Context, title, yLabel string, scale valueScale) {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)

	// Left axis and bottom edge.
	dc.DrawLine(marginLeft, marginTop, marginLeft, chartHeight-marginBottom)
	dc.Stroke()
	dc.DrawLine(marginLeft, chartHeight-marginBottom, chartWidth-marginRight, chartHeight-marginBottom)
	dc.Stroke()

	// With negative values the zero baseline sits above the bottom edge.
	if scale.lo < 0 {
		baseline := scale.y(0)
		dc.DrawLine(marginLeft, baseline, chartWidth-marginRight, baseline)
		dc.Stroke()
	}

	dc.DrawStringAnchored(title, chartWidth/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored(yLabel, marginLeft, marginTop-16, 0, 0.5)
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
