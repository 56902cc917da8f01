package main

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/spotlight"
)

const (
	captionSize    = 48.0
	minCaptionSize = 10.0
	captionMargin  = 0.9
	dimAlpha       = 0.75
)

var (
	appColor    = gg.Hex("#eceff1")
	targetColor = gg.Hex("#1e88e5")
)

// scene is what the overlay is drawn over and with.
type scene struct {
	caption string
	targets []spotlight.TargetBox
	tick    int
	step    float64
}

// render paints a mock app screen, the dim layer with its focus hole and
// the caption in its auto-placed slot.
func render(c *spotlight.Calculator, s scene) (*gg.Context, error) {
	bg := c.Background()
	dc := gg.NewContext(bg.Width, bg.Height)
	dc.ClearWithColor(appColor)

	// Targets are in window space, the canvas starts below the inset.
	if len(s.targets) > 0 {
		dc.SetColor(targetColor.Color())
		for _, t := range s.targets {
			dc.DrawRectangle(float64(t.Left), float64(t.Top-c.ChromeAdjustment()), float64(t.Width), float64(t.Height))
		}
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("fill targets: %w", err)
		}
	}

	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.SetRGBA(0, 0, 0, dimAlpha)
	dc.DrawRectangle(0, 0, float64(bg.Width), float64(bg.Height))
	if c.HasFocus() {
		focusPath(dc, c, s.tick, s.step)
	}
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill overlay: %w", err)
	}
	dc.SetFillRule(gg.FillRuleNonZero)

	if s.caption != "" {
		if err := drawCaption(dc, c, s.caption); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

// focusPath adds the focus outline as a second subpath, punching a hole in
// the dim layer under the even-odd rule.
func focusPath(dc *gg.Context, c *spotlight.Calculator, tick int, step float64) {
	switch c.Shape() {
	case spotlight.ShapeCircle:
		r := c.AnimatedRadius(tick, step)
		if r > 0 {
			dc.DrawCircle(float64(c.CenterX()), float64(c.CenterY()), r)
		}
	case spotlight.ShapeRoundedRectangle:
		r := c.AnimatedRect(tick, step)
		if r.Width() > 0 && r.Height() > 0 {
			dc.DrawRoundedRectangle(r.Left, r.Top, r.Width(), r.Height(), max(r.CornerRadius, 0))
		}
	}
}

// drawCaption centers the caption in the slot chosen by the calculator,
// shrinking the font until the text fits the slot.
func drawCaption(dc *gg.Context, c *spotlight.Calculator, caption string) error {
	top, height := 0, c.BackgroundHeight()
	if c.HasFocus() {
		slot := c.CalcAutoTextPosition()
		top, height = slot.TopMargin, slot.Height
	}
	if height <= 0 {
		return nil
	}

	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load caption font: %w", err)
	}

	maxW := float64(c.BackgroundWidth()) * captionMargin
	maxH := float64(height) * captionMargin
	size := fitCaption(captionSize, func(size float64) (float64, float64) {
		dc.SetFont(src.Face(size))
		return dc.MeasureString(caption)
	}, maxW, maxH)
	dc.SetFont(src.Face(size))

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(caption, float64(c.BackgroundWidth())/2, float64(top)+float64(height)/2, 0.5, 0.5)
	return nil
}

// fitCaption returns the largest size, starting from size and stepping down,
// whose measured text fits maxW×maxH. It never goes below minCaptionSize.
func fitCaption(size float64, measure func(float64) (w, h float64), maxW, maxH float64) float64 {
	for size > minCaptionSize {
		w, h := measure(size)
		if w <= maxW && h <= maxH {
			return size
		}
		size -= 2
	}
	return minCaptionSize
}
