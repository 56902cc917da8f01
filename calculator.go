package spotlight

import (
	"log/slog"
	"math"
)

// Calculator holds the focus geometry of one showcase presentation.
//
// The background size is fixed at construction. Focus center, size, radius
// and shape are derived from the targets at construction and can be pinned
// afterwards with SetRectanglePosition or SetCirclePosition.
//
// A Calculator is not safe for concurrent use.
type Calculator struct {
	bgWidth, bgHeight int

	shape                   FocusShape
	focusWidth, focusHeight int
	centerX, centerY        int
	radius                  int
	hasFocus                bool

	adjustment int
}

// New computes the focus geometry for targets on screen.
//
// With no targets the Calculator has no focus: the caller dims the whole
// screen. Otherwise all targets collapse into their union box, which
// becomes the focus region with the requested shape.
func New(screen ScreenMetrics, shape FocusShape, targets []TargetBox, opts ...Option) *Calculator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Calculator{
		bgWidth:    screen.Width,
		bgHeight:   screen.Height,
		adjustment: o.yAdjustment(),
	}
	if !o.fitsUnderChrome {
		c.bgHeight -= o.chromeInset
	}

	box, ok := Union(targets)
	if !ok {
		Logger().Debug("spotlight: no targets, focus disabled",
			slog.Int("background_width", c.bgWidth),
			slog.Int("background_height", c.bgHeight))
		return c
	}

	c.focusWidth = box.Width
	c.focusHeight = box.Height
	c.centerX = box.Left + c.focusWidth/2
	c.centerY = box.Top + c.focusHeight/2 - c.adjustment
	c.radius = circumRadius(c.focusWidth, c.focusHeight, o.radiusFactor)
	c.shape = focusShape(shape)
	c.hasFocus = true

	Logger().Debug("spotlight: focus computed",
		slog.Int("targets", len(targets)),
		slog.String("shape", c.shape.String()),
		slog.Int("center_x", c.centerX),
		slog.Int("center_y", c.centerY),
		slog.Int("width", c.focusWidth),
		slog.Int("height", c.focusHeight),
		slog.Int("radius", c.radius),
		slog.Int("y_adjustment", c.adjustment))

	return c
}

// focusShape returns shape when it can outline a focus region. Anything
// else falls back to ShapeCircle, since ShapeNone is reserved for the
// unfocused state.
func focusShape(shape FocusShape) FocusShape {
	switch shape {
	case ShapeCircle, ShapeRoundedRectangle:
		return shape
	}
	Logger().Warn("spotlight: unusable focus shape, using circle",
		slog.String("shape", shape.String()))
	return ShapeCircle
}

// circumRadius returns the radius of the circle circumscribing a w×h box,
// truncated, then scaled by factor and truncated again.
func circumRadius(w, h int, factor float64) int {
	half := int(math.Hypot(float64(w), float64(h)) / 2)
	r := int(float64(half) * factor)
	if r < 0 {
		Logger().Warn("spotlight: negative focus radius clamped to zero",
			slog.Int("radius", r),
			slog.Float64("radius_factor", factor))
		return 0
	}
	return r
}

// SetRectanglePosition pins a rounded-rectangle focus centered at (x, y).
// No range validation is done; the focus may extend past the canvas.
func (c *Calculator) SetRectanglePosition(x, y, width, height int) {
	c.centerX = x
	c.centerY = y
	c.focusWidth = width
	c.focusHeight = height
	c.shape = ShapeRoundedRectangle
	c.hasFocus = true

	Logger().Debug("spotlight: rectangle focus pinned",
		slog.Int("center_x", x), slog.Int("center_y", y),
		slog.Int("width", width), slog.Int("height", height))
}

// SetCirclePosition pins a circular focus centered at (x, y).
// The focus width and height are left as they were.
func (c *Calculator) SetCirclePosition(x, y, radius int) {
	c.centerX = x
	c.centerY = y
	c.radius = radius
	c.shape = ShapeCircle
	c.hasFocus = true

	Logger().Debug("spotlight: circle focus pinned",
		slog.Int("center_x", x), slog.Int("center_y", y),
		slog.Int("radius", radius))
}

// HasFocus reports whether a focus region exists.
func (c *Calculator) HasFocus() bool { return c.hasFocus }

// BackgroundWidth returns the overlay canvas width.
func (c *Calculator) BackgroundWidth() int { return c.bgWidth }

// BackgroundHeight returns the overlay canvas height. It excludes the
// chrome inset unless the overlay fits under the system bars.
func (c *Calculator) BackgroundHeight() int { return c.bgHeight }

// Background returns the overlay canvas size.
func (c *Calculator) Background() ScreenMetrics {
	return ScreenMetrics{Width: c.bgWidth, Height: c.bgHeight}
}

// Shape returns the current focus shape.
func (c *Calculator) Shape() FocusShape { return c.shape }

// FocusWidth returns the width of the focus region.
func (c *Calculator) FocusWidth() int { return c.focusWidth }

// FocusHeight returns the height of the focus region.
func (c *Calculator) FocusHeight() int { return c.focusHeight }

// CenterX returns the x coordinate of the focus center in canvas space.
func (c *Calculator) CenterX() int { return c.centerX }

// CenterY returns the y coordinate of the focus center in canvas space.
func (c *Calculator) CenterY() int { return c.centerY }

// Center returns the focus center.
func (c *Calculator) Center() (x, y int) { return c.centerX, c.centerY }

// Radius returns the focus radius.
func (c *Calculator) Radius() int { return c.radius }

// ChromeAdjustment returns the amount subtracted from target y coordinates
// when they were converted to canvas space.
func (c *Calculator) ChromeAdjustment() int { return c.adjustment }
