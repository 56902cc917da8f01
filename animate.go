package spotlight

// The animated queries below are sampled by the focus animation every frame.
// tick is the animation counter and step how many pixels one tick moves an
// edge. tick may be negative; nothing is clamped, easing belongs to the caller.

// AnimatedRadius returns the focus circle radius at tick.
func (c *Calculator) AnimatedRadius(tick int, step float64) float64 {
	return float64(c.radius) + pulse(tick, step)
}

// RectLeft returns the left edge of the focus rectangle at tick.
func (c *Calculator) RectLeft(tick int, step float64) float64 {
	return float64(c.centerX) - float64(c.focusWidth/2) - pulse(tick, step)
}

// RectTop returns the top edge of the focus rectangle at tick.
func (c *Calculator) RectTop(tick int, step float64) float64 {
	return float64(c.centerY) - float64(c.focusHeight/2) - pulse(tick, step)
}

// RectRight returns the right edge of the focus rectangle at tick.
func (c *Calculator) RectRight(tick int, step float64) float64 {
	return float64(c.centerX) + float64(c.focusWidth/2) + pulse(tick, step)
}

// RectBottom returns the bottom edge of the focus rectangle at tick.
func (c *Calculator) RectBottom(tick int, step float64) float64 {
	return float64(c.centerY) + float64(c.focusHeight/2) + pulse(tick, step)
}

// RectCornerRadius returns the corner radius of the focus rectangle at tick.
// The corner tracks half the focus height.
func (c *Calculator) RectCornerRadius(tick int, step float64) float64 {
	return float64(c.focusHeight/2) + pulse(tick, step)
}

func pulse(tick int, step float64) float64 {
	return float64(tick) * step
}

// Rect is the rounded focus rectangle at one animation tick.
type Rect struct {
	Left, Top, Right, Bottom float64
	CornerRadius             float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// AnimatedRect returns all rectangle edges and the corner radius at tick.
func (c *Calculator) AnimatedRect(tick int, step float64) Rect {
	return Rect{
		Left:         c.RectLeft(tick, step),
		Top:          c.RectTop(tick, step),
		Right:        c.RectRight(tick, step),
		Bottom:       c.RectBottom(tick, step),
		CornerRadius: c.RectCornerRadius(tick, step),
	}
}

// Contains reports whether (x, y) lies inside the focus shape at tick.
// It is always false when there is no focus.
func (c *Calculator) Contains(x, y float64, tick int, step float64) bool {
	if !c.hasFocus {
		return false
	}
	switch c.shape {
	case ShapeCircle:
		r := c.AnimatedRadius(tick, step)
		if r < 0 {
			return false
		}
		dx := x - float64(c.centerX)
		dy := y - float64(c.centerY)
		return dx*dx+dy*dy <= r*r
	case ShapeRoundedRectangle:
		return c.AnimatedRect(tick, step).contains(x, y)
	default:
		return false
	}
}

func (r Rect) contains(x, y float64) bool {
	if x < r.Left || x > r.Right || y < r.Top || y > r.Bottom {
		return false
	}
	cr := min(r.CornerRadius, r.Width()/2, r.Height()/2)
	if cr <= 0 {
		return true
	}

	// Distance to the nearest corner circle center, zero on the straight
	// parts of the outline.
	var dx, dy float64
	switch {
	case x < r.Left+cr:
		dx = r.Left + cr - x
	case x > r.Right-cr:
		dx = x - (r.Right - cr)
	}
	switch {
	case y < r.Top+cr:
		dy = r.Top + cr - y
	case y > r.Bottom-cr:
		dy = y - (r.Bottom - cr)
	}
	return dx*dx+dy*dy <= cr*cr
}
