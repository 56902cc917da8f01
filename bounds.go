package spotlight

// ScreenMetrics describes the device screen in pixels.
type ScreenMetrics struct {
	Width, Height int
}

// TargetBox is the on-screen bounding box of a view to emphasize, in
// absolute window pixels before any chrome inset correction.
type TargetBox struct {
	Left, Top     int
	Width, Height int
}

// Right returns the x coordinate of the right edge.
func (b TargetBox) Right() int { return b.Left + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b TargetBox) Bottom() int { return b.Top + b.Height }

// unionBox accumulates the smallest axis-aligned box enclosing every
// added target. The zero value is the empty accumulator.
//
// image.Rectangle.Union is not used: it drops empty rectangles, while a
// zero-size target still pins its corner into the union here.
type unionBox struct {
	left, top, right, bottom int
	ok                       bool
}

// add folds b into the accumulator.
func (u unionBox) add(b TargetBox) unionBox {
	if !u.ok {
		return unionBox{left: b.Left, top: b.Top, right: b.Right(), bottom: b.Bottom(), ok: true}
	}
	u.left = min(u.left, b.Left)
	u.top = min(u.top, b.Top)
	u.right = max(u.right, b.Right())
	u.bottom = max(u.bottom, b.Bottom())
	return u
}

// box returns the union as a TargetBox. ok is false when nothing was added.
func (u unionBox) box() (TargetBox, bool) {
	if !u.ok {
		return TargetBox{}, false
	}
	return TargetBox{
		Left:   u.left,
		Top:    u.top,
		Width:  u.right - u.left,
		Height: u.bottom - u.top,
	}, true
}

// Union returns the smallest box containing all targets.
// ok is false for an empty slice.
func Union(targets []TargetBox) (box TargetBox, ok bool) {
	var u unionBox
	for _, t := range targets {
		u = u.add(t)
	}
	return u.box()
}
