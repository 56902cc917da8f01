package spotlight

// TextSlot is a layout directive for the caption: the vertical band of the
// canvas the caption should occupy, expressed as margins and a height.
type TextSlot struct {
	// Above is true when the caption goes above the focus region.
	Above bool

	TopMargin    int
	BottomMargin int
	Height       int
}

// CalcAutoTextPosition places the caption in the larger of the two vertical
// gaps around the focus region. Ties go below.
//
// Above the focus the slot spans from the top of the canvas down to the
// focus top. Below, it starts one radius under the focus center and runs to
// the bottom of the canvas.
func (c *Calculator) CalcAutoTextPosition() TextSlot {
	top := int(c.RectTop(0, 0))
	bottom := int(c.RectBottom(0, 0))

	spaceAbove := top
	spaceBelow := c.bgHeight - bottom
	edge := c.centerY + c.radius

	if spaceAbove > spaceBelow {
		return TextSlot{
			Above:        true,
			TopMargin:    0,
			BottomMargin: c.bgHeight - edge,
			Height:       spaceAbove,
		}
	}
	return TextSlot{
		TopMargin:    edge,
		BottomMargin: 0,
		Height:       c.bgHeight - edge,
	}
}
