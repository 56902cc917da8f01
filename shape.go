package spotlight

// FocusShape selects the outline of the focus region.
type FocusShape int

const (
	// ShapeNone means no focus region has been established yet.
	ShapeNone FocusShape = iota
	// ShapeCircle draws the focus as a circle around the targets.
	ShapeCircle
	// ShapeRoundedRectangle draws the focus as a rounded rectangle
	// hugging the targets.
	ShapeRoundedRectangle
)

// String returns the shape name.
func (s FocusShape) String() string {
	switch s {
	case ShapeNone:
		return "None"
	case ShapeCircle:
		return "Circle"
	case ShapeRoundedRectangle:
		return "RoundedRectangle"
	default:
		return "Unknown"
	}
}
