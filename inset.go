package spotlight

import "log/slog"

// StatusBarDimension is the dimension name under which platforms publish
// the status-bar height.
const StatusBarDimension = "status_bar_height"

// DimensionSource resolves named platform dimensions to pixels.
// ok is false when the platform does not define the dimension.
type DimensionSource interface {
	Dimension(name string) (px int, ok bool)
}

// Dimensions is a DimensionSource backed by a map.
type Dimensions map[string]int

// Dimension implements DimensionSource.
func (d Dimensions) Dimension(name string) (int, bool) {
	px, ok := d[name]
	return px, ok
}

// StatusBarHeight returns the status-bar height published by src, or 0 when
// src is nil or does not define it. Negative heights are treated as 0.
func StatusBarHeight(src DimensionSource) int {
	if src == nil {
		return 0
	}
	px, ok := src.Dimension(StatusBarDimension)
	if !ok {
		return 0
	}
	if px < 0 {
		Logger().Warn("spotlight: negative status bar height ignored", slog.Int("px", px))
		return 0
	}
	return px
}
