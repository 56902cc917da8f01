package spotlight

// Option configures a Calculator during creation.
//
// Example:
//
//	c := spotlight.New(screen, spotlight.ShapeCircle, targets,
//	    spotlight.WithChromeInset(statusBar),
//	    spotlight.WithRadiusFactor(1.5),
//	)
type Option func(*options)

// options holds optional configuration for Calculator creation.
type options struct {
	radiusFactor     float64
	fitsUnderChrome  bool
	chromeInset      int
	fullScreenWindow bool
	underChromeDraw  bool
}

func defaultOptions() options {
	return options{
		radiusFactor:    1.0,
		underChromeDraw: true,
	}
}

// WithRadiusFactor scales the computed focus radius. Values above 1 enlarge
// the focus beyond the tight fit around the targets, values below 1 shrink it.
// The default is 1.
func WithRadiusFactor(f float64) Option {
	return func(o *options) {
		o.radiusFactor = f
	}
}

// WithFitsUnderChrome reports that the overlay content is laid out under the
// system bars, so the canvas covers the full screen height.
func WithFitsUnderChrome(fits bool) Option {
	return func(o *options) {
		o.fitsUnderChrome = fits
	}
}

// WithChromeInset sets the status-bar height in pixels.
// See [StatusBarHeight] for looking it up from a [DimensionSource].
func WithChromeInset(px int) Option {
	return func(o *options) {
		o.chromeInset = px
	}
}

// WithFullScreenWindow reports that the host window hides the status bar.
func WithFullScreenWindow(full bool) Option {
	return func(o *options) {
		o.fullScreenWindow = full
	}
}

// WithUnderChromeDrawing declares whether the host platform can draw content
// under the system bars. It is a capability of the platform, not of the
// overlay: the platform layer decides it, the Calculator only consumes it.
// The default is true.
func WithUnderChromeDrawing(supported bool) Option {
	return func(o *options) {
		o.underChromeDraw = supported
	}
}

// adjustForChrome reports whether target coordinates already live in canvas
// space, in which case no inset has to be subtracted from them.
func (o options) adjustForChrome() bool {
	return (o.fitsUnderChrome && o.underChromeDraw) ||
		(o.fullScreenWindow && !o.fitsUnderChrome)
}

// yAdjustment is the amount subtracted from each target's y coordinate.
func (o options) yAdjustment() int {
	if o.adjustForChrome() {
		return 0
	}
	return o.chromeInset
}
