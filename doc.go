// Package spotlight computes focus-highlight geometry for showcase overlays.
//
// # Overview
//
// A showcase overlay dims the whole screen except for a focus region drawn
// around one or more target views. spotlight answers the geometric questions
// such an overlay has to answer every frame:
//
//   - where the focus region is centered and how large it is
//   - how its radius or edges pulse while the focus animation runs
//   - whether the caption goes above or below the focus, and how tall its slot is
//
// spotlight never paints, traverses a view tree or handles input. Callers
// supply absolute-pixel target boxes, screen metrics and the status-bar inset,
// and read back plain numbers.
//
// # Quick Start
//
//	c := spotlight.New(
//	    spotlight.ScreenMetrics{Width: 1080, Height: 1920},
//	    spotlight.ShapeCircle,
//	    []spotlight.TargetBox{{Left: 100, Top: 400, Width: 200, Height: 120}},
//	    spotlight.WithChromeInset(63),
//	    spotlight.WithRadiusFactor(1.2),
//	)
//
//	if c.HasFocus() {
//	    r := c.AnimatedRadius(tick, 1.0)
//	    // paint the circle at c.CenterX(), c.CenterY() with radius r
//	}
//
//	slot := c.CalcAutoTextPosition()
//
// # Multiple targets
//
// Several targets collapse into one focus region: the smallest axis-aligned
// box containing all of them. The result does not depend on target order.
//
// # Concurrency
//
// A Calculator belongs to the presentation that created it and must not be
// used from several goroutines at once. [SetLogger] and [Logger] are safe for
// concurrent use.
package spotlight
