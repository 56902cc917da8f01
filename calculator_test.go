package spotlight

import (
	"math"
	"testing"
)

var phone = ScreenMetrics{Width: 1080, Height: 1920}

func TestNewNoTargets(t *testing.T) {
	c := New(phone, ShapeCircle, nil, WithChromeInset(60))

	if c.HasFocus() {
		t.Error("HasFocus() = true, want false")
	}
	if c.Shape() != ShapeNone {
		t.Errorf("Shape() = %v, want None", c.Shape())
	}
	if c.FocusWidth() != 0 || c.FocusHeight() != 0 || c.Radius() != 0 {
		t.Errorf("focus size = %dx%d r=%d, want zero", c.FocusWidth(), c.FocusHeight(), c.Radius())
	}
	if x, y := c.Center(); x != 0 || y != 0 {
		t.Errorf("Center() = (%d, %d), want (0, 0)", x, y)
	}
	if c.BackgroundWidth() != 1080 || c.BackgroundHeight() != 1860 {
		t.Errorf("Background() = %+v, want 1080x1860", c.Background())
	}
}

func TestNewSingleTarget(t *testing.T) {
	box := TargetBox{Left: 101, Top: 401, Width: 201, Height: 121}
	c := New(phone, ShapeRoundedRectangle, []TargetBox{box}, WithChromeInset(60))

	adj := c.ChromeAdjustment()
	if adj != 60 {
		t.Fatalf("ChromeAdjustment() = %d, want 60", adj)
	}
	if !c.HasFocus() {
		t.Fatal("HasFocus() = false")
	}
	if c.Shape() != ShapeRoundedRectangle {
		t.Errorf("Shape() = %v, want RoundedRectangle", c.Shape())
	}
	if c.FocusWidth() != box.Width || c.FocusHeight() != box.Height {
		t.Errorf("focus size = %dx%d, want %dx%d", c.FocusWidth(), c.FocusHeight(), box.Width, box.Height)
	}
	if want := box.Left + box.Width/2; c.CenterX() != want {
		t.Errorf("CenterX() = %d, want %d", c.CenterX(), want)
	}
	if want := box.Top + box.Height/2 - adj; c.CenterY() != want {
		t.Errorf("CenterY() = %d, want %d", c.CenterY(), want)
	}
	if c.CenterX() != 201 || c.CenterY() != 401 {
		t.Errorf("Center() = (%d, %d), want (201, 401)", c.CenterX(), c.CenterY())
	}
}

func TestNewMultipleTargets(t *testing.T) {
	targets := []TargetBox{
		{Left: 100, Top: 100, Width: 100, Height: 50},
		{Left: 300, Top: 250, Width: 100, Height: 50},
	}
	c := New(phone, ShapeCircle, targets, WithFitsUnderChrome(true))

	if c.FocusWidth() != 300 || c.FocusHeight() != 200 {
		t.Errorf("focus size = %dx%d, want 300x200", c.FocusWidth(), c.FocusHeight())
	}
	if c.CenterX() != 250 || c.CenterY() != 200 {
		t.Errorf("Center() = (%d, %d), want (250, 200)", c.CenterX(), c.CenterY())
	}
	// hypot(300, 200) / 2 = 180.27
	if c.Radius() != 180 {
		t.Errorf("Radius() = %d, want 180", c.Radius())
	}
}

func TestRadius(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		factor float64
		want   int
	}{
		{"3-4-5", 60, 80, 1, 50},
		{"truncated half", 101, 0, 1, 50},
		{"scaled", 60, 80, 1.5, 75},
		{"doubled", 60, 80, 2, 100},
		{"scale truncates", 61, 0, 1.5, 45}, // trunc(30.5)=30, 30*1.5=45
		{"shrink", 60, 80, 0.5, 25},
		{"zero size", 0, 0, 3, 0},
		{"zero width", 0, 40, 1, 20},
		{"negative factor", 60, 80, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(phone, ShapeCircle,
				[]TargetBox{{Left: 0, Top: 0, Width: tt.w, Height: tt.h}},
				WithRadiusFactor(tt.factor))
			if c.Radius() != tt.want {
				t.Errorf("Radius() = %d, want %d", c.Radius(), tt.want)
			}
		})
	}
}

func TestRadiusMatchesHypot(t *testing.T) {
	for w := 0; w < 300; w += 17 {
		for h := 0; h < 300; h += 23 {
			c := New(phone, ShapeCircle, []TargetBox{{Width: w, Height: h}})
			want := int(math.Floor(math.Hypot(float64(w), float64(h)) / 2))
			if c.Radius() != want {
				t.Fatalf("%dx%d: Radius() = %d, want %d", w, h, c.Radius(), want)
			}

			c2 := New(phone, ShapeCircle, []TargetBox{{Width: w, Height: h}}, WithRadiusFactor(2))
			if c2.Radius() != 2*want {
				t.Fatalf("%dx%d: doubled Radius() = %d, want %d", w, h, c2.Radius(), 2*want)
			}
		}
	}
}

func TestChromeAdjustment(t *testing.T) {
	const inset = 72
	tests := []struct {
		name       string
		fits       bool
		fullScreen bool
		underDraw  bool
		wantHeight int
		wantAdjust int
	}{
		{"windowed", false, false, true, 1920 - inset, inset},
		{"windowed no under-draw", false, false, false, 1920 - inset, inset},
		{"fits under chrome", true, false, true, 1920, 0},
		{"fits without capability", true, false, false, 1920, inset},
		{"full screen", false, true, true, 1920 - inset, 0},
		{"full screen no under-draw", false, true, false, 1920 - inset, 0},
		{"fits and full screen", true, true, true, 1920, 0},
		{"fits and full screen no under-draw", true, true, false, 1920, inset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(phone, ShapeCircle,
				[]TargetBox{{Left: 0, Top: 200, Width: 100, Height: 100}},
				WithChromeInset(inset),
				WithFitsUnderChrome(tt.fits),
				WithFullScreenWindow(tt.fullScreen),
				WithUnderChromeDrawing(tt.underDraw))

			if c.BackgroundHeight() != tt.wantHeight {
				t.Errorf("BackgroundHeight() = %d, want %d", c.BackgroundHeight(), tt.wantHeight)
			}
			if c.BackgroundWidth() != 1080 {
				t.Errorf("BackgroundWidth() = %d, want 1080", c.BackgroundWidth())
			}
			if c.ChromeAdjustment() != tt.wantAdjust {
				t.Errorf("ChromeAdjustment() = %d, want %d", c.ChromeAdjustment(), tt.wantAdjust)
			}
			if want := 250 - tt.wantAdjust; c.CenterY() != want {
				t.Errorf("CenterY() = %d, want %d", c.CenterY(), want)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.radiusFactor != 1 {
		t.Errorf("radiusFactor = %v, want 1", o.radiusFactor)
	}
	if !o.underChromeDraw {
		t.Error("underChromeDraw = false, want true")
	}
	if o.fitsUnderChrome || o.fullScreenWindow || o.chromeInset != 0 {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestSetRectanglePosition(t *testing.T) {
	c := New(phone, ShapeCircle, nil)
	c.SetRectanglePosition(400, 500, 200, 80)

	if !c.HasFocus() {
		t.Error("HasFocus() = false after SetRectanglePosition")
	}
	if c.Shape() != ShapeRoundedRectangle {
		t.Errorf("Shape() = %v, want RoundedRectangle", c.Shape())
	}
	if c.CenterX() != 400 || c.CenterY() != 500 {
		t.Errorf("Center() = (%d, %d), want (400, 500)", c.CenterX(), c.CenterY())
	}
	if c.FocusWidth() != 200 || c.FocusHeight() != 80 {
		t.Errorf("focus size = %dx%d, want 200x80", c.FocusWidth(), c.FocusHeight())
	}
	if c.RectLeft(0, 0) != 300 || c.RectTop(0, 0) != 460 {
		t.Errorf("rect origin = (%v, %v), want (300, 460)", c.RectLeft(0, 0), c.RectTop(0, 0))
	}
}

func TestSetCirclePositionKeepsFocusSize(t *testing.T) {
	c := New(phone, ShapeRoundedRectangle,
		[]TargetBox{{Left: 10, Top: 10, Width: 60, Height: 40}},
		WithFitsUnderChrome(true))
	c.SetCirclePosition(100, 200, 50)

	if c.Shape() != ShapeCircle {
		t.Errorf("Shape() = %v, want Circle", c.Shape())
	}
	if c.CenterX() != 100 || c.CenterY() != 200 || c.Radius() != 50 {
		t.Errorf("circle = (%d, %d) r=%d, want (100, 200) r=50", c.CenterX(), c.CenterY(), c.Radius())
	}
	if c.FocusWidth() != 60 || c.FocusHeight() != 40 {
		t.Errorf("focus size = %dx%d, want untouched 60x40", c.FocusWidth(), c.FocusHeight())
	}
}

func TestSetPositionAcceptsOutOfRange(t *testing.T) {
	c := New(ScreenMetrics{Width: 100, Height: 100}, ShapeCircle, nil)
	c.SetCirclePosition(-50, 500, -10)
	if !c.HasFocus() || c.CenterX() != -50 || c.CenterY() != 500 || c.Radius() != -10 {
		t.Errorf("out-of-range circle not stored verbatim: (%d, %d) r=%d", c.CenterX(), c.CenterY(), c.Radius())
	}
	// Explicit positions are canvas coordinates, the chrome inset is not applied.
	c2 := New(phone, ShapeCircle, nil, WithChromeInset(60))
	c2.SetRectanglePosition(10, 10, 5, 5)
	if c2.CenterY() != 10 {
		t.Errorf("CenterY() = %d, want 10", c2.CenterY())
	}
}

func TestNewUnusableShapeFallsBackToCircle(t *testing.T) {
	targets := []TargetBox{{Left: 10, Top: 10, Width: 20, Height: 20}}
	for _, shape := range []FocusShape{ShapeNone, FocusShape(42)} {
		t.Run(shape.String(), func(t *testing.T) {
			c := New(ScreenMetrics{Width: 100, Height: 100}, shape, targets)
			if !c.HasFocus() {
				t.Fatal("HasFocus() = false")
			}
			if c.Shape() != ShapeCircle {
				t.Errorf("Shape() = %v, want Circle", c.Shape())
			}
			if !c.Contains(20, 20, 0, 0) {
				t.Error("Contains(center) = false")
			}
		})
	}
}

func TestFocusShapeString(t *testing.T) {
	tests := []struct {
		shape FocusShape
		want  string
	}{
		{ShapeNone, "None"},
		{ShapeCircle, "Circle"},
		{ShapeRoundedRectangle, "RoundedRectangle"},
		{FocusShape(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("FocusShape(%d).String() = %q, want %q", int(tt.shape), got, tt.want)
		}
	}
}

func BenchmarkNew(b *testing.B) {
	targets := []TargetBox{
		{Left: 100, Top: 100, Width: 100, Height: 50},
		{Left: 300, Top: 250, Width: 100, Height: 50},
		{Left: 50, Top: 700, Width: 20, Height: 20},
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = New(phone, ShapeCircle, targets, WithChromeInset(60))
	}
}
