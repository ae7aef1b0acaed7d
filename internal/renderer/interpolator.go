package renderer

import (
	"strings"
	"time"

	"github.com/fogleman/ease"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(float64) float64

var curves = map[string]Curve{
	"linear":       ease.Linear,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-sine":  ease.InOutSine,
}

// DefaultCurve is the easing used when none is configured
const DefaultCurve = "in-out-cubic"

// CurveByName returns the named easing curve, or the default one.
func CurveByName(name string) Curve {
	if c, ok := curves[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return curves[DefaultCurve]
}

// Interpolate returns the value between from and to at progress t, eased by curve.
func Interpolate(from, to, t float64, curve Curve) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	if curve != nil {
		t = curve(t)
	}
	return lerp(from, to, t)
}

// FrameCount returns how many frames an effect of duration d takes at fps.
// Zero means the effect is applied at once.
func FrameCount(d time.Duration, fps int) int {
	if d <= 0 || fps <= 0 {
		return 0
	}
	n := int(d.Seconds() * float64(fps))
	if n < 1 {
		n = 1
	}
	return n
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// frames calls draw with the progress of every frame of an effect lasting d,
// pacing them at fps. The last call always has progress 1.
func frames(d time.Duration, fps int, draw func(p float64)) {
	n := FrameCount(d, fps)
	if n == 0 {
		draw(1)
		return
	}

	ticker := time.NewTicker(d / time.Duration(n))
	defer ticker.Stop()
	for i := 1; i <= n; i++ {
		<-ticker.C
		draw(float64(i) / float64(n))
	}
}
