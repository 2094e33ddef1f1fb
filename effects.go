// effects.go
package portfolio

import (
	"fmt"
	"strconv"
)

// Pointer event names the effects listen for.
const (
	EventPointerMove  = "pointermove"
	EventPointerLeave = "pointerleave"
)

const (
	// TiltStrength divides the pointer offset to get degrees of rotation.
	TiltStrength = 20.0
	// MagneticStrength is the fraction of the pointer offset a magnetic element follows.
	MagneticStrength = 0.15

	TiltSelector     = ".tilt-card"
	MagneticSelector = ".magnetic"
)

// Rotation is a tilt transform in degrees.
type Rotation struct {
	// X rotates around the horizontal axis (follows vertical pointer offset).
	X float64
	// Y rotates around the vertical axis (follows horizontal pointer offset).
	Y float64
}

// CSS renders r as a transform value. The zero Rotation renders the identity tilt.
func (r Rotation) CSS() string {
	return fmt.Sprintf("rotateY(%sdeg) rotateX(%sdeg)", formatFloat(r.Y), formatFloat(r.X))
}

// Translation is a magnetic displacement in pixels.
type Translation struct {
	X, Y float64
}

// CSS renders t as a transform value. The zero Translation renders as the
// empty string, which clears the element's transform.
func (t Translation) CSS() string {
	if t == (Translation{}) {
		return ""
	}
	return fmt.Sprintf("translate(%spx, %spx)", formatFloat(t.X), formatFloat(t.Y))
}

// TiltAt returns the rotation for a pointer at p over an element with the given bounds.
func TiltAt(bounds Rect, p Point, strength float64) Rotation {
	if strength == 0 {
		return Rotation{}
	}
	off := bounds.Offset(p)
	return Rotation{X: -off.Y / strength, Y: off.X / strength}
}

// MagnetAt returns the displacement for a pointer at p over an element with the given bounds.
func MagnetAt(bounds Rect, p Point, strength float64) Translation {
	off := bounds.Offset(p)
	return Translation{X: off.X * strength, Y: off.Y * strength}
}

// MountTilt binds the tilt effect to the first element matching selector.
// When nothing matches it does nothing and returns a no-op disposer.
func MountTilt(doc Document, selector string) Disposer {
	if doc == nil {
		return func() {}
	}
	el, ok := doc.Query(selector)
	if !ok || el == nil {
		return func() {}
	}

	var lc Lifecycle
	lc.Add(el.On(EventPointerMove, func(p Point) {
		el.SetTransform(TiltAt(el.Bounds(), p, TiltStrength).CSS())
	}))
	lc.Add(el.On(EventPointerLeave, func(Point) {
		el.SetTransform(Rotation{}.CSS())
	}))
	return lc.Dispose
}

// MountMagnetic binds the magnetic effect to every element matching selector.
// Each element reacts only to its own pointer events.
func MountMagnetic(doc Document, selector string) Disposer {
	if doc == nil {
		return func() {}
	}

	var lc Lifecycle
	for _, el := range doc.QueryAll(selector) {
		if el == nil {
			continue
		}
		lc.Add(el.On(EventPointerMove, func(p Point) {
			el.SetTransform(MagnetAt(el.Bounds(), p, MagneticStrength).CSS())
		}))
		lc.Add(el.On(EventPointerLeave, func(Point) {
			el.SetTransform(Translation{}.CSS())
		}))
	}
	return lc.Dispose
}

// formatFloat prints f without trailing zeros, the way JavaScript stringifies numbers.
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
