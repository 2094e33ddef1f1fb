package portfolio

import (
	"fmt"
	"math"
	"sync"
)

// Point is a position in CSS pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in CSS pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Offset returns p relative to the centre of r.
func (r Rect) Offset(p Point) Point {
	c := r.Center()
	return Point{X: p.X - c.X, Y: p.Y - c.Y}
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Area returns the area of r; negative extents count as zero.
func (r Rect) Area() float64 {
	return math.Max(r.Width, 0) * math.Max(r.Height, 0)
}

// Intersect returns the overlap of r and o. The result has zero area when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// IntersectionRatio is the fraction of target's area that lies inside viewport.
func IntersectionRatio(target, viewport Rect) float64 {
	area := target.Area()
	if area == 0 {
		return 0
	}
	return math.Min(target.Intersect(viewport).Area()/area, 1)
}

// Viewport simulates a scrolling browser viewport over a fixed page layout.
// Observers created through Factory receive entries the way the browser's
// IntersectionObserver delivers them: one initial entry per newly observed
// section, then an entry whenever a section crosses the threshold.
type Viewport struct {
	mu        sync.Mutex
	layout    map[SectionID]Rect
	width     float64
	height    float64
	scrollY   float64
	observers []*viewportObserver
}

// NewViewport returns a viewport of the given size at scroll offset zero.
// layout holds each section's box in page coordinates.
func NewViewport(layout map[SectionID]Rect, width, height float64) *Viewport {
	cp := make(map[SectionID]Rect, len(layout))
	for id, r := range layout {
		cp[id] = r
	}
	return &Viewport{layout: cp, width: width, height: height}
}

// StackedLayout places sections one below another, full width, with the
// given heights, in document order. Sections missing from heights get zero height.
func StackedLayout(width float64, heights map[SectionID]float64) map[SectionID]Rect {
	layout := make(map[SectionID]Rect, len(sectionOrder))
	y := 0.0
	for _, id := range sectionOrder {
		h := heights[id]
		layout[id] = Rect{X: 0, Y: y, Width: width, Height: h}
		y += h
	}
	return layout
}

// Factory returns an ObserverFactory bound to this viewport.
func (v *Viewport) Factory() ObserverFactory {
	return func(threshold float64, callback func([]IntersectionEntry)) (IntersectionObserver, error) {
		if callback == nil {
			return nil, fmt.Errorf("%w: nil callback", ErrInvalidInput)
		}
		o := &viewportObserver{
			viewport:  v,
			threshold: threshold,
			callback:  callback,
			above:     make(map[SectionID]bool),
		}
		v.mu.Lock()
		v.observers = append(v.observers, o)
		v.mu.Unlock()
		return o, nil
	}
}

// ScrollTo moves the viewport's top edge to y and delivers pending entries.
func (v *Viewport) ScrollTo(y float64) {
	v.mu.Lock()
	v.scrollY = y
	observers := append([]*viewportObserver(nil), v.observers...)
	v.mu.Unlock()

	for _, o := range observers {
		o.deliver()
	}
}

// Ratio returns the visible fraction of id at the current scroll offset.
func (v *Viewport) Ratio(id SectionID) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ratioLocked(id)
}

func (v *Viewport) ratioLocked(id SectionID) float64 {
	r, ok := v.layout[id]
	if !ok {
		return 0
	}
	return IntersectionRatio(r, Rect{X: 0, Y: v.scrollY, Width: v.width, Height: v.height})
}

func (v *Viewport) remove(o *viewportObserver) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, cur := range v.observers {
		if cur == o {
			v.observers = append(v.observers[:i], v.observers[i+1:]...)
			return
		}
	}
}

type viewportObserver struct {
	mu           sync.Mutex
	viewport     *Viewport
	threshold    float64
	callback     func([]IntersectionEntry)
	targets      []SectionID
	pending      []SectionID
	above        map[SectionID]bool
	disconnected bool
}

func (o *viewportObserver) Observe(id SectionID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disconnected {
		return nil
	}
	for _, t := range o.targets {
		if t == id {
			return nil
		}
	}
	o.targets = append(o.targets, id)
	o.pending = append(o.pending, id)
	return nil
}

func (o *viewportObserver) Disconnect() {
	o.mu.Lock()
	o.disconnected = true
	o.targets = nil
	o.pending = nil
	o.mu.Unlock()
	o.viewport.remove(o)
}

func (o *viewportObserver) deliver() {
	o.mu.Lock()
	if o.disconnected {
		o.mu.Unlock()
		return
	}
	pending := make(map[SectionID]bool, len(o.pending))
	for _, id := range o.pending {
		pending[id] = true
	}
	o.pending = nil

	var entries []IntersectionEntry
	o.viewport.mu.Lock()
	for _, id := range o.targets {
		ratio := o.viewport.ratioLocked(id)
		above := ratio >= o.threshold
		if pending[id] || above != o.above[id] {
			entries = append(entries, IntersectionEntry{ID: id, IsIntersecting: ratio > 0, Ratio: ratio})
		}
		o.above[id] = above
	}
	o.viewport.mu.Unlock()
	cb := o.callback
	o.mu.Unlock()

	if len(entries) > 0 {
		cb(entries)
	}
}
