package signature

import (
	"sync"
	"time"
)

// Point is a logical (CSS pixel) coordinate on the capture surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

const surfaceInitAttempts = 10

// var so tests can shorten the backoff
var surfaceInitBaseDelay = 100 * time.Millisecond

// Pad records freehand strokes over a drawing surface. Pointer and touch
// gestures are adapted to the same three calls: Begin starts a path at the
// contact point, Extend grows it and marks ink, End stops extending. Clear
// wipes everything.
//
// The surface is sized in logical pixels plus a device pixel ratio so the
// exported raster stays crisp on dense screens.
type Pad struct {
	mu         sync.Mutex
	width      int
	height     int
	pixelRatio float64
	ready      bool
	drawing    bool
	hasInk     bool
	strokes    [][]Point
}

func NewPad() *Pad {
	return &Pad{}
}

// TryInit sizes the surface. A zero measured width means the surface is not
// laid out yet and the call reports false without touching state.
func (p *Pad) TryInit(width, height int, pixelRatio float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = width
	p.height = height
	p.pixelRatio = pixelRatio
	p.ready = true
	return true
}

// EnsureReady retries initialization with growing delays while the measured
// surface has no width, up to a bounded attempt count. Giving up is silent:
// the signing step stays usable once the surface reports real dimensions
// through TryInit.
func (p *Pad) EnsureReady(measure func() (width, height int, pixelRatio float64)) {
	for attempt := 0; attempt < surfaceInitAttempts; attempt++ {
		if p.Ready() {
			return
		}
		if p.TryInit(measure()) {
			return
		}
		time.Sleep(surfaceInitBaseDelay * time.Duration(attempt+1))
	}
}

func (p *Pad) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Begin starts a path at the contact point. Gestures on a surface that is
// not laid out yet are dropped.
func (p *Pad) Begin(pt Point) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	p.drawing = true
	p.strokes = append(p.strokes, []Point{pt})
}

// Extend grows the active path and marks the pad as inked.
func (p *Pad) Extend(pt Point) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.drawing || len(p.strokes) == 0 {
		return
	}
	last := len(p.strokes) - 1
	p.strokes[last] = append(p.strokes[last], pt)
	p.hasInk = true
}

// End stops extending. The recorded path stays.
func (p *Pad) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drawing = false
}

// Clear wipes the surface and resets the ink flag. Surface sizing survives.
func (p *Pad) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strokes = nil
	p.drawing = false
	p.hasInk = false
}

func (p *Pad) HasInk() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasInk
}

func (p *Pad) snapshot() (width, height int, ratio float64, strokes [][]Point, ready bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	strokes = make([][]Point, len(p.strokes))
	for i, s := range p.strokes {
		strokes[i] = append([]Point(nil), s...)
	}
	return p.width, p.height, p.pixelRatio, strokes, p.ready
}
