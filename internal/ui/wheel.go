package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/jmylchreest/colormine/internal/colour"
	"github.com/jmylchreest/colormine/internal/wheel"
)

// minDensity is the lowest number of device pixels per logical pixel the wheel
// is rendered at, so edges stay sharp when the canvas scale is unknown or 1.
const minDensity = 2

// Wheel is the interactive colour wheel.
type Wheel struct {
	widget.BaseWidget

	image    *canvas.Image
	cache    *wheel.Cache
	throttle *wheel.Throttle

	size   int
	offset fyne.Position
	mode   colour.CenterMode
	pos    colour.Position

	dragging bool
	pending  bool

	// OnSelect is called for every pointer selection inside the wheel.
	OnSelect func(c colour.HSV, pos colour.Position)
	// OnRelease is called when a tap or drag ends.
	OnRelease func()
}

var (
	_ fyne.Tappable     = (*Wheel)(nil)
	_ fyne.Draggable    = (*Wheel)(nil)
	_ desktop.Mouseable = (*Wheel)(nil)
)

// NewWheel creates a wheel widget drawing through cache.
func NewWheel(cache *wheel.Cache) *Wheel {
	w := &Wheel{
		image:    &canvas.Image{FillMode: canvas.ImageFillStretch},
		cache:    cache,
		throttle: wheel.NewThrottle(wheel.FrameInterval, time.Now),
		pos:      colour.DefaultPosition,
	}
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *Wheel) CreateRenderer() fyne.WidgetRenderer {
	return &wheelRenderer{wheel: w}
}

// MinSize keeps the wheel usable in small windows.
func (w *Wheel) MinSize() fyne.Size {
	return fyne.NewSize(160, 160)
}

// Side returns the current wheel side in logical pixels.
func (w *Wheel) Side() int {
	return w.size
}

// Update moves the marker and switches mode. While dragging, marker redraws
// are throttled; a mode change always redraws.
func (w *Wheel) Update(mode colour.CenterMode, pos colour.Position) {
	modeChanged := mode != w.mode
	w.mode = mode
	w.pos = pos

	if w.dragging && !modeChanged && !w.throttle.Allow() {
		w.pending = true
		return
	}
	w.redraw()
}

func (w *Wheel) redraw() {
	w.pending = false
	if w.size < wheel.MinSize {
		return
	}
	w.image.Image = w.cache.ComposeDense(w.size, w.mode, w.density(), w.pos)
	w.image.Refresh()
}

// density is the canvas scale rounded up, never below minDensity.
func (w *Wheel) density() int {
	d := minDensity
	if a := fyne.CurrentApp(); a != nil {
		if c := a.Driver().CanvasForObject(w); c != nil {
			d = max(d, int(math.Ceil(float64(c.Scale()))))
		}
	}
	return d
}

// resize lays the wheel out as the largest square that fits and re-renders
// when the side changes.
func (w *Wheel) resize(size fyne.Size) {
	side := wheel.FitSize(int(size.Width), int(size.Height), 0)
	w.offset = fyne.NewPos((size.Width-float32(side))/2, (size.Height-float32(side))/2)
	w.image.Move(w.offset)
	w.image.Resize(fyne.NewSize(float32(side), float32(side)))
	if side != w.size {
		w.size = side
		w.redraw()
	}
}

// selectAt maps a widget-relative point and reports whether it hit the wheel.
func (w *Wheel) selectAt(p fyne.Position) bool {
	m := wheel.Mapper{Size: w.size, Mode: w.mode}
	sel, ok := m.Map(float64(p.X-w.offset.X), float64(p.Y-w.offset.Y))
	if !ok {
		return false
	}
	if w.OnSelect != nil {
		w.OnSelect(sel.Colour, sel.Position)
	}
	return true
}

func (w *Wheel) release() {
	if w.pending {
		w.redraw()
	}
	if w.OnRelease != nil {
		w.OnRelease()
	}
}

// MouseDown selects immediately so the marker follows the pointer before a
// drag starts.
func (w *Wheel) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonPrimary {
		w.selectAt(ev.Position)
	}
}

// MouseUp implements desktop.Mouseable.
func (w *Wheel) MouseUp(*desktop.MouseEvent) {}

// Tapped selects and commits.
func (w *Wheel) Tapped(ev *fyne.PointEvent) {
	if w.selectAt(ev.Position) {
		w.release()
	}
}

// Dragged follows the pointer. Points outside the tolerance band are ignored.
func (w *Wheel) Dragged(ev *fyne.DragEvent) {
	if !w.dragging {
		w.dragging = true
		w.throttle.Reset()
	}
	w.selectAt(ev.Position)
}

// DragEnd flushes any throttled redraw and commits.
func (w *Wheel) DragEnd() {
	w.dragging = false
	w.release()
}

type wheelRenderer struct {
	wheel *Wheel
}

func (r *wheelRenderer) Layout(size fyne.Size) {
	r.wheel.resize(size)
}

func (r *wheelRenderer) MinSize() fyne.Size {
	return r.wheel.MinSize()
}

func (r *wheelRenderer) Refresh() {
	r.wheel.image.Refresh()
}

func (r *wheelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.wheel.image}
}

func (r *wheelRenderer) Destroy() {}
