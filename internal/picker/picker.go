package picker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormine/internal/colour"
	"github.com/jmylchreest/colormine/internal/sampler"
)

// Clipboard receives copied text.
type Clipboard interface {
	SetContent(content string)
}

// Recorder stores committed colours; *history.History satisfies it.
type Recorder interface {
	Add(hex string) error
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Options configures a Controller. Every field is optional.
type Options struct {
	Clipboard Clipboard
	Sampler   sampler.Sampler
	History   Recorder
	Clock     Clock
	Logger    hclog.Logger

	// Notify shows a one-off message to the user, e.g. when a capability is missing.
	Notify func(message string)

	// Mode is the initial centre mode.
	Mode colour.CenterMode
}

// Controller is the single owner of the picker state.
type Controller struct {
	mu    sync.Mutex
	state State
	focus map[Field]bool

	copiedTimer Timer
	copiedGen   uint64

	clipboard Clipboard
	sampler   sampler.Sampler
	history   Recorder
	clock     Clock
	notify    func(string)
	logger    hclog.Logger

	listeners []func(State)
}

// New creates a controller holding the default colour.
func New(opts Options) *Controller {
	c := &Controller{
		state:     DefaultState(),
		focus:     map[Field]bool{},
		clipboard: opts.Clipboard,
		sampler:   opts.Sampler,
		history:   opts.History,
		clock:     opts.Clock,
		notify:    opts.Notify,
		logger:    opts.Logger,
	}
	c.state.Mode = opts.Mode
	if c.sampler == nil {
		c.sampler = sampler.Unsupported
	}
	if c.clock == nil {
		c.clock = realClock{}
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}
	return c
}

// OnChange registers fn to be called with a snapshot after every change.
// Listeners run outside the controller lock.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// update runs fn under the lock and re-syncs unfocused text fields. When
// commit is set the new colour is recorded in the history before listeners
// are notified.
func (c *Controller) update(fn func(s *State), commit bool) State {
	c.mu.Lock()
	fn(&c.state)
	c.syncTextLocked()
	snapshot := c.state
	listeners := append([]func(State){}, c.listeners...)
	c.mu.Unlock()

	if commit {
		c.record(snapshot.Hex())
	}
	for _, l := range listeners {
		l(snapshot)
	}
	return snapshot
}

func (c *Controller) record(hex string) {
	if c.history == nil {
		return
	}
	if err := c.history.Add(hex); err != nil {
		c.logger.Warn("failed to record colour in history", "colour", hex, "error", err)
	}
}

func (c *Controller) syncTextLocked() {
	rgb := c.state.Colour.RGB()
	if !c.focus[FieldHex] {
		c.state.HexText = rgb.Hex()
	}
	if !c.focus[FieldRGB] {
		c.state.RGBText = rgb.Text()
	}
}

// SetFromWheel replaces the colour and marker position with a wheel selection.
// The position is stored as given, unclamped.
func (c *Controller) SetFromWheel(hsv colour.HSV, pos colour.Position) {
	c.update(func(s *State) {
		s.Colour = hsv
		s.Position = pos
	}, false)
}

// applyRGB sets the colour from RGB, infers the centre mode (white iff
// value is exactly 1) and recomputes the marker position.
func applyRGB(s *State, rgb colour.RGB) {
	hsv := colour.RGBToHSV(rgb)
	s.Colour = hsv
	s.Mode = colour.ModeFor(hsv)
	s.Position = colour.PositionFromHSV(hsv)
}

// SetFromRGBText handles an edit of the RGB text input. The raw text is always
// kept so the user's keystrokes are echoed; the colour only changes when text
// is a valid "r, g, b" triple.
func (c *Controller) SetFromRGBText(text string) error {
	rgb, err := colour.ParseRGBText(text)
	c.update(func(s *State) {
		s.RGBText = text
		if err == nil {
			applyRGB(s, rgb)
		}
	}, err == nil)
	if err != nil {
		c.logger.Trace("rgb text rejected", "text", text)
	}
	return err
}

// SetFromHexText handles an edit of the hex text input with the same rules as
// SetFromRGBText.
func (c *Controller) SetFromHexText(text string) error {
	rgb, err := colour.ParseHex(text)
	c.update(func(s *State) {
		s.HexText = text
		if err == nil {
			applyRGB(s, rgb)
		}
	}, err == nil)
	if err != nil {
		c.logger.Trace("hex text rejected", "text", text)
	}
	return err
}

// SetFromSlider changes one RGB channel. value is clamped to 0-255.
// Sliders do not commit to history; call Commit when the drag ends.
func (c *Controller) SetFromSlider(ch Channel, value int) {
	v := uint8(max(0, min(255, value)))
	c.update(func(s *State) {
		rgb := s.Colour.RGB()
		switch ch {
		case ChannelR:
			rgb.R = v
		case ChannelG:
			rgb.G = v
		case ChannelB:
			rgb.B = v
		}
		applyRGB(s, rgb)
	}, false)
}

// SetFromHex selects a colour by hex, e.g. from the history list.
func (c *Controller) SetFromHex(hex string) error {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}
	c.update(func(s *State) { applyRGB(s, rgb) }, true)
	return nil
}

// SetFromHSV selects a colour directly, e.g. a harmony swatch. The centre mode
// is left alone.
func (c *Controller) SetFromHSV(hsv colour.HSV) {
	hsv = colour.HSV{
		H: colour.NormaliseHue(hsv.H),
		S: clamp01(hsv.S),
		V: clamp01(hsv.V),
	}
	c.update(func(s *State) {
		s.Colour = hsv
		s.Position = colour.PositionFromHSV(hsv)
	}, true)
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}

// ToggleCenterMode flips between white and black centre. The current colour
// and marker position are not reconverted.
func (c *Controller) ToggleCenterMode() colour.CenterMode {
	return c.update(func(s *State) {
		s.Mode = s.Mode.Toggle()
	}, false).Mode
}

// Reset restores red, white centre and the marker at (1, 0).
func (c *Controller) Reset() {
	c.update(func(s *State) {
		d := DefaultState()
		s.Colour = d.Colour
		s.Position = d.Position
		s.Mode = d.Mode
	}, false)
}

// SetFocus records whether a text field is being edited. Focused fields are
// not overwritten by colour changes; losing focus re-syncs the field.
func (c *Controller) SetFocus(f Field, focused bool) {
	c.update(func(*State) {
		c.focus[f] = focused
	}, false)
}

// Commit records the current colour in the history and notifies listeners.
func (c *Controller) Commit() {
	c.update(func(*State) {}, true)
}

// CopyHex copies "#RRGGBB" to the clipboard and raises the copied flag.
func (c *Controller) CopyHex() string {
	text := c.State().Hex()
	c.copy(text, CopiedHex)
	return text
}

// CopyRGB copies "rgb(R, G, B)" to the clipboard and raises the copied flag.
func (c *Controller) CopyRGB() string {
	text := c.State().RGB().String()
	c.copy(text, CopiedRGB)
	return text
}

// copy writes text and arms the flag. A pending clear timer is cancelled and
// replaced so the flag always lasts CopiedFlagDuration from the latest copy.
func (c *Controller) copy(text string, which Copied) {
	if c.clipboard != nil {
		c.clipboard.SetContent(text)
	}

	c.mu.Lock()
	if c.copiedTimer != nil {
		c.copiedTimer.Stop()
	}
	c.copiedGen++
	gen := c.copiedGen
	c.copiedTimer = c.clock.AfterFunc(CopiedFlagDuration, func() { c.clearCopied(gen) })
	c.mu.Unlock()

	c.update(func(s *State) { s.Copied = which }, false)
}

func (c *Controller) clearCopied(gen uint64) {
	c.mu.Lock()
	stale := gen != c.copiedGen
	if !stale {
		c.copiedTimer = nil
	}
	c.mu.Unlock()
	if stale {
		return
	}
	c.update(func(s *State) { s.Copied = CopiedNone }, false)
}

// PickFromScreen asks the sampler for a colour. A missing capability is shown
// through Notify and returned as sampler.ErrUnsupported without changing
// state; a cancelled pick returns nil and changes nothing.
func (c *Controller) PickFromScreen(ctx context.Context) error {
	hex, err := c.sampler.Sample(ctx)
	switch {
	case errors.Is(err, sampler.ErrCancelled):
		c.logger.Debug("screen pick cancelled")
		return nil
	case errors.Is(err, sampler.ErrUnsupported):
		if c.notify != nil {
			c.notify("Your system does not support picking colours from the screen.")
		}
		return err
	case err != nil:
		c.logger.Error("screen pick failed", "error", err)
		return fmt.Errorf("failed to sample colour: %w", err)
	}

	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("sampler returned %q: %w", hex, err)
	}
	c.update(func(s *State) { applyRGB(s, rgb) }, true)
	return nil
}
