package picker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmylchreest/colormine/internal/colour"
	"github.com/jmylchreest/colormine/internal/history"
	"github.com/jmylchreest/colormine/internal/sampler"
)

type fakeClipboard struct {
	content string
	writes  int
}

func (f *fakeClipboard) SetContent(content string) {
	f.content = content
	f.writes++
}

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	if d != CopiedFlagDuration {
		panic("unexpected duration " + d.String())
	}
	t := &fakeTimer{fn: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs timer i even if stopped, simulating a Stop that lost the race
// with the callback.
func (c *fakeClock) fire(i int) {
	c.timers[i].fn()
}

func newTestController(t *testing.T) (*Controller, *history.History, *fakeClipboard, *fakeClock) {
	t.Helper()
	h := history.Load(history.NewMemoryStore(), nil)
	clip := &fakeClipboard{}
	clock := &fakeClock{}
	c := New(Options{Clipboard: clip, History: h, Clock: clock})
	return c, h, clip, clock
}

func TestDefaultState(t *testing.T) {
	c, _, _, _ := newTestController(t)
	s := c.State()
	if s.Hex() != "#FF0000" || s.Mode != colour.CenterWhite || s.Position != colour.DefaultPosition {
		t.Errorf("default state = %+v", s)
	}
	if s.HexText != "#FF0000" || s.RGBText != "255, 0, 0" {
		t.Errorf("default text = %q / %q", s.HexText, s.RGBText)
	}
}

func TestSetFromWheel(t *testing.T) {
	c, h, _, _ := newTestController(t)
	pos := colour.Position{X: -1.05, Y: 0}
	c.SetFromWheel(colour.HSV{H: 180, S: 1, V: 1}, pos)

	s := c.State()
	if s.Hex() != "#00FFFF" {
		t.Errorf("Hex() = %s, want #00FFFF", s.Hex())
	}
	if s.Position != pos {
		t.Errorf("Position = %v, want unclamped %v", s.Position, pos)
	}
	if s.HexText != "#00FFFF" || s.RGBText != "0, 255, 255" {
		t.Errorf("text not synced: %q / %q", s.HexText, s.RGBText)
	}
	if h.Len() != 0 {
		t.Errorf("wheel move committed to history: %v", h.Entries())
	}
}

func TestSetFromRGBText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantErr  bool
		wantHex  string
		wantMode colour.CenterMode
		wantPos  colour.Position
	}{
		{
			name:     "bright colour keeps white centre",
			text:     "0, 0, 255",
			wantHex:  "#0000FF",
			wantMode: colour.CenterWhite,
			wantPos:  colour.Position{X: -0.5, Y: -0.8660254},
		},
		{
			name:     "dark colour switches to black centre",
			text:     "128,0,0",
			wantHex:  "#800000",
			wantMode: colour.CenterBlack,
			wantPos:  colour.Position{X: 128.0 / 255, Y: 0},
		},
		{name: "out of range", text: "300, 0, 0", wantErr: true},
		{name: "too few parts", text: "12, 34", wantErr: true},
		{name: "not a number", text: "a, b, c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, h, _, _ := newTestController(t)
			c.SetFocus(FieldRGB, true)
			err := c.SetFromRGBText(tt.text)
			s := c.State()

			if s.RGBText != tt.text {
				t.Errorf("RGBText = %q, want echoed %q", s.RGBText, tt.text)
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, colour.ErrInvalidRGB) {
					t.Errorf("error = %v, want ErrInvalidRGB", err)
				}
				if s.Hex() != "#FF0000" || h.Len() != 0 {
					t.Errorf("rejected text changed state: %s, history %v", s.Hex(), h.Entries())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Hex() != tt.wantHex {
				t.Errorf("Hex() = %s, want %s", s.Hex(), tt.wantHex)
			}
			if s.HexText != tt.wantHex {
				t.Errorf("HexText = %q, want %q", s.HexText, tt.wantHex)
			}
			if s.Mode != tt.wantMode {
				t.Errorf("Mode = %s, want %s", s.Mode, tt.wantMode)
			}
			if !posApprox(s.Position, tt.wantPos) {
				t.Errorf("Position = %v, want %v", s.Position, tt.wantPos)
			}
			if got := h.Entries(); len(got) != 1 || got[0] != tt.wantHex {
				t.Errorf("history = %v, want [%s]", got, tt.wantHex)
			}
		})
	}
}

func TestSetFromHexText(t *testing.T) {
	c, h, _, _ := newTestController(t)
	c.SetFocus(FieldHex, true)

	if err := c.SetFromHexText("#12"); err == nil {
		t.Error("expected error for partial hex")
	}
	if s := c.State(); s.HexText != "#12" || s.Hex() != "#FF0000" {
		t.Errorf("partial hex: text %q colour %s", s.HexText, s.Hex())
	}

	if err := c.SetFromHexText("#ffffff"); err != nil {
		t.Fatalf("SetFromHexText() error: %v", err)
	}
	s := c.State()
	if s.HexText != "#ffffff" {
		t.Errorf("focused field overwritten: %q", s.HexText)
	}
	if s.RGBText != "255, 255, 255" {
		t.Errorf("RGBText = %q", s.RGBText)
	}
	if s.Mode != colour.CenterWhite || s.Position != (colour.Position{X: 0, Y: 0}) {
		t.Errorf("white: mode %s pos %v", s.Mode, s.Position)
	}
	if h.Len() != 1 {
		t.Errorf("history = %v", h.Entries())
	}

	c.SetFocus(FieldHex, false)
	if got := c.State().HexText; got != "#FFFFFF" {
		t.Errorf("HexText after blur = %q, want canonical", got)
	}
}

func TestSetFromSlider(t *testing.T) {
	c, h, _, _ := newTestController(t)

	c.SetFromSlider(ChannelG, 255)
	if got := c.State().Hex(); got != "#FFFF00" {
		t.Errorf("after G=255: %s", got)
	}
	c.SetFromSlider(ChannelR, -20)
	if got := c.State().Hex(); got != "#00FF00" {
		t.Errorf("after R=-20: %s", got)
	}
	c.SetFromSlider(ChannelB, 999)
	if got := c.State().Hex(); got != "#00FFFF" {
		t.Errorf("after B=999: %s", got)
	}
	c.SetFromSlider(ChannelG, 0)
	s := c.State()
	if s.Hex() != "#0000FF" || s.Mode != colour.CenterWhite {
		t.Errorf("after G=0: %s %s", s.Hex(), s.Mode)
	}
	if h.Len() != 0 {
		t.Errorf("slider committed to history: %v", h.Entries())
	}

	c.Commit()
	if got := h.Entries(); len(got) != 1 || got[0] != "#0000FF" {
		t.Errorf("history after Commit = %v", got)
	}
}

func TestSetFromHSVKeepsMode(t *testing.T) {
	c, h, _, _ := newTestController(t)
	c.ToggleCenterMode()

	c.SetFromHSV(colour.HSV{H: 480, S: 1, V: 1})
	s := c.State()
	if s.Colour.H != 120 {
		t.Errorf("hue = %v, want 120", s.Colour.H)
	}
	if s.Mode != colour.CenterBlack {
		t.Errorf("Mode = %s, want unchanged black", s.Mode)
	}
	if h.Len() != 1 {
		t.Errorf("history = %v", h.Entries())
	}
}

func TestSetFromHex(t *testing.T) {
	c, h, _, _ := newTestController(t)
	if err := c.SetFromHex("nope"); err == nil {
		t.Error("expected error")
	}
	if err := c.SetFromHex("#336699"); err != nil {
		t.Fatal(err)
	}
	if got := c.State().Hex(); got != "#336699" {
		t.Errorf("Hex() = %s", got)
	}
	if h.Len() != 1 {
		t.Errorf("history = %v", h.Entries())
	}
}

func TestToggleCenterModeDoesNotReconvert(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.SetFromWheel(colour.HSV{H: 90, S: 0.5, V: 1}, colour.Position{X: 0, Y: -0.5})
	before := c.State()

	if m := c.ToggleCenterMode(); m != colour.CenterBlack {
		t.Fatalf("ToggleCenterMode() = %s", m)
	}
	after := c.State()
	if after.Colour != before.Colour || after.Position != before.Position {
		t.Errorf("toggle changed colour or position: %+v -> %+v", before, after)
	}
	if m := c.ToggleCenterMode(); m != colour.CenterWhite {
		t.Errorf("second toggle = %s", m)
	}
}

func TestReset(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.SetFromWheel(colour.HSV{H: 200, S: 0.3, V: 0.4}, colour.Position{X: 0.1, Y: 0.2})
	c.ToggleCenterMode()
	c.Reset()

	s := c.State()
	d := DefaultState()
	if s.Colour != d.Colour || s.Position != d.Position || s.Mode != d.Mode {
		t.Errorf("Reset() state = %+v", s)
	}
}

func TestCopiedFlag(t *testing.T) {
	c, _, clip, clock := newTestController(t)

	if got := c.CopyHex(); got != "#FF0000" || clip.content != "#FF0000" {
		t.Errorf("CopyHex() = %q, clipboard %q", got, clip.content)
	}
	if c.State().Copied != CopiedHex {
		t.Errorf("Copied = %s", c.State().Copied)
	}

	if got := c.CopyRGB(); got != "rgb(255, 0, 0)" || clip.content != got {
		t.Errorf("CopyRGB() = %q, clipboard %q", got, clip.content)
	}
	if !clock.timers[0].stopped {
		t.Error("first timer not cancelled on second copy")
	}

	// a stale callback that fires after being stopped must not clear the newer flag
	clock.fire(0)
	if c.State().Copied != CopiedRGB {
		t.Errorf("stale timer cleared flag: %s", c.State().Copied)
	}

	clock.fire(1)
	if c.State().Copied != CopiedNone {
		t.Errorf("Copied after expiry = %s", c.State().Copied)
	}
	if clip.writes != 2 {
		t.Errorf("clipboard writes = %d", clip.writes)
	}
}

func TestPickFromScreen(t *testing.T) {
	tests := []struct {
		name       string
		sampler    sampler.Sampler
		wantErr    error
		wantHex    string
		wantNotice bool
	}{
		{
			name:    "picked",
			sampler: sampler.Func(func(context.Context) (string, error) { return "#0a0B0c", nil }),
			wantHex: "#0A0B0C",
		},
		{
			name:    "cancelled",
			sampler: sampler.Func(func(context.Context) (string, error) { return "", sampler.ErrCancelled }),
			wantHex: "#FF0000",
		},
		{
			name:       "unsupported",
			sampler:    nil,
			wantErr:    sampler.ErrUnsupported,
			wantHex:    "#FF0000",
			wantNotice: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notices []string
			h := history.Load(history.NewMemoryStore(), nil)
			c := New(Options{
				Sampler: tt.sampler,
				History: h,
				Clock:   &fakeClock{},
				Notify:  func(msg string) { notices = append(notices, msg) },
			})

			err := c.PickFromScreen(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got := c.State().Hex(); got != tt.wantHex {
				t.Errorf("Hex() = %s, want %s", got, tt.wantHex)
			}
			if (len(notices) > 0) != tt.wantNotice {
				t.Errorf("notices = %v", notices)
			}
			if tt.name == "picked" && h.Len() != 1 {
				t.Errorf("history = %v", h.Entries())
			}
		})
	}
}

func TestOnChange(t *testing.T) {
	c, _, _, _ := newTestController(t)
	var seen []State
	c.OnChange(func(s State) {
		seen = append(seen, s)
		// listeners run outside the lock
		_ = c.State()
	})

	c.SetFromSlider(ChannelB, 255)
	c.ToggleCenterMode()
	if len(seen) != 2 {
		t.Fatalf("listener calls = %d, want 2", len(seen))
	}
	if seen[0].Hex() != "#FF00FF" || seen[1].Mode != colour.CenterBlack {
		t.Errorf("snapshots = %+v", seen)
	}
}

func posApprox(a, b colour.Position) bool {
	const eps = 1e-6
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx < eps && dx > -eps && dy < eps && dy > -eps
}
