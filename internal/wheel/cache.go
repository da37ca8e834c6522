package wheel

import (
	"image"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormine/internal/colour"
)

// Key identifies one rendered wheel buffer.
type Key struct {
	Size  int
	Mode  colour.CenterMode
	Scale int
	// Dense buffers keep all size*scale pixels instead of downsampling.
	Dense bool
}

// Cache holds the most recently rendered wheel and rebuilds it only when the
// key changes or Invalidate is called.
type Cache struct {
	mu       sync.Mutex
	key      Key
	buf      *image.RGBA
	rebuilds int
	logger   hclog.Logger
}

// NewCache creates an empty cache. A nil logger discards output.
func NewCache(logger hclog.Logger) *Cache {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Cache{logger: logger}
}

// Get returns the wheel for size and mode at scale 1.
func (c *Cache) Get(size int, mode colour.CenterMode) *image.RGBA {
	return c.GetScaled(size, mode, 1)
}

// GetScaled returns the wheel rendered at size*scale and downsampled to size.
// The returned image is shared; callers must not modify it.
func (c *Cache) GetScaled(size int, mode colour.CenterMode, scale int) *image.RGBA {
	return c.get(Key{Size: size, Mode: mode, Scale: max(scale, 1)})
}

// GetDense returns the wheel for logical side size rendered at size*scale
// device pixels. The returned image is shared; callers must not modify it.
func (c *Cache) GetDense(size int, mode colour.CenterMode, scale int) *image.RGBA {
	scale = max(scale, 1)
	return c.get(Key{Size: size, Mode: mode, Scale: scale, Dense: scale > 1})
}

func (c *Cache) get(key Key) *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buf != nil && c.key == key {
		return c.buf
	}

	c.logger.Debug("rendering wheel", "size", key.Size, "mode", key.Mode.String(), "scale", key.Scale, "dense", key.Dense)
	switch {
	case key.Scale == 1:
		c.buf = Render(key.Size, key.Mode)
	case key.Dense:
		c.buf = RenderDense(key.Size, key.Mode, key.Scale)
	default:
		c.buf = RenderScaled(key.Size, key.Mode, key.Scale)
	}
	c.key = key
	c.rebuilds++
	return c.buf
}

// Invalidate drops the cached buffer so the next Get rebuilds it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = nil
}

// Rebuilds returns how many times the wheel has been rendered.
func (c *Cache) Rebuilds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rebuilds
}

// Compose returns a fresh copy of the cached wheel with the marker drawn at pos.
func (c *Cache) Compose(size int, mode colour.CenterMode, scale int, pos colour.Position) *image.RGBA {
	return DrawMarker(c.GetScaled(size, mode, scale), pos)
}

// ComposeDense is Compose for a dense buffer; the marker is scaled to match.
func (c *Cache) ComposeDense(size int, mode colour.CenterMode, scale int, pos colour.Position) *image.RGBA {
	scale = max(scale, 1)
	return DrawMarkerScaled(c.GetDense(size, mode, scale), pos, scale)
}
