// Package sampler picks a colour from outside the wheel: from the screen via a
// platform picker tool, or from a pixel of an image file.
package sampler

import (
	"context"
	"errors"
)

var (
	// ErrUnsupported means no sampling capability is available on this system.
	ErrUnsupported = errors.New("screen colour sampling is not supported on this system")

	// ErrCancelled means the user dismissed the sampler without picking.
	ErrCancelled = errors.New("colour sampling cancelled")
)

// Sampler returns a colour as a hex string.
type Sampler interface {
	Sample(ctx context.Context) (string, error)
}

// Func adapts a function to the Sampler interface.
type Func func(ctx context.Context) (string, error)

// Sample implements Sampler.
func (f Func) Sample(ctx context.Context) (string, error) {
	return f(ctx)
}

// Unsupported is a Sampler for platforms with no capability.
var Unsupported Sampler = Func(func(context.Context) (string, error) {
	return "", ErrUnsupported
})
