//go:build !cgo

package window

import (
	"context"
	"errors"
	"image"
)

// Next returns the next frame, or nil when there are no more.
type Next func() (*image.RGBA, error)

// Options configures the window.
type Options struct {
	Title string
	Scale int
	FPS   int
}

// Show reports that windows are unavailable without cgo.
func Show(context.Context, int, int, Options, Next) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
