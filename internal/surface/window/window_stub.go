//go:build !ebiten

package window

import (
	"errors"

	"lifefb/internal/framebuffer"
)

// Name is the backend name used with framebuffer.Open.
const Name = "window"

func init() {
	framebuffer.Register(Name, func(string, int, int) (framebuffer.Surface, error) {
		return nil, framebuffer.NewSurfaceError(Name, "open",
			errors.New("the window backend requires the ebiten build tag; rebuild with `-tags ebiten`"))
	})
}
