//go:build !sdl

package sdl

import (
	"errors"

	"lifefb/internal/framebuffer"
)

// Name is the backend name used with framebuffer.Open.
const Name = "sdl"

func init() {
	framebuffer.Register(Name, func(string, int, int) (framebuffer.Surface, error) {
		return nil, framebuffer.NewSurfaceError(Name, "open",
			errors.New("the sdl backend requires the sdl build tag and SDL2 development libraries; rebuild with `-tags sdl`"))
	})
}
