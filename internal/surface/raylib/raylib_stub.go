//go:build !raylib

package raylib

import (
	"errors"

	"lifefb/internal/framebuffer"
)

// Name is the backend name used with framebuffer.Open.
const Name = "raylib"

func init() {
	framebuffer.Register(Name, func(string, int, int) (framebuffer.Surface, error) {
		return nil, framebuffer.NewSurfaceError(Name, "open",
			errors.New("the raylib backend requires the raylib build tag; rebuild with `-tags raylib`"))
	})
}
