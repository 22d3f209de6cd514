//go:build raylib

// Package raylib presents the framebuffer as a streaming texture in a raylib
// window.
package raylib

import (
	"errors"
	"image/color"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lifefb/internal/framebuffer"
)

// Name is the backend name used with framebuffer.Open.
const Name = "raylib"

const statusFontSize = 10

var errNotReady = errors.New("window failed to initialise")

// Surface uploads each frame to a texture and draws it.
type Surface struct {
	width, height int

	tex    rl.Texture2D
	rgba   []color.RGBA
	status string
}

func init() {
	runtime.LockOSThread()
	framebuffer.Register(Name, Open)
}

// Open creates the window and the texture frames are streamed into.
func Open(title string, width, height int) (framebuffer.Surface, error) {
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, errNotReady
	}
	rl.SetExitKey(rl.KeyNull)

	img := rl.GenImageColor(width, height, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &Surface{
		width:  width,
		height: height,
		tex:    tex,
		rgba:   make([]color.RGBA, width*height),
	}, nil
}

// PollEvents drains raylib's key queue. Raylib gathers input in EndDrawing,
// so keys pressed during a frame arrive on the following poll.
func (s *Surface) PollEvents(dst []framebuffer.Event) []framebuffer.Event {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if code, ok := translateKey(k); ok {
			dst = append(dst, framebuffer.Event{Kind: framebuffer.KeyDown, Key: code})
		}
	}
	if rl.WindowShouldClose() {
		dst = append(dst, framebuffer.Event{Kind: framebuffer.Quit})
	}
	return dst
}

func translateKey(k int32) (framebuffer.Keycode, bool) {
	switch {
	case k >= rl.KeyA && k <= rl.KeyZ:
		return framebuffer.KeyLetter(rune(k)), true
	case k >= rl.KeyZero && k <= rl.KeyNine:
		return framebuffer.KeyDigit(int(k - rl.KeyZero)), true
	}
	switch k {
	case rl.KeyEscape:
		return framebuffer.KeyEscape, true
	case rl.KeyEnter, rl.KeyKpEnter:
		return framebuffer.KeyEnter, true
	case rl.KeySpace:
		return framebuffer.KeySpace, true
	case rl.KeyLeft:
		return framebuffer.KeyArrowLeft, true
	case rl.KeyRight:
		return framebuffer.KeyArrowRight, true
	case rl.KeyUp:
		return framebuffer.KeyArrowUp, true
	case rl.KeyDown:
		return framebuffer.KeyArrowDown, true
	case rl.KeyEqual, rl.KeyKpAdd:
		return framebuffer.KeyPlus, true
	case rl.KeyMinus, rl.KeyKpSubtract:
		return framebuffer.KeyMinus, true
	case rl.KeyBackspace:
		return framebuffer.KeyBackspace, true
	case rl.KeyTab:
		return framebuffer.KeyTab, true
	}
	return 0, false
}

// Present uploads pixels and draws the texture with the status line on top.
func (s *Surface) Present(pixels []framebuffer.Color) error {
	for i, c := range pixels {
		r, g, b := c.RGB()
		s.rgba[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	rl.UpdateTexture(s.tex, s.rgba)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(s.tex, 0, 0, rl.White)
	if s.status != "" {
		rl.DrawRectangle(0, 0, int32(s.width), statusFontSize+4, color.RGBA{A: 0xa0})
		rl.DrawText(s.status, 2, 2, statusFontSize, rl.RayWhite)
	}
	rl.EndDrawing()
	return nil
}

// SetStatus sets the overlay text drawn by Present.
func (s *Surface) SetStatus(text string) { s.status = text }

// Close releases the texture and the window.
func (s *Surface) Close() error {
	rl.UnloadTexture(s.tex)
	rl.CloseWindow()
	return nil
}
