//go:build raylib

package raylib

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lifefb/internal/framebuffer"
)

func TestTranslateKey(t *testing.T) {
	cases := map[int32]framebuffer.Keycode{
		rl.KeyEscape: framebuffer.KeyEscape,
		rl.KeyEnter:  framebuffer.KeyEnter,
		rl.KeySpace:  framebuffer.KeySpace,
		rl.KeyDown:   framebuffer.KeyArrowDown,
		rl.KeyG:      framebuffer.KeyLetter('g'),
		rl.KeyThree:  framebuffer.KeyDigit(3),
		rl.KeyEqual:  framebuffer.KeyPlus,
		rl.KeyKpAdd:  framebuffer.KeyPlus,
	}
	for in, want := range cases {
		got, ok := translateKey(in)
		if !ok || got != want {
			t.Fatalf("translateKey(%d) = %v,%v expected %v", in, got, ok, want)
		}
	}
	if _, ok := translateKey(rl.KeyF5); ok {
		t.Fatal("F5 should not map to a keycode")
	}
}
