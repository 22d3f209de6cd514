package app

import (
	fb "lifefb/internal/framebuffer"
	"lifefb/internal/sims/life"
)

// bindKeys installs the interactive controls. Listeners capture the loop and
// run on the loop's goroutine during PollAndDispatch.
func (l *Loop) bindKeys() {
	l.fb.RegisterListener(fb.KeyEscape, l.fb.Stop)
	l.fb.RegisterListener(fb.KeySpace, func() { l.paused = !l.paused })
	l.fb.RegisterListener(fb.KeyEnter, func() { l.cursor.ToggleUnder(l.grid) })

	for key, dir := range map[fb.Keycode]life.Direction{
		fb.KeyArrowUp:    life.Up,
		fb.KeyArrowDown:  life.Down,
		fb.KeyArrowLeft:  life.Left,
		fb.KeyArrowRight: life.Right,
	} {
		l.fb.RegisterListener(key, func() { l.cursor.Move(dir) })
	}

	l.fb.RegisterListener(fb.KeyLetter('N'), func() { l.stepOnce = true })
	l.fb.RegisterListener(fb.KeyLetter('R'), func() { l.reseed(l.gridCfg.Seed) })
	l.fb.RegisterListener(fb.KeyLetter('S'), func() { l.reseed(l.clock().UnixNano()) })
	l.fb.RegisterListener(fb.KeyLetter('C'), l.clear)
	l.fb.RegisterListener(fb.KeyLetter('G'), l.renderer.ToggleGradient)
	l.fb.RegisterListener(fb.KeyLetter('B'), l.renderer.ToggleBlend)
	l.fb.RegisterListener(fb.KeyPlus, func() { l.scaleInterval(0.5) })
	l.fb.RegisterListener(fb.KeyMinus, func() { l.scaleInterval(2) })
}
