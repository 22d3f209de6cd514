package framebuffer

import "fmt"

// Keycode is a raw virtual-key code as delivered by a surface.
type Keycode uint32

// Virtual-key codes recognised by the bundled backends.
const (
	KeyBackspace  Keycode = 0x08
	KeyTab        Keycode = 0x09
	KeyEnter      Keycode = 0x0D
	KeyEscape     Keycode = 0x1B
	KeySpace      Keycode = 0x20
	KeyArrowLeft  Keycode = 0x25
	KeyArrowUp    Keycode = 0x26
	KeyArrowRight Keycode = 0x27
	KeyArrowDown  Keycode = 0x28
	KeyPlus       Keycode = 0xBB
	KeyMinus      Keycode = 0xBD
)

// KeyDigit returns the code of the top-row digit d (0-9).
func KeyDigit(d int) Keycode { return Keycode('0' + d) }

// KeyLetter returns the code of a letter key. Lowercase input is folded.
func KeyLetter(r rune) Keycode {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return Keycode(r)
}

// KeyFromRune maps a printable character to the key that produces it on a
// US layout, or false when no code is assigned.
func KeyFromRune(r rune) (Keycode, bool) {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return KeyLetter(r), true
	case r >= '0' && r <= '9':
		return Keycode(r), true
	case r == ' ':
		return KeySpace, true
	case r == '+', r == '=':
		return KeyPlus, true
	case r == '-', r == '_':
		return KeyMinus, true
	}
	return 0, false
}

func (k Keycode) String() string {
	switch k {
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowUp:
		return "Up"
	case KeyArrowRight:
		return "Right"
	case KeyArrowDown:
		return "Down"
	case KeyPlus:
		return "+"
	case KeyMinus:
		return "-"
	}
	if (k >= '0' && k <= '9') || (k >= 'A' && k <= 'Z') {
		return string(rune(k))
	}
	return fmt.Sprintf("0x%02X", uint32(k))
}
