// Package framebuffer owns a raw pixel buffer on top of a native surface.
//
// A [Framebuffer] wraps a [Surface] opened by one of the registered
// backends and provides:
//
//   - pixel writes into a row-major buffer of 0x00RRGGBB [Color] values
//   - frame presentation, degrading to "stopped" when the blit fails
//   - non-blocking event draining with keycode → listener dispatch
//   - a run flag shared by the event loop and the listeners
//
// Keycodes are Windows virtual-key codes ([KeyEscape], [KeyEnter], ...).
// Backends translate their native key identifiers into that space; the
// framebuffer passes them through verbatim.
//
// # Thread Safety
//
// A Framebuffer is not safe for concurrent use. Listeners run synchronously
// on the goroutine that calls [Framebuffer.PollAndDispatch] and may call back
// into the framebuffer.
package framebuffer
