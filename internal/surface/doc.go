// Package surface groups the native surfaces a framebuffer can open.
//
// Each subpackage registers an opener with [framebuffer.Register] from its
// init function; import it for side effects to make the backend available:
//
//	import _ "lifefb/internal/surface/term"
//
// Backends that need cgo or a platform toolkit hide behind a build tag and
// register a stub reporting the missing tag otherwise:
//
//   - headless: in-memory, for tests and batch runs
//   - term: tcell terminal, two pixels per character cell
//   - tea (package bubble): bubbletea program, half-block view styled with lipgloss
//   - window: ebiten window (tag ebiten)
//   - sdl: SDL2 window surface (tag sdl)
//   - raylib: raylib window (tag raylib)
package surface
