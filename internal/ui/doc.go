// Package ui formats what the user sees besides the cells: the status line,
// the end-of-run population report, the pattern table and, in ebiten builds,
// the window HUD.
package ui
