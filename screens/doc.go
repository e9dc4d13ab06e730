// Package screens contains the demo windows driven by the winstack binary.
//
// Allowed here:
// - window implementations that satisfy core.Window (menu, countdown, palette, confirm, notice)
// - window-specific presentation and key handling
//
// Not allowed here:
// - stack ownership or event routing (core.Manager does that)
// - writes into another window; a window that needs a parent back takes
//   ownership of it and returns it through core.Replace
// - terminal setup or low-level drawing primitives
package screens
