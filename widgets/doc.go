// Package widgets contains dumb render primitives for the demo windows.
//
// Allowed here:
// - stateless string composition with lipgloss (boxes, centred cards, bars)
//
// Not allowed here:
// - key handling, stack transitions, or terminal access
package widgets
