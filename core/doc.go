// Package core contains the window stack coordinator: the contracts windows
// implement, the event channel and tick source that feed the loop, and the
// dispatcher that applies window results to the stack.
//
// Allowed here:
// - window, event and backend contracts
// - stack mutation, event routing and render-target lifecycle
// - key registries used for coordinator-level policy (escape handling)
//
// Not allowed here:
// - concrete window implementations or widget rendering
// - terminal escape sequences, input byte decoding, or a specific backend
package core
