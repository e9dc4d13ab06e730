// Package terminal adapts real terminals to the core.Backend and core.Source
// contracts.
//
// Two backends are provided:
//   - TcellBackend: full-screen rendering and key decoding through tcell.
//     tcell always owns raw mode and the alternate screen while initialised.
//   - ANSIBackend: direct ANSI output on a writer with optional raw mode
//     (x/term) and alternate screen, honouring each Mode flag separately.
//
// Decoded keys are published as bubbletea KeyMsg values so windows share one
// key vocabulary ("esc", "ctrl+c", "q") regardless of backend.
package terminal
