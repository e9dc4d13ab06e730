package screens

import "github.com/jask/winstack/core"

const (
	scopeMenu      = "screen:menu"
	scopeCountdown = "screen:countdown"
	scopeCommand   = "screen:command"
	scopeConfirm   = "screen:confirm"
)

const (
	actionOpenCountdown = "open.countdown"
	actionOpenPalette   = "open.palette"
	actionQuit          = "quit"
	actionPause         = "pause"
	actionReset         = "reset"
	actionYes           = "yes"
	actionNo            = "no"
	actionDismiss       = "dismiss"
	actionUp            = "up"
	actionDown          = "down"
	actionRun           = "run"
)

// Keys holds every demo window binding. Footers are rendered from the same
// registry that routes the keys, so hints cannot drift from behaviour.
var Keys = core.NewKeyRegistry([]core.KeyBinding{
	{Keys: []string{"c"}, Action: actionOpenCountdown, Description: "countdown", Scopes: []string{scopeMenu}},
	{Keys: []string{"p", ":"}, Action: actionOpenPalette, Description: "commands", Scopes: []string{scopeMenu}},
	{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeMenu}},
	{Keys: []string{"space"}, Action: actionPause, Description: "pause", Scopes: []string{scopeCountdown}},
	{Keys: []string{"r"}, Action: actionReset, Description: "reset", Scopes: []string{scopeCountdown}},
	{Keys: []string{"y", "enter"}, Action: actionYes, Description: "yes", Scopes: []string{scopeConfirm}},
	{Keys: []string{"n"}, Action: actionNo, Description: "no", Scopes: []string{scopeConfirm}},
	{Keys: []string{"esc"}, Action: actionDismiss, Description: "close", Scopes: []string{scopeConfirm, scopeCommand}},
	{Keys: []string{"up", "ctrl+p"}, Action: actionUp, Description: "up", Scopes: []string{scopeCommand}},
	{Keys: []string{"down", "ctrl+n"}, Action: actionDown, Description: "down", Scopes: []string{scopeCommand}},
	{Keys: []string{"enter"}, Action: actionRun, Description: "run", Scopes: []string{scopeCommand}},
})

func pressed(input any, action, scope string) bool {
	return Keys.IsAction(input, action, scope)
}
