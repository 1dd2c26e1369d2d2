package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.GameAction
}

var keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{r: 'k', a: event.ActionRotateCW},
	{r: 'K', a: event.ActionRotateCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{k: tcell.KeyEscape, a: event.ActionQuit},
	{k: tcell.KeyCtrlC, a: event.ActionQuit},
	{r: 'q', a: event.ActionQuit},
	{r: 'Q', a: event.ActionQuit},
}

const modifierMask = tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta

// keyAction maps a key press to a game action. Unbound keys pressed without
// any modifier, Shift included, become ActionStart. Bound letters keep
// working with Shift since capitals are bound too.
func keyAction(ev *tcell.EventKey) event.GameAction {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range keybindings {
		if bind.k != 0 && bind.k == k {
			return bind.a
		}
		if bind.r != 0 && k == tcell.KeyRune && bind.r == r {
			if ev.Modifiers()&modifierMask != 0 {
				return event.ActionUnknown
			}
			return bind.a
		}
	}

	if ev.Modifiers() != tcell.ModNone {
		return event.ActionUnknown
	}

	return event.ActionStart
}

// stateAction narrows an action to what the given state accepts. In the menu
// any key except quit starts a session.
func stateAction(s event.State, a event.GameAction) event.GameAction {
	switch s {
	case event.StateMenu:
		if a == event.ActionUnknown || a == event.ActionQuit {
			return a
		}
		return event.ActionStart
	case event.StatePlaying:
		if a == event.ActionStart {
			return event.ActionUnknown
		}
	}

	return a
}
