// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package gui

import (
	"github.com/jetsetilly/gopher64/control"
)

// Operation is the type of operation that an event is bound to.
type Operation int

// List of valid operations.
const (
	OpNone Operation = iota
	OpKeys
	OpControl
	OpPaste
	OpSaveState
	OpScreenshot
	OpQuit
)

// Binding is the result of the Bind() function.
type Binding struct {
	Op Operation

	// the keys to press when Op is OpKeys. each entry is a name suitable for
	// the hardware.Machine.PressKey() function
	Keys []string

	// the action to apply when Op is OpControl
	Action control.Action
}

// function keys and the control actions they are bound to
var functionKeys = map[string]control.Action{
	"F1":     control.Reset,
	"F2":     control.New,
	"F3":     control.List,
	"F4":     control.Run,
	"F5":     control.Stop,
	"Escape": control.Stop,
}

// keyboard keys with a name that are passed to the machine. the name is
// changed to the name expected by the machine
var namedKeys = map[string]string{
	"Return":       "Enter",
	"Keypad Enter": "Enter",
	"Backspace":    "Backspace",
	"Left":         "Left",
	"Right":        "Right",
	"Up":           "Up",
	"Down":         "Down",
}

// Bind an event to an operation. Only key down events are bound.
func Bind(ev Event) Binding {
	switch ev := ev.(type) {
	case EventQuit:
		return Binding{Op: OpQuit}

	case EventText:
		b := Binding{Op: OpKeys}
		for _, r := range ev.Text {
			b.Keys = append(b.Keys, string(r))
		}
		if len(b.Keys) == 0 {
			return Binding{}
		}
		return b

	case EventKeyboard:
		if !ev.Down {
			return Binding{}
		}

		if a, ok := functionKeys[ev.Key]; ok {
			return Binding{Op: OpControl, Action: a}
		}

		switch ev.Key {
		case "F9":
			return Binding{Op: OpPaste}
		case "F10":
			return Binding{Op: OpSaveState}
		case "F12":
			return Binding{Op: OpScreenshot}
		}

		if k, ok := namedKeys[ev.Key]; ok {
			return Binding{Op: OpKeys, Keys: []string{k}}
		}
	}

	return Binding{}
}
