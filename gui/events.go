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

// KeyMod identifies the modifier key held down at the time of a keyboard
// event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Event represents all the different types of events that can occur in the
// GUI.
type Event interface{}

// EventQuit is sent when the window is closed or the user otherwise asks for
// the application to end.
type EventQuit struct{}

// EventKeyboard is sent for keys that have a name rather than a character.
// For example, "Return" or "F1".
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}

// EventText is sent for keys that produce text. The text is the character (or
// characters) produced by the key, taking into account the modifier keys.
type EventText struct {
	Text string
}
