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

// Package control defines the actions a host can apply to the machine on
// behalf of the user. The SDL host binds them to function keys and the
// terminal host binds them to commands.
package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/basic"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/logger"
)

// Action is a single host control.
type Action int

// List of valid Action values.
const (
	Reset Action = iota
	New
	List
	Run
	Stop
)

var names = []string{"RESET", "NEW", "LIST", "RUN", "STOP"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(names) {
		return fmt.Sprintf("unknown action (%d)", int(a))
	}
	return names[a]
}

// Actions returns all valid actions in order.
func Actions() []Action {
	return []Action{Reset, New, List, Run, Stop}
}

// ErrUnknownAction is returned by Parse() when the name is not recognised.
var ErrUnknownAction = errors.New("unknown action")

// Parse converts an action name to an Action. The name is not case sensitive.
func Parse(name string) (Action, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Action(i), nil
		}
	}
	return Reset, fmt.Errorf("control: %w: %s", ErrUnknownAction, name)
}

// Apply the action to the machine. NEW, LIST and RUN are typed into the
// machine as though the user entered them.
func Apply(m *hardware.Machine, a Action) {
	switch a {
	case Reset:
		m.Reset()
	case New:
		m.Type("NEW\n")
	case List:
		m.Type("LIST\n")
	case Run:
		m.Type("RUN\n")
	case Stop:
		m.Break()
	default:
		logger.Logf(logger.Allow, "control", "ignoring %s", a)
	}
}

// Paste text into the machine. If the text looks like BASIC then it is
// entered as a program (or a direct command) otherwise it is typed as is.
// Returns true if the text was entered as BASIC.
func Paste(m *hardware.Machine, text string) bool {
	if basic.IsRunnable(text) {
		basic.Enter(m.Input.Typed, text)
		return true
	}
	m.Type(text)
	return false
}
