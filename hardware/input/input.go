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

package input

import (
	"time"

	"github.com/jetsetilly/gopher64/logger"
)

// Input handles all forms of keyboard input into the machine.
type Input struct {
	ram RAM

	// text typed over time
	Typed *TypedQueue
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(ram RAM) *Input {
	return &Input{
		ram:   ram,
		Typed: NewTypedQueue(),
	}
}

// Press a named key immediately. Returns false if the key has no code or if
// the keyboard buffer is full.
func (inp *Input) Press(name string) bool {
	code, ok := MapKey(name)
	if !ok {
		return false
	}
	return Inject(inp.ram, code)
}

// Type adds text to the typed queue.
func (inp *Input) Type(text string) {
	inp.Typed.Push(text)
}

// Process the typed queue. Keys that are due are injected into the keyboard
// buffer in order. A key that finds the buffer full is dropped, the same as
// an immediate key press would be. Should be called between ticks of the
// machine with the time that has passed since the previous call.
func (inp *Input) Process(elapsed time.Duration) {
	var dropped int
	for _, code := range inp.Typed.Advance(elapsed) {
		if !Inject(inp.ram, code) {
			dropped++
		}
	}

	if dropped > 0 {
		logger.Logf(logger.Allow, "input", "keyboard buffer full: %d typed keys dropped", dropped)
	}
}

// Busy returns true if there is typed input that has not yet been released.
func (inp *Input) Busy() bool {
	return inp.Typed.Len() > 0
}

// Clear all outstanding input. The keyboard buffer itself is unaffected.
func (inp *Input) Clear() {
	inp.Typed.Clear()
}
