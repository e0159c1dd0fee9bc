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

// Package input coordinates all the different types of input into the
// machine. The machine has no keyboard matrix. Instead, key codes are written
// directly into the keyboard buffer used by the KERNAL. The buffer is ten
// bytes long and keys that arrive when the buffer is full are dropped.
//
// The types of input handled by the package include:
//
// 1) Immediate key presses from the host (see MapKey() and Inject())
// 2) Typed text, which is a queue of key codes with a delay between each key
// (see TypedQueue)
//
// In both cases a key that finds the keyboard buffer full is dropped.
//
// The package owns no timers. The host is responsible for telling the
// TypedQueue how much time has passed.
package input
