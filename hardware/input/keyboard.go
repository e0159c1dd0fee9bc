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
	"unicode"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// BufferSize is the number of entries in the keyboard buffer.
const BufferSize = 10

// RAM defines the memory functions required to access the keyboard buffer.
// The functions should bypass the memory map.
type RAM interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Inject appends the key code to the keyboard buffer. Returns false if the
// buffer is full, in which case the key is dropped.
func Inject(ram RAM, code uint8) bool {
	n := ram.Peek(memorymap.KeyboardBufferLen)
	if n >= BufferSize {
		return false
	}
	ram.Poke(memorymap.KeyboardBuffer+uint16(n), code)
	ram.Poke(memorymap.KeyboardBufferLen, n+1)
	return true
}

// Pending returns the number of keys waiting in the keyboard buffer.
func Pending(ram RAM) int {
	return int(ram.Peek(memorymap.KeyboardBufferLen))
}

// Key codes for the named keys.
const (
	KeyEnter     = uint8(13)
	KeyBackspace = uint8(20)
	KeyLeft      = uint8(157)
	KeyRight     = uint8(29)
	KeyUp        = uint8(145)
	KeyDown      = uint8(17)
)

// MapKey converts the name of a key to a key code. A name is either one of
// the named keys or a single printable character. Single characters are
// converted to upper case. Any other name is ignored and false is returned.
func MapKey(name string) (uint8, bool) {
	switch name {
	case "Enter", "Return":
		return KeyEnter, true
	case "Backspace":
		return KeyBackspace, true
	case "Left", "ArrowLeft":
		return KeyLeft, true
	case "Right", "ArrowRight":
		return KeyRight, true
	case "Up", "ArrowUp":
		return KeyUp, true
	case "Down", "ArrowDown":
		return KeyDown, true
	}

	r := []rune(name)
	if len(r) != 1 {
		return 0, false
	}

	return mapRune(r[0])
}

// runes outside of the eight bit range have no key code
func mapRune(r rune) (uint8, bool) {
	if r == '\n' {
		return KeyEnter, true
	}
	r = unicode.ToUpper(r)
	if r > 0xff || !unicode.IsPrint(r) {
		return 0, false
	}
	return uint8(r), true
}
