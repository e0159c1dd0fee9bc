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

package video

import (
	"strings"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// screen codes in the range 0x40 to 0x7f are graphics characters in the
// default character set
const graphicsChar = '+'

// ScreenCodeToASCII converts a screen code to the nearest ASCII character.
// Reversed characters are treated as their normal counterpart.
func ScreenCodeToASCII(code uint8) byte {
	code &= 0x7f
	switch {
	case code == 0x1c:
		// pound sign
		return '#'
	case code == 0x1e:
		// up arrow
		return '^'
	case code == 0x1f:
		// left arrow
		return '_'
	case code < 0x20:
		return code + 0x40
	case code < 0x40:
		return code
	}
	return graphicsChar
}

// ScreenText returns the contents of the screen as text. Each row is
// terminated by a newline and trailing spaces are removed.
func ScreenText(bus Bus) string {
	var s strings.Builder
	row := make([]byte, Columns)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			row[c] = ScreenCodeToASCII(bus.Peek(memorymap.ScreenRAM + uint16(r*Columns+c)))
		}
		s.WriteString(strings.TrimRight(string(row), " "))
		s.WriteByte('\n')
	}
	return s.String()
}
