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

package terminal

import (
	"github.com/jetsetilly/gopher64/terminal/easyterm"
)

// translate the bytes read from the terminal into a key name suitable for
// the hardware.Machine.PressKey() function. The number of bytes consumed is
// also returned. A consumed value of zero means that more bytes are required
// to make sense of the input.
func translate(b []byte) (string, int) {
	if len(b) == 0 {
		return "", 0
	}

	switch b[0] {
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		return "Enter", 1
	case easyterm.KeyBackspace, easyterm.KeyDelete:
		return "Backspace", 1
	case easyterm.KeyEsc:
		if len(b) < 3 {
			return "", 0
		}
		if b[1] != easyterm.EscCursor {
			return "", 2
		}
		switch b[2] {
		case easyterm.CursorUp:
			return "ArrowUp", 3
		case easyterm.CursorDown:
			return "ArrowDown", 3
		case easyterm.CursorForward:
			return "ArrowRight", 3
		case easyterm.CursorBackward:
			return "ArrowLeft", 3
		}
		return "", 3
	}

	if b[0] < 0x20 || b[0] >= 0x7f {
		return "", 1
	}

	return string(b[:1]), 1
}
