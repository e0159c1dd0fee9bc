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

package memory

import (
	"fmt"
	"io"
)

// Dump writes a hex listing of RAM between origin and memtop inclusive. The
// listing is aligned to sixteen byte rows. Values are read with Peek() so the
// listing is unaffected by the bank-select register.
func (mem *Memory) Dump(w io.Writer, origin uint16, memtop uint16) {
	if memtop < origin {
		origin, memtop = memtop, origin
	}

	io.WriteString(w, "       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	io.WriteString(w, "     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	for row := int(origin) &^ 0x0f; row <= int(memtop); row += 16 {
		fmt.Fprintf(w, "%04x |", row)
		for col := 0; col < 16; col++ {
			a := row + col
			if a < int(origin) || a > int(memtop) {
				io.WriteString(w, "   ")
			} else {
				fmt.Fprintf(w, " %02x", mem.ram[a])
			}
		}
		io.WriteString(w, "\n")
	}
}
