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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory
// for the value of the bank-select register. Useful for reference.
func Summary(bank uint8) string {
	s := strings.Builder{}

	// look up area of first address in memory
	current := MapAddress(0, bank)
	start := 0

	// the loop counter is an int because Memtop is at the edge of uint16
	for a := 1; a <= int(Memtop); a++ {
		area := MapAddress(uint16(a), bank)

		// if the area has changed print out the summary line
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, a-1, current))
			current = area
			start = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, Memtop, current))

	return s.String()
}
