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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/test"
)

const defaultMemMap = `0000 -> 9fff	RAM
a000 -> bfff	BASIC
c000 -> cfff	RAM
d000 -> d3ff	VIC
d400 -> d7ff	SID
d800 -> dbff	Colour RAM
dc00 -> dcff	CIA1
dd00 -> ddff	CIA2
de00 -> dfff	Char ROM
e000 -> ffff	KERNAL
`

const allRAMMemMap = `0000 -> ffff	RAM
`

const kernalOnlyMemMap = `0000 -> dfff	RAM
e000 -> ffff	KERNAL
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(0x07), defaultMemMap)
	test.ExpectEquality(t, memorymap.Summary(0x00), allRAMMemMap)
	test.ExpectEquality(t, memorymap.Summary(0x02), kernalOnlyMemMap)

	// bits outside of the mask make no difference
	test.ExpectEquality(t, memorymap.Summary(0xff), defaultMemMap)
}

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0xd012, 0x07), memorymap.VIC)
	test.ExpectEquality(t, memorymap.MapAddress(0xd012, 0x03), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xa000, 0x06), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xbfff, 0x01), memorymap.BASIC)
	test.ExpectEquality(t, memorymap.MapAddress(0xffff, 0x02), memorymap.KERNAL)
	test.ExpectEquality(t, memorymap.MapAddress(0xde00, 0x04), memorymap.CharROM)
	test.ExpectSuccess(t, memorymap.IsArea(0xd800, 0x07, memorymap.ColourRAM))
	test.ExpectFailure(t, memorymap.IsArea(0xd800, 0x03, memorymap.ColourRAM))
}
