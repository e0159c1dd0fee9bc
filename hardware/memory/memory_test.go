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

package memory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/test"
)

// ROM images filled with a recognisable value
func testROMs() memory.ROMs {
	roms := memory.ROMs{
		BASIC:  make([]uint8, memory.BASICSize),
		KERNAL: make([]uint8, memory.KERNALSize),
		Char:   make([]uint8, memory.CharSize),
	}
	for i := range roms.BASIC {
		roms.BASIC[i] = 0xba
	}
	for i := range roms.KERNAL {
		roms.KERNAL[i] = 0xee
	}
	for i := range roms.Char {
		roms.Char[i] = uint8(i >> 4)
	}
	return roms
}

type clock int

func (c clock) Clocks() int {
	return int(c)
}

func TestROMSize(t *testing.T) {
	roms := testROMs()
	roms.KERNAL = roms.KERNAL[:100]
	_, err := memory.NewMemory(roms)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrROMSize))

	_, err = memory.NewMemory(testROMs())
	test.ExpectSuccess(t, err)
}

func TestBanking(t *testing.T) {
	mem, err := memory.NewMemory(testROMs())
	test.DemandSuccess(t, err)

	// all ROMs and I/O switched in
	mem.Write(0x0001, 0x07)
	test.ExpectEquality(t, mem.Read(0xa000), 0xba)
	test.ExpectEquality(t, mem.Read(0xe000), 0xee)

	// writes to ROM are discarded but RAM underneath is unchanged
	mem.Write(0xa000, 0x11)
	test.ExpectEquality(t, mem.Read(0xa000), 0xba)
	test.ExpectEquality(t, mem.Peek(0xa000), 0x00)

	// BASIC switched out
	mem.Write(0x0001, 0x06)
	test.ExpectEquality(t, mem.Read(0xa000), 0x00)
	mem.Write(0xa000, 0x11)
	test.ExpectEquality(t, mem.Read(0xa000), 0x11)
	test.ExpectEquality(t, mem.Read(0xe000), 0xee)

	// KERNAL switched out
	mem.Write(0x0001, 0x05)
	test.ExpectEquality(t, mem.Read(0xfffc), 0x00)
	mem.Write(0xfffc, 0x22)
	test.ExpectEquality(t, mem.Read(0xfffc), 0x22)

	// bits outside of the bank mask are ignored
	mem.Write(0x0001, 0xf8)
	test.ExpectEquality(t, mem.Bank(), 0x00)
}

func TestBankingAllBanks(t *testing.T) {
	mem, err := memory.NewMemory(testROMs())
	test.DemandSuccess(t, err)

	for bank := uint8(0); bank < 8; bank++ {
		mem.Write(memorymap.BankSelect, bank)
		test.DemandEquality(t, mem.Bank(), bank)

		for a := 0; a < 0x10000; a++ {
			address := uint16(a)
			area := memorymap.MapAddress(address, bank)

			// every address is backed by exactly one area
			n := 0
			for ar := memorymap.RAM; ar <= memorymap.CharROM; ar++ {
				if memorymap.IsArea(address, bank, ar) {
					n++
				}
			}
			test.DemandEquality(t, n, 1, address, bank)

			inBASIC := address >= memorymap.OriginBASIC && address <= memorymap.MemtopBASIC
			inIO := address >= memorymap.OriginIO && address <= memorymap.MemtopIO
			inKERNAL := address >= memorymap.OriginKERNAL

			switch area {
			case memorymap.BASIC:
				test.DemandSuccess(t, inBASIC && bank&memorymap.BankBASIC != 0, address, bank)
			case memorymap.KERNAL:
				test.DemandSuccess(t, inKERNAL && bank&memorymap.BankKERNAL != 0, address, bank)
			case memorymap.RAM:
				test.DemandFailure(t, inBASIC && bank&memorymap.BankBASIC != 0, address, bank)
				test.DemandFailure(t, inKERNAL && bank&memorymap.BankKERNAL != 0, address, bank)
				test.DemandFailure(t, inIO && bank&memorymap.BankIO != 0, address, bank)
			default:
				test.DemandSuccess(t, inIO && bank&memorymap.BankIO != 0, address, bank)
			}

			// writes to a ROM shadowed address change nothing
			switch area {
			case memorymap.BASIC, memorymap.KERNAL, memorymap.CharROM:
				before := mem.Read(address)
				ram := mem.Peek(address)
				mem.Write(address, ^before)
				test.DemandEquality(t, mem.Read(address), before, address, bank)
				test.DemandEquality(t, mem.Peek(address), ram, address, bank)
			}
		}
	}
}

func TestIOWindow(t *testing.T) {
	mem, err := memory.NewMemory(testROMs())
	test.DemandSuccess(t, err)
	mem.Write(0x0001, 0x07)

	// colour RAM is four bits wide
	mem.Write(0xd800, 0xff)
	test.ExpectEquality(t, mem.Read(0xd800), 0x0f)
	test.ExpectEquality(t, mem.Peek(0xd800), 0x0f)

	// SID and CIA registers are stored as written
	mem.Write(0xd418, 0x8f)
	test.ExpectEquality(t, mem.Read(0xd418), 0x8f)
	mem.Write(0xdc0d, 0x81)
	test.ExpectEquality(t, mem.Read(0xdc0d), 0x81)
	mem.Write(0xdd00, 0x03)
	test.ExpectEquality(t, mem.Read(0xdd00), 0x03)

	// character ROM is visible in the top of the I/O window and cannot be
	// written to
	test.ExpectEquality(t, mem.Read(0xde00), uint8(0x0e00>>4))
	mem.Write(0xde00, 0x55)
	test.ExpectEquality(t, mem.Read(0xde00), uint8(0x0e00>>4))
	test.ExpectEquality(t, mem.Peek(0xde00), 0x00)

	// I/O switched out
	mem.Write(0x0001, 0x03)
	mem.Write(0xd800, 0xff)
	test.ExpectEquality(t, mem.Read(0xd800), 0xff)
	test.ExpectEquality(t, mem.Read(0xde00), 0x00)
}

func TestInterruptStatus(t *testing.T) {
	mem, err := memory.NewMemory(testROMs())
	test.DemandSuccess(t, err)
	mem.Write(0x0001, 0x07)

	// writing a bit clears that bit
	mem.Poke(0xd019, 0x81)
	mem.Write(0xd019, 0x01)
	test.ExpectEquality(t, mem.Read(0xd019), 0x80)

	// writing zero changes nothing
	mem.Poke(0xd019, 0x81)
	mem.Write(0xd019, 0x00)
	test.ExpectEquality(t, mem.Read(0xd019), 0x81)

	// clearing every bit
	mem.Write(0xd019, 0xff)
	test.ExpectEquality(t, mem.Read(0xd019), 0x00)

	// other VIC registers are stored as written
	mem.Write(0xd020, 0x81)
	test.ExpectEquality(t, mem.Read(0xd020), 0x81)
}

func TestRaster(t *testing.T) {
	mem, err := memory.NewMemory(testROMs())
	test.DemandSuccess(t, err)
	mem.Write(0x0001, 0x07)

	// no clock source
	test.ExpectEquality(t, mem.Read(0xd012), 0x00)

	mem.Plumb(clock(64 * 10))
	test.ExpectEquality(t, mem.Read(0xd012), 10)

	// raster line wraps at the number of lines in a frame
	mem.Plumb(clock(64 * 313))
	test.ExpectEquality(t, mem.Read(0xd012), 0)

	// raster line is truncated to eight bits
	mem.Plumb(clock(64 * 300))
	test.ExpectEquality(t, mem.Read(0xd012), uint8(300&0xff))

	// a negative cycle balance still results in a valid line
	mem.Plumb(clock(-64))
	test.ExpectEquality(t, mem.Raster(), 312)
}

func TestRAMCopy(t *testing.T) {
	mem, err := memory.NewMemory(testROMs())
	test.DemandSuccess(t, err)

	mem.Poke(0x1234, 0x56)
	ram := mem.CopyRAM()
	test.ExpectEquality(t, len(ram), 65536)
	test.ExpectEquality(t, ram[0x1234], 0x56)

	mem.Clear()
	test.ExpectEquality(t, mem.Peek(0x1234), 0x00)

	test.ExpectSuccess(t, mem.LoadRAM(ram))
	test.ExpectEquality(t, mem.Peek(0x1234), 0x56)
	test.ExpectFailure(t, mem.LoadRAM(ram[:100]))
}

func TestDump(t *testing.T) {
	mem, err := memory.NewMemory(testROMs())
	test.DemandSuccess(t, err)

	mem.Poke(0x0401, 0xab)
	w := &strings.Builder{}
	mem.Dump(w, 0x0401, 0x0402)
	test.ExpectSuccess(t, strings.Contains(w.String(), "0400 |    ab 00   "))
}
