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

	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// ClockSource is used to derive the raster line returned by the VIC raster
// register. The CPU implements this interface.
type ClockSource interface {
	Clocks() int
}

// Memory is the complete address space of the machine.
type Memory struct {
	ram    [int(memorymap.Memtop) + 1]uint8
	basic  []uint8
	kernal []uint8
	char   []uint8

	clock ClockSource
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The ROM images are copied.
func NewMemory(roms ROMs) (*Memory, error) {
	if err := roms.Validate(); err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	mem := &Memory{
		basic:  append([]uint8(nil), roms.BASIC...),
		kernal: append([]uint8(nil), roms.KERNAL...),
		char:   append([]uint8(nil), roms.Char...),
	}

	return mem, nil
}

// Plumb a new clock source into memory.
func (mem *Memory) Plumb(clock ClockSource) {
	mem.clock = clock
}

// Clear all RAM. ROMs are unaffected.
func (mem *Memory) Clear() {
	clear(mem.ram[:])
}

// Bank returns the current value of the bank-select register, masked to the
// bits that affect the memory map.
func (mem *Memory) Bank() uint8 {
	return mem.ram[memorymap.BankSelect] & memorymap.BankMask
}

// Raster returns the raster line as derived from the clock source. The clock
// source can be negative so the modulo is adjusted into the positive range.
func (mem *Memory) Raster() int {
	if mem.clock == nil {
		return 0
	}
	line := (mem.clock.Clocks() >> 6) % clocks.RasterLines
	if line < 0 {
		line += clocks.RasterLines
	}
	return line
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	switch memorymap.MapAddress(address, mem.Bank()) {
	case memorymap.BASIC:
		return mem.basic[address-memorymap.OriginBASIC]
	case memorymap.KERNAL:
		return mem.kernal[address-memorymap.OriginKERNAL]
	case memorymap.VIC:
		if address == memorymap.Raster {
			return uint8(mem.Raster())
		}
	case memorymap.ColourRAM:
		return mem.ram[address] & 0x0f
	case memorymap.CharROM:
		return mem.char[address-memorymap.OriginIO]
	}

	// RAM, SID, CIA1, CIA2 and the rest of the VIC
	return mem.ram[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	switch memorymap.MapAddress(address, mem.Bank()) {
	case memorymap.BASIC, memorymap.KERNAL, memorymap.CharROM:
		return
	case memorymap.VIC:
		// writing a one to a bit in the interrupt status register clears it.
		// bits written as zero are left alone
		if address == memorymap.InterruptStatus {
			mem.ram[address] &^= data
			return
		}
		mem.ram[address] = data
		return
	case memorymap.ColourRAM:
		mem.ram[address] = data & 0x0f
		return
	}

	// RAM, SID, CIA1 and CIA2
	mem.ram[address] = data
}

// Peek returns the RAM value at the address, bypassing the memory map.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.ram[address]
}

// Poke sets the RAM value at the address, bypassing the memory map.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.ram[address] = data
}

// Char returns the byte in the character ROM at the offset. The offset wraps
// at the size of the ROM.
func (mem *Memory) Char(offset uint16) uint8 {
	return mem.char[int(offset)%len(mem.char)]
}

// CopyRAM returns a copy of all RAM.
func (mem *Memory) CopyRAM() []uint8 {
	return append([]uint8(nil), mem.ram[:]...)
}

// LoadRAM replaces all RAM. The data must be exactly the size of RAM.
func (mem *Memory) LoadRAM(data []uint8) error {
	if len(data) != len(mem.ram) {
		return fmt.Errorf("memory: RAM data is %d bytes, expected %d", len(data), len(mem.ram))
	}
	copy(mem.ram[:], data)
	return nil
}
