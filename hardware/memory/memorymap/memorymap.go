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

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case BASIC:
		return "BASIC"
	case KERNAL:
		return "KERNAL"
	case VIC:
		return "VIC"
	case SID:
		return "SID"
	case ColourRAM:
		return "Colour RAM"
	case CIA1:
		return "CIA1"
	case CIA2:
		return "CIA2"
	case CharROM:
		return "Char ROM"
	}

	return "undefined"
}

// List of valid Area values.
const (
	Undefined Area = iota
	RAM
	BASIC
	KERNAL
	VIC
	SID
	ColourRAM
	CIA1
	CIA2
	CharROM
)

// The origin and memory top for each area of memory that can be switched in
// by the bank-select register.
const (
	OriginBASIC     = uint16(0xa000)
	MemtopBASIC     = uint16(0xbfff)
	OriginIO        = uint16(0xd000)
	MemtopIO        = uint16(0xdfff)
	OriginVIC       = uint16(0xd000)
	MemtopVIC       = uint16(0xd3ff)
	OriginSID       = uint16(0xd400)
	MemtopSID       = uint16(0xd7ff)
	OriginColourRAM = uint16(0xd800)
	MemtopColourRAM = uint16(0xdbff)
	OriginCIA1      = uint16(0xdc00)
	MemtopCIA1      = uint16(0xdcff)
	OriginCIA2      = uint16(0xdd00)
	MemtopCIA2      = uint16(0xddff)
	OriginCharROM   = uint16(0xde00)
	MemtopCharROM   = uint16(0xdfff)
	OriginKERNAL    = uint16(0xe000)
	MemtopKERNAL    = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// BankSelect is the address of the bank-select register.
const BankSelect = uint16(0x0001)

// Bits of the bank-select register.
const (
	BankBASIC  = uint8(0x01)
	BankKERNAL = uint8(0x02)
	BankIO     = uint8(0x04)

	// mask of the bank-select register. other bits have no effect on the
	// memory map
	BankMask = BankBASIC | BankKERNAL | BankIO
)

// Locations in RAM used by the machine outside of the switchable areas.
const (
	KeyboardBufferLen = uint16(0x00c6)
	KeyboardBuffer    = uint16(0x0277)
	ScreenRAM         = uint16(0x0400)
	Raster            = uint16(0xd012)
	InterruptStatus   = uint16(0xd019)
	BorderColour      = uint16(0xd020)
	BackgroundColour  = uint16(0xd021)
)

// MapAddress returns the area that services the address for the value of the
// bank-select register.
func MapAddress(address uint16, bank uint8) Area {
	// note that the order of these filters is important

	if bank&BankBASIC == BankBASIC && address >= OriginBASIC && address <= MemtopBASIC {
		return BASIC
	}

	if bank&BankKERNAL == BankKERNAL && address >= OriginKERNAL {
		return KERNAL
	}

	if bank&BankIO == BankIO && address >= OriginIO && address <= MemtopIO {
		switch {
		case address <= MemtopVIC:
			return VIC
		case address <= MemtopSID:
			return SID
		case address <= MemtopColourRAM:
			return ColourRAM
		case address <= MemtopCIA1:
			return CIA1
		case address <= MemtopCIA2:
			return CIA2
		}
		return CharROM
	}

	return RAM
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, bank uint8, area Area) bool {
	return MapAddress(address, bank) == area
}
