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

// Package cpubus defines the memory interface seen by the CPU and the fixed
// addresses that the CPU itself relies on.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory implementation maps the address to the correct memory area
// so the CPU need not care which part of memory it is reading or writing.
//
// Both functions are total over the 16 bit address space. There is no address
// that cannot be read or written, although writing to some addresses will have
// no effect.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. BRK instructions
// also use this vector.
const IRQ = uint16(0xfffe)

// StackOrigin is the first address of the stack page. The stack pointer is an
// offset into this page.
const StackOrigin = uint16(0x0100)
