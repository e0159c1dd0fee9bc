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

// Package memory implements the address bus of the machine. Reads and writes
// from the CPU are resolved through the bank-select register at address
// 0x0001 to either RAM, one of the three ROMs or one of the memory mapped
// peripherals in the I/O window. The memorymap package describes which area
// services an address.
//
// The Peek() and Poke() functions access RAM directly and are intended for
// the video compositor, the keyboard buffer and for snapshots.
//
// Memory does not generate errors. Every address can be read and written
// although writes to ROM are discarded.
package memory
