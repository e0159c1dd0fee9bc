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

// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the dispatch table. Each entry of the table
// pairs the instruction's definition (see the instructions package) with the
// function that resolves the operand address and the function that performs
// the operation.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
// The bread-and-butter of the CPU type is the Execute() function. It runs
// instructions until the supplied cycle budget has been used. Any cycles used
// beyond the budget are carried forward and count against the budget of the
// next call to Execute().
//
//	for {
//		mc.Execute(16421)
//		mc.IRQ()
//	}
//
// A single instruction can be executed with the Step() function.
//
// Arithmetic is binary only. The decimal flag can be set and cleared but it
// has no effect on ADC and SBC.
package cpu
