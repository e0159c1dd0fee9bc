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

// Package registers implements the three types of register found in the 6502:
// the general purpose 8 bit register (used for the A, X and Y registers and
// for the stack pointer), the 16 bit program counter and the status register.
//
// The general purpose register type performs the arithmetic, logical and
// shift operations of the CPU and reports the carry and overflow that result.
// It does not touch the status register. Updating the status register is the
// responsibility of the CPU. For instance, in the CPU, we might have this
// sequence of function calls:
//
//	a.Load(10)
//	carry, overflow := a.Add(0xf6, false)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// In this case, the carry and zero flags in the status register will be set.
//
// Arithmetic is always binary. Setting the decimal flag in the status register
// has no effect on the Add() and Subtract() functions.
package registers
