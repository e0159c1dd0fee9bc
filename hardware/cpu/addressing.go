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

package cpu

import (
	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
)

// resolver functions read the operand bytes of the instruction, advancing the
// PC as they do so, and return the effective address of the operand.
//
// immediate and relative operands are resolved to the address of the operand
// byte itself. implied instructions have no operand and resolve to zero.
type resolver func(mc *CPU) uint16

func resolveImplied(mc *CPU) uint16 {
	return 0
}

func resolveImmediate(mc *CPU) uint16 {
	address := mc.PC.Address()
	mc.PC.Add(1)
	return address
}

func resolveZeroPage(mc *CPU) uint16 {
	return uint16(mc.fetch8Bit())
}

func resolveZeroPageIndexedX(mc *CPU) uint16 {
	return uint16(mc.fetch8Bit() + mc.X.Value())
}

func resolveZeroPageIndexedY(mc *CPU) uint16 {
	return uint16(mc.fetch8Bit() + mc.Y.Value())
}

func resolveAbsolute(mc *CPU) uint16 {
	address := mc.read16Bit(mc.PC.Address())
	mc.PC.Add(2)
	return address
}

func resolveAbsoluteIndexedX(mc *CPU) uint16 {
	return resolveAbsolute(mc) + mc.X.Address()
}

func resolveAbsoluteIndexedY(mc *CPU) uint16 {
	return resolveAbsolute(mc) + mc.Y.Address()
}

// the indirect address is read without carrying into the high byte. an
// indirect address of 0x12ff reads the high byte from 0x1200
func resolveIndirect(mc *CPU) uint16 {
	pointer := resolveAbsolute(mc)
	lo := mc.mem.Read(pointer)
	hi := mc.mem.Read(pointer&0xff00 | uint16(uint8(pointer)+1))
	return uint16(hi)<<8 | uint16(lo)
}

func resolveIndexedIndirect(mc *CPU) uint16 {
	return mc.read16BitZeroPage(mc.fetch8Bit() + mc.X.Value())
}

func resolveIndirectIndexed(mc *CPU) uint16 {
	return mc.read16BitZeroPage(mc.fetch8Bit()) + mc.Y.Address()
}

// fetch8Bit reads the byte at the PC and advances the PC.
func (mc *CPU) fetch8Bit() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

func resolverForMode(mode instructions.AddressingMode) resolver {
	switch mode {
	case instructions.Implied:
		return resolveImplied
	case instructions.Immediate, instructions.Relative:
		return resolveImmediate
	case instructions.Absolute:
		return resolveAbsolute
	case instructions.ZeroPage:
		return resolveZeroPage
	case instructions.Indirect:
		return resolveIndirect
	case instructions.IndexedIndirect:
		return resolveIndexedIndirect
	case instructions.IndirectIndexed:
		return resolveIndirectIndexed
	case instructions.AbsoluteIndexedX:
		return resolveAbsoluteIndexedX
	case instructions.AbsoluteIndexedY:
		return resolveAbsoluteIndexedY
	case instructions.ZeroPageIndexedX:
		return resolveZeroPageIndexedX
	case instructions.ZeroPageIndexedY:
		return resolveZeroPageIndexedY
	}
	return nil
}
