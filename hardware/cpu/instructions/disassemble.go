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

package instructions

import "fmt"

// Disassemble formats the instruction beginning at address. The read function
// is used to fetch the opcode and operand bytes. It returns the formatted
// instruction and the number of bytes it occupies.
func Disassemble(address uint16, read func(uint16) uint8) (string, int) {
	defn := table[read(address)]

	if defn.Undefined {
		return fmt.Sprintf("%04x  %02x        ???", address, defn.OpCode), 1
	}

	var lo, hi uint8
	if defn.Bytes > 1 {
		lo = read(address + 1)
	}
	if defn.Bytes > 2 {
		hi = read(address + 2)
	}
	operand16 := uint16(hi)<<8 | uint16(lo)

	var operand string
	switch defn.AddressingMode {
	case Implied:
		if defn.OpCode == 0x00 {
			operand = fmt.Sprintf("#$%02x", lo)
		}
	case Immediate:
		operand = fmt.Sprintf("#$%02x", lo)
	case Relative:
		target := uint16(int32(address) + 2 + int32(int8(lo)))
		operand = fmt.Sprintf("$%04x", target)
	case Absolute:
		operand = fmt.Sprintf("$%04x", operand16)
	case ZeroPage:
		operand = fmt.Sprintf("$%02x", lo)
	case Indirect:
		operand = fmt.Sprintf("($%04x)", operand16)
	case IndexedIndirect:
		operand = fmt.Sprintf("($%02x,X)", lo)
	case IndirectIndexed:
		operand = fmt.Sprintf("($%02x),Y", lo)
	case AbsoluteIndexedX:
		operand = fmt.Sprintf("$%04x,X", operand16)
	case AbsoluteIndexedY:
		operand = fmt.Sprintf("$%04x,Y", operand16)
	case ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02x,X", lo)
	case ZeroPageIndexedY:
		operand = fmt.Sprintf("$%02x,Y", lo)
	}

	var raw string
	switch defn.Bytes {
	case 1:
		raw = fmt.Sprintf("%02x      ", defn.OpCode)
	case 2:
		raw = fmt.Sprintf("%02x %02x   ", defn.OpCode, lo)
	default:
		raw = fmt.Sprintf("%02x %02x %02x", defn.OpCode, lo, hi)
	}

	if operand == "" {
		return fmt.Sprintf("%04x  %s  %s", address, raw, defn.Mnemonic), defn.Bytes
	}
	return fmt.Sprintf("%04x  %s  %s %s", address, raw, defn.Mnemonic, operand), defn.Bytes
}
