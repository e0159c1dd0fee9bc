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

// table of instruction definitions indexed by opcode. cycle counts are the
// base cost of the instruction. branch instructions add to this when the
// branch is taken.
//
// opcodes not defined by the 6502 documentation are marked as Undefined and
// are executed as single byte no-ops. 0xeb is the one undocumented opcode
// that is emulated and behaves exactly like the immediate mode SBC.
var table = [256]Definition{
	{OpCode: 0x00, Mnemonic: "BRK", Bytes: 2, Cycles: 7, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x01, Mnemonic: "ORA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x02, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x03, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x04, Mnemonic: "???", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x05, Mnemonic: "ORA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x06, Mnemonic: "ASL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x07, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x09, Mnemonic: "ORA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x0a, Mnemonic: "ASL", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x0b, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x0c, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x0d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x0e, Mnemonic: "ASL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x0f, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x10, Mnemonic: "BPL", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x11, Mnemonic: "ORA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x12, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x13, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x14, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x15, Mnemonic: "ORA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x16, Mnemonic: "ASL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x17, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x19, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x1a, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x1b, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x1c, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x1d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x1e, Mnemonic: "ASL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x1f, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},
	{OpCode: 0x21, Mnemonic: "AND", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x22, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x23, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x24, Mnemonic: "BIT", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x25, Mnemonic: "AND", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x26, Mnemonic: "ROL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x27, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x29, Mnemonic: "AND", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x2a, Mnemonic: "ROL", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x2b, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x2c, Mnemonic: "BIT", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x2d, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x2e, Mnemonic: "ROL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x2f, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x30, Mnemonic: "BMI", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x31, Mnemonic: "AND", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x32, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x33, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x34, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x35, Mnemonic: "AND", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x36, Mnemonic: "ROL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x37, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x39, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x3a, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x3b, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x3c, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x3d, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x3e, Mnemonic: "ROL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x3f, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x41, Mnemonic: "EOR", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x42, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x43, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x44, Mnemonic: "???", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x45, Mnemonic: "EOR", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x46, Mnemonic: "LSR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x47, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x49, Mnemonic: "EOR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x4a, Mnemonic: "LSR", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x4b, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x4c, Mnemonic: "JMP", Bytes: 3, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	{OpCode: 0x4d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x4e, Mnemonic: "LSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x4f, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x50, Mnemonic: "BVC", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x51, Mnemonic: "EOR", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x52, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x53, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x54, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x55, Mnemonic: "EOR", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x56, Mnemonic: "LSR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x57, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x59, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x5a, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x5b, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x5c, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x5d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x5e, Mnemonic: "LSR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x5f, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Subroutine},
	{OpCode: 0x61, Mnemonic: "ADC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x62, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x63, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x64, Mnemonic: "???", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x65, Mnemonic: "ADC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x66, Mnemonic: "ROR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x67, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x69, Mnemonic: "ADC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x6a, Mnemonic: "ROR", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x6b, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x6c, Mnemonic: "JMP", Bytes: 3, Cycles: 5, AddressingMode: Indirect, Effect: Flow},
	{OpCode: 0x6d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x6e, Mnemonic: "ROR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x6f, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x70, Mnemonic: "BVS", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x71, Mnemonic: "ADC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x72, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x73, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x74, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x75, Mnemonic: "ADC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x76, Mnemonic: "ROR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x77, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x79, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x7a, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x7b, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x7c, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x7d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x7e, Mnemonic: "ROR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x7f, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x80, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x81, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write},
	{OpCode: 0x82, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x83, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x84, Mnemonic: "STY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x86, Mnemonic: "STX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x87, Mnemonic: "???", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x89, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x8a, Mnemonic: "TXA", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8b, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x8c, Mnemonic: "STY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x8d, Mnemonic: "STA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x8e, Mnemonic: "STX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x8f, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x90, Mnemonic: "BCC", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x91, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write},
	{OpCode: 0x92, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x93, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x94, Mnemonic: "STY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x95, Mnemonic: "STA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x96, Mnemonic: "STX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	{OpCode: 0x97, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x98, Mnemonic: "TYA", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x99, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write},
	{OpCode: 0x9a, Mnemonic: "TXS", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x9b, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x9c, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x9d, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write},
	{OpCode: 0x9e, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0x9f, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xa0, Mnemonic: "LDY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa1, Mnemonic: "LDA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xa2, Mnemonic: "LDX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa3, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xa4, Mnemonic: "LDY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa5, Mnemonic: "LDA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa6, Mnemonic: "LDX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa7, Mnemonic: "???", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xa8, Mnemonic: "TAY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xaa, Mnemonic: "TAX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xab, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xac, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xad, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xae, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xaf, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xb0, Mnemonic: "BCS", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xb1, Mnemonic: "LDA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xb2, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xb3, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xb4, Mnemonic: "LDY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xb5, Mnemonic: "LDA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xb6, Mnemonic: "LDX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read},
	{OpCode: 0xb7, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xb8, Mnemonic: "CLV", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb9, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xba, Mnemonic: "TSX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xbb, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xbc, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xbd, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xbe, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xbf, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xc0, Mnemonic: "CPY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc1, Mnemonic: "CMP", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xc2, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xc3, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xc4, Mnemonic: "CPY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xc5, Mnemonic: "CMP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xc6, Mnemonic: "DEC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xc7, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xc8, Mnemonic: "INY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc9, Mnemonic: "CMP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xca, Mnemonic: "DEX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xcb, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xcc, Mnemonic: "CPY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xcd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xce, Mnemonic: "DEC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xcf, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xd0, Mnemonic: "BNE", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xd1, Mnemonic: "CMP", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xd2, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xd3, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xd4, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xd5, Mnemonic: "CMP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xd6, Mnemonic: "DEC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0xd7, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xd8, Mnemonic: "CLD", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd9, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xda, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xdb, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xdc, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xdd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xde, Mnemonic: "DEC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0xdf, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xe0, Mnemonic: "CPX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xe1, Mnemonic: "SBC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xe2, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xe3, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xe4, Mnemonic: "CPX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xe5, Mnemonic: "SBC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xe6, Mnemonic: "INC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xe7, Mnemonic: "???", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xe8, Mnemonic: "INX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe9, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xea, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xeb, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Undocumented: true},
	{OpCode: 0xec, Mnemonic: "CPX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xed, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xee, Mnemonic: "INC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xef, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xf0, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xf1, Mnemonic: "SBC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xf2, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xf3, Mnemonic: "???", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xf4, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xf5, Mnemonic: "SBC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xf6, Mnemonic: "INC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0xf7, Mnemonic: "???", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xf8, Mnemonic: "SED", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf9, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xfa, Mnemonic: "???", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xfb, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xfc, Mnemonic: "???", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Undefined: true},
	{OpCode: 0xfd, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xfe, Mnemonic: "INC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0xff, Mnemonic: "???", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Read, Undefined: true},
}
