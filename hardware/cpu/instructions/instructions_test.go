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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher64/test"
)

func TestDefinitionTable(t *testing.T) {
	defs := instructions.GetDefinitions()

	var defined int
	for i, defn := range defs {
		// every entry is indexed by its own opcode
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectEquality(t, defn.Cycles >= 2, true, defn)
		if !defn.Undefined {
			defined++
		}
	}

	// the 151 documented opcodes and the SBC alias
	test.ExpectEquality(t, defined, 152)

	test.ExpectEquality(t, instructions.Lookup(0xeb).Mnemonic, "SBC")
	test.ExpectEquality(t, instructions.Lookup(0xeb).Undocumented, true)
	test.ExpectEquality(t, instructions.Lookup(0x02).Undefined, true)
	test.ExpectEquality(t, instructions.Lookup(0x02).Bytes, 1)
}

func TestBranches(t *testing.T) {
	var branches int
	for _, defn := range instructions.GetDefinitions() {
		if defn.IsBranch() {
			branches++
			test.ExpectEquality(t, defn.Cycles, 2)
		}
	}
	test.ExpectEquality(t, branches, 8)
}

func TestCycles(t *testing.T) {
	test.ExpectEquality(t, instructions.Lookup(0x00).Cycles, 7) // BRK
	test.ExpectEquality(t, instructions.Lookup(0x20).Cycles, 6) // JSR
	test.ExpectEquality(t, instructions.Lookup(0xa9).Cycles, 2) // LDA #
	test.ExpectEquality(t, instructions.Lookup(0xb1).Cycles, 5) // LDA (zp),Y
	test.ExpectEquality(t, instructions.Lookup(0x9d).Cycles, 5) // STA abs,X
	test.ExpectEquality(t, instructions.Lookup(0xfe).Cycles, 7) // INC abs,X
}

func TestDisassemble(t *testing.T) {
	mem := map[uint16]uint8{
		0x1000: 0xa9, 0x1001: 0x41,
		0x1002: 0x8d, 0x1003: 0x00, 0x1004: 0x04,
		0x1005: 0xd0, 0x1006: 0xf9,
		0x1007: 0x02,
	}
	read := func(a uint16) uint8 { return mem[a] }

	s, n := instructions.Disassemble(0x1000, read)
	test.ExpectEquality(t, s, "1000  a9 41     LDA #$41")
	test.ExpectEquality(t, n, 2)

	s, n = instructions.Disassemble(0x1002, read)
	test.ExpectEquality(t, s, "1002  8d 00 04  STA $0400")
	test.ExpectEquality(t, n, 3)

	s, _ = instructions.Disassemble(0x1005, read)
	test.ExpectEquality(t, s, "1005  d0 f9     BNE $1000")

	s, n = instructions.Disassemble(0x1007, read)
	test.ExpectEquality(t, s, "1007  02        ???")
	test.ExpectEquality(t, n, 1)
}
