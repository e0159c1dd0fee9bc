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
	"fmt"

	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
)

// entry in the dispatch table
type entry struct {
	defn    instructions.Definition
	resolve resolver
	operate operation
}

// the dispatch table is built once from the instruction definitions. every
// opcode has an entry
var dispatch = buildDispatch()

func buildDispatch() [256]entry {
	var d [256]entry

	for i, defn := range instructions.GetDefinitions() {
		e := entry{defn: defn}

		if defn.Undefined {
			e.resolve = resolveImplied
			e.operate = undefined
		} else {
			e.resolve = resolverForMode(defn.AddressingMode)
			e.operate = operationFor(defn)
		}

		if e.resolve == nil || e.operate == nil {
			panic(fmt.Sprintf("cpu: incomplete dispatch entry for opcode %#02x (%s)", i, defn.Mnemonic))
		}

		d[i] = e
	}

	return d
}

func operationFor(defn instructions.Definition) operation {
	accumulator := defn.AddressingMode == instructions.Implied

	switch defn.Mnemonic {
	case "LDA":
		return lda
	case "LDX":
		return ldx
	case "LDY":
		return ldy
	case "STA":
		return sta
	case "STX":
		return stx
	case "STY":
		return sty
	case "ORA":
		return ora
	case "AND":
		return and
	case "EOR":
		return eor
	case "BIT":
		return bit
	case "ADC":
		return adc
	case "SBC":
		return sbc
	case "CMP":
		return cmp
	case "CPX":
		return cpx
	case "CPY":
		return cpy
	case "ASL":
		if accumulator {
			return aslAccumulator
		}
		return aslMemory
	case "LSR":
		if accumulator {
			return lsrAccumulator
		}
		return lsrMemory
	case "ROL":
		if accumulator {
			return rolAccumulator
		}
		return rolMemory
	case "ROR":
		if accumulator {
			return rorAccumulator
		}
		return rorMemory
	case "INC":
		return inc
	case "DEC":
		return dec
	case "INX":
		return inx
	case "INY":
		return iny
	case "DEX":
		return dex
	case "DEY":
		return dey
	case "TAX":
		return tax
	case "TXA":
		return txa
	case "TAY":
		return tay
	case "TYA":
		return tya
	case "TSX":
		return tsx
	case "TXS":
		return txs
	case "PHA":
		return pha
	case "PLA":
		return pla
	case "PHP":
		return php
	case "PLP":
		return plp
	case "CLC":
		return clc
	case "SEC":
		return sec
	case "CLI":
		return cli
	case "SEI":
		return sei
	case "CLV":
		return clv
	case "CLD":
		return cld
	case "SED":
		return sed
	case "JMP":
		return jmp
	case "JSR":
		return jsr
	case "RTS":
		return rts
	case "BRK":
		return brk
	case "RTI":
		return rti
	case "BPL":
		return bpl
	case "BMI":
		return bmi
	case "BVC":
		return bvc
	case "BVS":
		return bvs
	case "BCC":
		return bcc
	case "BCS":
		return bcs
	case "BNE":
		return bne
	case "BEQ":
		return beq
	case "NOP":
		return nop
	}

	return nil
}
