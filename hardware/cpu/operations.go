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
	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/logger"
)

// operation functions perform the instruction using the address returned by
// the resolver for the instruction's addressing mode.
type operation func(mc *CPU, address uint16)

// load and logical operations

func lda(mc *CPU, address uint16) {
	mc.A.Load(mc.mem.Read(address))
	mc.Status.SetZN(mc.A.Value())
}

func ldx(mc *CPU, address uint16) {
	mc.X.Load(mc.mem.Read(address))
	mc.Status.SetZN(mc.X.Value())
}

func ldy(mc *CPU, address uint16) {
	mc.Y.Load(mc.mem.Read(address))
	mc.Status.SetZN(mc.Y.Value())
}

func sta(mc *CPU, address uint16) {
	mc.mem.Write(address, mc.A.Value())
}

func stx(mc *CPU, address uint16) {
	mc.mem.Write(address, mc.X.Value())
}

func sty(mc *CPU, address uint16) {
	mc.mem.Write(address, mc.Y.Value())
}

func ora(mc *CPU, address uint16) {
	mc.A.ORA(mc.mem.Read(address))
	mc.Status.SetZN(mc.A.Value())
}

func and(mc *CPU, address uint16) {
	mc.A.AND(mc.mem.Read(address))
	mc.Status.SetZN(mc.A.Value())
}

func eor(mc *CPU, address uint16) {
	mc.A.EOR(mc.mem.Read(address))
	mc.Status.SetZN(mc.A.Value())
}

func bit(mc *CPU, address uint16) {
	v := mc.mem.Read(address)
	mc.Status.Zero = mc.A.Value()&v == 0
	mc.Status.Sign = v&0x80 == 0x80
	mc.Status.Overflow = v&0x40 == 0x40
}

// arithmetic

func adc(mc *CPU, address uint16) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(mc.mem.Read(address), mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func sbc(mc *CPU, address uint16) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(mc.mem.Read(address), mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func compare(mc *CPU, r registers.Register, address uint16) {
	carry, result := r.Compare(mc.mem.Read(address))
	mc.Status.Carry = carry
	mc.Status.SetZN(result)
}

func cmp(mc *CPU, address uint16) {
	compare(mc, mc.A, address)
}

func cpx(mc *CPU, address uint16) {
	compare(mc, mc.X, address)
}

func cpy(mc *CPU, address uint16) {
	compare(mc, mc.Y, address)
}

// shifts and rotates. each operation has an accumulator and a memory form

func shift(mc *CPU, r *registers.Register, f func(r *registers.Register) bool) {
	mc.Status.Carry = f(r)
	mc.Status.SetZN(r.Value())
}

func shiftMemory(mc *CPU, address uint16, f func(r *registers.Register) bool) {
	r := registers.NewRegister(mc.mem.Read(address), "")
	shift(mc, &r, f)
	mc.mem.Write(address, r.Value())
}

func asl(r *registers.Register) bool {
	return r.ASL()
}

func lsr(r *registers.Register) bool {
	return r.LSR()
}

func aslAccumulator(mc *CPU, _ uint16) {
	shift(mc, &mc.A, asl)
}

func aslMemory(mc *CPU, address uint16) {
	shiftMemory(mc, address, asl)
}

func lsrAccumulator(mc *CPU, _ uint16) {
	shift(mc, &mc.A, lsr)
}

func lsrMemory(mc *CPU, address uint16) {
	shiftMemory(mc, address, lsr)
}

func rolAccumulator(mc *CPU, _ uint16) {
	shift(mc, &mc.A, func(r *registers.Register) bool { return r.ROL(mc.Status.Carry) })
}

func rolMemory(mc *CPU, address uint16) {
	shiftMemory(mc, address, func(r *registers.Register) bool { return r.ROL(mc.Status.Carry) })
}

func rorAccumulator(mc *CPU, _ uint16) {
	shift(mc, &mc.A, func(r *registers.Register) bool { return r.ROR(mc.Status.Carry) })
}

func rorMemory(mc *CPU, address uint16) {
	shiftMemory(mc, address, func(r *registers.Register) bool { return r.ROR(mc.Status.Carry) })
}

// increments and decrements

func inc(mc *CPU, address uint16) {
	v := mc.mem.Read(address) + 1
	mc.mem.Write(address, v)
	mc.Status.SetZN(v)
}

func dec(mc *CPU, address uint16) {
	v := mc.mem.Read(address) - 1
	mc.mem.Write(address, v)
	mc.Status.SetZN(v)
}

func step(mc *CPU, r *registers.Register, delta uint8) {
	r.Load(r.Value() + delta)
	mc.Status.SetZN(r.Value())
}

func inx(mc *CPU, _ uint16) {
	step(mc, &mc.X, 1)
}

func iny(mc *CPU, _ uint16) {
	step(mc, &mc.Y, 1)
}

func dex(mc *CPU, _ uint16) {
	step(mc, &mc.X, 0xff)
}

func dey(mc *CPU, _ uint16) {
	step(mc, &mc.Y, 0xff)
}

// register transfers. TXS is the only transfer that does not affect the
// status register

func transfer(mc *CPU, from registers.Register, to *registers.Register) {
	to.Load(from.Value())
	mc.Status.SetZN(to.Value())
}

func tax(mc *CPU, _ uint16) {
	transfer(mc, mc.A, &mc.X)
}

func txa(mc *CPU, _ uint16) {
	transfer(mc, mc.X, &mc.A)
}

func tay(mc *CPU, _ uint16) {
	transfer(mc, mc.A, &mc.Y)
}

func tya(mc *CPU, _ uint16) {
	transfer(mc, mc.Y, &mc.A)
}

func tsx(mc *CPU, _ uint16) {
	transfer(mc, mc.SP, &mc.X)
}

func txs(mc *CPU, _ uint16) {
	mc.SP.Load(mc.X.Value())
}

// stack

func pha(mc *CPU, _ uint16) {
	mc.push8Bit(mc.A.Value())
}

func pla(mc *CPU, _ uint16) {
	mc.A.Load(mc.pull8Bit())
	mc.Status.SetZN(mc.A.Value())
}

func php(mc *CPU, _ uint16) {
	mc.push8Bit(mc.Status.Value() | registers.Break)
}

func plp(mc *CPU, _ uint16) {
	mc.Status.Load(mc.pull8Bit())
}

// status flags

func clc(mc *CPU, _ uint16) { mc.Status.Carry = false }
func sec(mc *CPU, _ uint16) { mc.Status.Carry = true }
func cli(mc *CPU, _ uint16) { mc.Status.InterruptDisable = false }
func sei(mc *CPU, _ uint16) { mc.Status.InterruptDisable = true }
func clv(mc *CPU, _ uint16) { mc.Status.Overflow = false }
func cld(mc *CPU, _ uint16) { mc.Status.DecimalMode = false }
func sed(mc *CPU, _ uint16) { mc.Status.DecimalMode = true }

// flow control

func jmp(mc *CPU, address uint16) {
	mc.PC.Load(address)
}

func jsr(mc *CPU, address uint16) {
	mc.push16Bit(mc.PC.Address() - 1)
	mc.PC.Load(address)
}

func rts(mc *CPU, _ uint16) {
	mc.PC.Load(mc.pull16Bit() + 1)
}

// BRK skips the padding byte that follows the opcode
func brk(mc *CPU, _ uint16) {
	mc.PC.Add(1)
	mc.push16Bit(mc.PC.Address())
	mc.push8Bit(mc.Status.Value() | registers.Break)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(cpubus.IRQ))
}

func rti(mc *CPU, _ uint16) {
	mc.Status.Load(mc.pull8Bit())
	mc.Status.Break = false
	mc.PC.Load(mc.pull16Bit())
}

// branch returns an operation that moves the PC by the relative offset stored
// at the address when the condition is true. a branch that is taken costs one
// additional cycle and a further cycle if the destination is on a different
// page
func branch(condition func(mc *CPU) bool) operation {
	return func(mc *CPU, address uint16) {
		offset := mc.mem.Read(address)
		if !condition(mc) {
			return
		}
		mc.Clock++
		if mc.PC.AddRelative(offset) {
			mc.Clock++
		}
	}
}

var (
	bpl = branch(func(mc *CPU) bool { return !mc.Status.Sign })
	bmi = branch(func(mc *CPU) bool { return mc.Status.Sign })
	bvc = branch(func(mc *CPU) bool { return !mc.Status.Overflow })
	bvs = branch(func(mc *CPU) bool { return mc.Status.Overflow })
	bcc = branch(func(mc *CPU) bool { return !mc.Status.Carry })
	bcs = branch(func(mc *CPU) bool { return mc.Status.Carry })
	bne = branch(func(mc *CPU) bool { return !mc.Status.Zero })
	beq = branch(func(mc *CPU) bool { return mc.Status.Zero })
)

func nop(_ *CPU, _ uint16) {}

func undefined(mc *CPU, _ uint16) {
	logger.Logf(logger.Allow, "cpu", "undefined opcode (%#02x) at %#04x", mc.mem.Read(mc.PC.Address()-1), mc.PC.Address()-1)
}
