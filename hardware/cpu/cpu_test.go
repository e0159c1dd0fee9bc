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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/test"
)

// flat memory with no mapping
type mockMem struct {
	internal [0x10000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

// place bytes at origin and point the reset vector at origin
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	mem.internal[0xfffc] = uint8(origin)
	mem.internal[0xfffd] = uint8(origin >> 8)
}

func newTestCPU(t *testing.T, origin uint16, bytes ...uint8) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := &mockMem{}
	mem.putInstructions(origin, bytes...)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	test.DemandEquality(t, mc.PC.Address(), origin)
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU, cycles int) {
	t.Helper()
	r := mc.Step()
	test.ExpectEquality(t, r.Cycles, cycles, r.Defn)
}

func TestReset(t *testing.T) {
	mc, _ := newTestCPU(t, 0xc000)
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Value(), 0x20)
	test.ExpectEquality(t, mc.Clock, 0)
}

func TestLoadAndAdd(t *testing.T) {
	// LDA #$50; ADC #$50
	mc, _ := newTestCPU(t, 0x1000, 0xa9, 0x50, 0x69, 0x50)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectEquality(t, mc.Status.Overflow, true)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Clock, 4)

	// LDA #$ff; CLC; ADC #$01
	mc, _ = newTestCPU(t, 0x1000, 0xa9, 0xff, 0x18, 0x69, 0x01)
	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Overflow, false)
}

func TestSubtract(t *testing.T) {
	// SEC; LDA #$05; SBC #$06
	mc, _ := newTestCPU(t, 0x1000, 0x38, 0xa9, 0x05, 0xe9, 0x06)
	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)

	// undocumented 0xeb is the same as SBC immediate
	// SEC; LDA #$05; .byte $eb, $05
	mc, _ = newTestCPU(t, 0x1000, 0x38, 0xa9, 0x05, 0xeb, 0x05)
	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func TestCompare(t *testing.T) {
	// LDA #$40; CMP #$40; CMP #$41
	mc, _ := newTestCPU(t, 0x1000, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.A.Value(), 0x40)
}

func TestShifts(t *testing.T) {
	// LDA #$81; ASL A; ROL A; LSR $10; ROR $10
	mc, mem := newTestCPU(t, 0x1000, 0xa9, 0x81, 0x0a, 0x2a, 0x46, 0x10, 0x66, 0x10)
	mem.internal[0x10] = 0x01
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.Carry, true)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x05)
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.internal[0x10], 0x00)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.internal[0x10], 0x80)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func TestBranchCycles(t *testing.T) {
	// branch not taken. LDA #$01; BEQ +2
	mc, _ := newTestCPU(t, 0x1000, 0xa9, 0x01, 0xf0, 0x02)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x1004)

	// branch taken on the same page. LDA #$01; BNE +2
	mc, _ = newTestCPU(t, 0x1000, 0xa9, 0x01, 0xd0, 0x02)
	step(t, mc, 2)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x1006)

	// branch taken across a page boundary. LDA #$01; BNE -16
	mc, _ = newTestCPU(t, 0x1000, 0xa9, 0x01, 0xd0, 0xf0)
	step(t, mc, 2)
	step(t, mc, 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x0ff4)
}

func TestStack(t *testing.T) {
	// LDA #$aa; PHA; LDA #$00; PLA
	mc, mem := newTestCPU(t, 0x1000, 0xa9, 0xaa, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc, 2)
	step(t, mc, 3)
	test.ExpectEquality(t, mem.internal[0x01fd], 0xaa)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc, 4)
	test.ExpectEquality(t, mc.A.Value(), 0xaa)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Sign, true)

	// stack pointer wraps within page one. LDX #$00; TXS; PHA
	mc, mem = newTestCPU(t, 0x1000, 0xa2, 0x00, 0x9a, 0x48)
	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mem.internal[0x0100], 0x00)
}

func TestPushStatus(t *testing.T) {
	// SEC; PHP; CLC; PLP
	mc, mem := newTestCPU(t, 0x1000, 0x38, 0x08, 0x18, 0x28)
	step(t, mc, 2)
	step(t, mc, 3)
	test.ExpectEquality(t, mem.internal[0x01fd], registers.Carry|registers.Unused|registers.Break)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc, 4)
	test.ExpectEquality(t, mc.Status.Carry, true)
}

func TestSubroutine(t *testing.T) {
	// JSR $2000 ... $2000: RTS
	mc, mem := newTestCPU(t, 0x1000, 0x20, 0x00, 0x20)
	mem.internal[0x2000] = 0x60
	step(t, mc, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x2000)
	test.ExpectEquality(t, mem.internal[0x01fd], 0x10)
	test.ExpectEquality(t, mem.internal[0x01fc], 0x02)
	step(t, mc, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x1003)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestIndirectJumpPageBug(t *testing.T) {
	// JMP ($12ff)
	mc, mem := newTestCPU(t, 0x1000, 0x6c, 0xff, 0x12)
	mem.internal[0x12ff] = 0x34
	mem.internal[0x1200] = 0x56
	mem.internal[0x1300] = 0x99
	step(t, mc, 5)
	test.ExpectEquality(t, mc.PC.Address(), 0x5634)
}

func TestZeroPageIndirectWrap(t *testing.T) {
	// LDX #$00; LDA ($ff,X)
	mc, mem := newTestCPU(t, 0x1000, 0xa2, 0x00, 0xa1, 0xff)
	mem.internal[0xff] = 0x00
	mem.internal[0x00] = 0x30
	mem.internal[0x3000] = 0x42
	step(t, mc, 2)
	step(t, mc, 6)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
}

func TestBreakAndReturn(t *testing.T) {
	// BRK; .byte padding; NOP ... $3000: RTI
	mc, mem := newTestCPU(t, 0x1000, 0x00, 0xff, 0xea)
	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x30
	mem.internal[0x3000] = 0x40

	step(t, mc, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mem.internal[0x01fb]&registers.Break, registers.Break)

	step(t, mc, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x1002)
	test.ExpectEquality(t, mc.Status.Break, false)
	test.ExpectEquality(t, mc.Status.InterruptDisable, false)
}

func TestInterrupts(t *testing.T) {
	mc, mem := newTestCPU(t, 0x1000, 0xea)
	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x30

	// interrupt taken and pushed status has break flag clear
	test.ExpectSuccess(t, mc.IRQ())
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, mem.internal[0x01fb]&registers.Break, 0)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// interrupt disable is now set so the request is ignored
	test.ExpectFailure(t, mc.IRQ())
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)

	// forced break ignores the interrupt disable flag
	mc.ForceBreak()
	test.ExpectEquality(t, mc.SP.Value(), 0xf7)
	test.ExpectEquality(t, mem.internal[0x01f8]&registers.Break, registers.Break)
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
}

func TestUndefinedOpcode(t *testing.T) {
	logger.Clear()

	// undefined opcode then LDA #$01
	mc, _ := newTestCPU(t, 0x1000, 0x02, 0xa9, 0x01)
	r := mc.Step()
	test.ExpectEquality(t, r.Defn.Undefined, true)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x1001)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x01)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "undefined opcode"))
}

func TestExecuteOverrun(t *testing.T) {
	// JMP $1000
	mc, _ := newTestCPU(t, 0x1000, 0x4c, 0x00, 0x10)

	// JMP is three cycles. a budget of ten requires four instructions
	ex := mc.Execute(10)
	test.ExpectEquality(t, ex.Instructions, 4)
	test.ExpectEquality(t, ex.Cycles, 12)
	test.ExpectEquality(t, ex.Valve, false)
	test.ExpectEquality(t, mc.Clock, 2)

	// the overrun is carried into the next budget
	ex = mc.Execute(10)
	test.ExpectEquality(t, ex.Instructions, 3)
	test.ExpectEquality(t, mc.Clock, 1)
}

func TestInstructionValve(t *testing.T) {
	logger.Clear()

	// tight loop. JMP $1000
	mc, _ := newTestCPU(t, 0x1000, 0x4c, 0x00, 0x10)
	ex := mc.Execute(cpu.InstructionValve * 10)
	test.ExpectEquality(t, ex.Instructions, cpu.InstructionValve)
	test.ExpectEquality(t, ex.Valve, true)
	test.ExpectEquality(t, mc.Clock, cpu.InstructionValve*3-cpu.InstructionValve*10)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "instruction valve"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "next is 1000  4c 00 10  JMP $1000"))
}

func TestSnapshot(t *testing.T) {
	mc, mem := newTestCPU(t, 0x1000, 0xa9, 0x33, 0xa2, 0x44)
	mc.Step()

	snp := mc.Snapshot()
	test.ExpectEquality(t, snp.A.Value(), 0x33)
	test.ExpectEquality(t, snp.Clock, mc.Clock)

	// the snapshot is independent of the original
	mc.Step()
	test.ExpectEquality(t, mc.X.Value(), 0x44)
	test.ExpectEquality(t, snp.X.Value(), 0)
	test.ExpectEquality(t, snp.PC.Address(), 0x1002)

	// the snapshot shares memory until plumbed
	test.ExpectEquality(t, snp.Disassemble(), "1002  a2 44     LDX #$44")
	other := &mockMem{}
	other.internal[0x1002] = 0xea
	snp.Plumb(other)
	test.ExpectEquality(t, snp.Disassemble(), "1002  ea        NOP")
	test.ExpectEquality(t, mc.Disassemble(), "1004  00 00     BRK #$00")
	test.ExpectEquality(t, mem.internal[0x1002], 0xa2)
}

func TestRegistersCopy(t *testing.T) {
	mc, _ := newTestCPU(t, 0x1000, 0xa9, 0x33)
	mc.Step()
	r := mc.Registers()
	test.ExpectEquality(t, r.A, 0x33)
	test.ExpectEquality(t, r.PC, 0x1002)

	mc.Reset()
	mc.LoadRegisters(r)
	test.ExpectEquality(t, mc.Registers(), r)
}
