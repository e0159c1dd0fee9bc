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
	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/logger"
)

// InstructionValve is the maximum number of instructions that will be
// executed by a single call to Execute().
const InstructionValve = 10000

// CPU implements the 6502. Register logic is implemented by the Register type
// in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// the cycle balance. cycles are added as instructions are executed and
	// the budget is subtracted at the end of every call to Execute(). a
	// positive value is the number of cycles already used from the next
	// budget
	Clock int

	// the most recently executed instruction
	LastResult Result

	mem cpubus.Memory
}

// Result of a single instruction.
type Result struct {
	// the address of the opcode
	Address uint16

	Defn instructions.Definition

	// the number of cycles consumed by the instruction, including any branch
	// penalty
	Cycles int
}

// Execution summarises a call to Execute().
type Execution struct {
	Instructions int
	Cycles       int

	// execution stopped because InstructionValve was reached rather than
	// because the budget was met
	Valve bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Registers are zeroed but the PC is not loaded with the reset vector until
// Reset() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy still
// refers to the same memory. Use Plumb() to change that.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Disassemble the instruction at the current PC.
func (mc *CPU) Disassemble() string {
	s, _ := instructions.Disassemble(mc.PC.Address(), mc.mem.Read)
	return s
}

// Reset reinitialises all registers and loads the PC with the address stored
// at the reset vector. The cycle balance is cleared.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Clock = 0
	mc.LastResult = Result{}
	mc.PC.Load(mc.read16Bit(cpubus.Reset))
}

// Clocks returns the current cycle balance. Implements the memory.ClockSource
// interface.
func (mc *CPU) Clocks() int {
	return mc.Clock
}

// Execute instructions until the cycle balance meets the budget or the
// InstructionValve is reached. The budget is then subtracted from the cycle
// balance so that any overrun is carried forward to the next call.
func (mc *CPU) Execute(budget int) Execution {
	var ex Execution

	start := mc.Clock
	for mc.Clock < budget && ex.Instructions < InstructionValve {
		mc.Step()
		ex.Instructions++
	}

	ex.Cycles = mc.Clock - start
	ex.Valve = mc.Clock < budget
	mc.Clock -= budget

	if ex.Valve {
		logger.Logf(logger.Allow, "cpu", "instruction valve reached after %d instructions: next is %s", ex.Instructions, mc.Disassemble())
	}

	return ex
}

// Step executes a single instruction. The result of the instruction is also
// stored in the LastResult field.
func (mc *CPU) Step() Result {
	address := mc.PC.Address()
	start := mc.Clock

	opcode := mc.mem.Read(address)
	mc.PC.Add(1)

	e := &dispatch[opcode]
	e.operate(mc, e.resolve(mc))
	mc.Clock += e.defn.Cycles

	mc.LastResult = Result{
		Address: address,
		Defn:    e.defn,
		Cycles:  mc.Clock - start,
	}

	return mc.LastResult
}

// IRQ raises an interrupt request. The request is ignored if the interrupt
// disable flag is set. Returns true if the interrupt was taken.
func (mc *CPU) IRQ() bool {
	if mc.Status.InterruptDisable {
		return false
	}
	mc.interrupt(false)
	return true
}

// ForceBreak performs the same sequence as an interrupt request but
// regardless of the interrupt disable flag and with the break flag set in the
// pushed status. Used to emulate an external break signal.
func (mc *CPU) ForceBreak() {
	mc.interrupt(true)
}

// push PC and status and jump through the IRQ vector
func (mc *CPU) interrupt(brk bool) {
	mc.push16Bit(mc.PC.Address())
	if brk {
		mc.push8Bit(mc.Status.Value() | registers.Break)
	} else {
		mc.push8Bit(mc.Status.Value() &^ registers.Break)
	}
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(cpubus.IRQ))
}

func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read a 16 bit value from zero page. the high byte wraps around within zero
// page
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push8Bit(v uint8) {
	mc.mem.Write(cpubus.StackOrigin|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pull8Bit() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(cpubus.StackOrigin | mc.SP.Address())
}

func (mc *CPU) push16Bit(v uint16) {
	mc.push8Bit(uint8(v >> 8))
	mc.push8Bit(uint8(v))
}

func (mc *CPU) pull16Bit() uint16 {
	lo := mc.pull8Bit()
	hi := mc.pull8Bit()
	return uint16(hi)<<8 | uint16(lo)
}
