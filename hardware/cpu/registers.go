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

// Registers is a copy of the register values of the CPU.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

// Registers returns a copy of the current register values.
func (mc *CPU) Registers() Registers {
	return Registers{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		SP:     mc.SP.Value(),
		Status: mc.Status.Value(),
	}
}

// LoadRegisters replaces all register values.
func (mc *CPU) LoadRegisters(r Registers) {
	mc.PC.Load(r.PC)
	mc.A.Load(r.A)
	mc.X.Load(r.X)
	mc.Y.Load(r.Y)
	mc.SP.Load(r.SP)
	mc.Status.Load(r.Status)
}
