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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/test"
)

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 2)

	// wrap around
	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0)
	test.ExpectEquality(t, pc.String(), "0000")
}

func TestRelativeAddition(t *testing.T) {
	pc := registers.NewProgramCounter(0x1010)

	crossed := pc.AddRelative(0x10)
	test.ExpectEquality(t, pc.Address(), 0x1020)
	test.ExpectEquality(t, crossed, false)

	// negative offset
	crossed = pc.AddRelative(0xf0)
	test.ExpectEquality(t, pc.Address(), 0x1010)
	test.ExpectEquality(t, crossed, false)

	// backwards over a page boundary
	crossed = pc.AddRelative(0x80)
	test.ExpectEquality(t, pc.Address(), 0x0f90)
	test.ExpectEquality(t, crossed, true)

	// forwards over a page boundary
	pc.Load(0x10fe)
	crossed = pc.AddRelative(0x02)
	test.ExpectEquality(t, pc.Address(), 0x1100)
	test.ExpectEquality(t, crossed, true)
}
