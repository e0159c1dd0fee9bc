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

package hardware_test

import (
	"errors"
	"image"
	"testing"

	"github.com/jetsetilly/gopher64/digest"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/govern"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/test"
)

// ROMs with a small KERNAL. the reset routine enables interrupts and loops
// forever. the interrupt routine increments $c000
func testROMs() memory.ROMs {
	roms := memory.ROMs{
		BASIC:  make([]uint8, memory.BASICSize),
		KERNAL: make([]uint8, memory.KERNALSize),
		Char:   make([]uint8, memory.CharSize),
	}

	// $e000: CLI; loop: JMP loop
	copy(roms.KERNAL[0x0000:], []uint8{0x58, 0x4c, 0x01, 0xe0})

	// $e100: INC $c000; RTI
	copy(roms.KERNAL[0x0100:], []uint8{0xee, 0x00, 0xc0, 0x40})

	// reset and IRQ vectors
	copy(roms.KERNAL[0x1ffc:], []uint8{0x00, 0xe0, 0x00, 0xe1})

	return roms
}

type mockRenderer struct {
	frames int
	err    error
}

func (r *mockRenderer) NewFrame(img *image.RGBA) error {
	r.frames++
	return r.err
}

func TestNewMachine(t *testing.T) {
	roms := testROMs()
	roms.Char = nil
	_, err := hardware.NewMachine(roms, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrROMSize))

	m, err := hardware.NewMachine(testROMs(), nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0xe000)
	test.ExpectEquality(t, m.CPU.SP.Value(), 0xfd)
	test.ExpectEquality(t, m.Ticks(), 0)
}

func TestReset(t *testing.T) {
	m, err := hardware.NewMachine(testROMs(), nil)
	test.DemandSuccess(t, err)

	m.Mem.Poke(0x1234, 0xff)
	m.Mem.Poke(0xd020, 0x01)
	test.DemandSuccess(t, m.Tick())
	m.Reset()

	test.ExpectEquality(t, m.Mem.Peek(0x1234), 0x00)
	test.ExpectEquality(t, m.Mem.Peek(0x0000), 0x2f)
	test.ExpectEquality(t, m.Mem.Peek(0x0001), 0x07)
	test.ExpectEquality(t, m.Mem.Peek(0x00c6), 0x00)
	test.ExpectEquality(t, m.Mem.Peek(0x0286), 0x0e)
	test.ExpectEquality(t, m.Mem.Peek(0xd020), 0x0e)
	test.ExpectEquality(t, m.Mem.Peek(0xd021), 0x06)
	test.ExpectEquality(t, m.Mem.Peek(0x0314), 0x31)
	test.ExpectEquality(t, m.Mem.Peek(0x0315), 0xea)
	test.ExpectEquality(t, m.Mem.Peek(0x0316), 0x66)
	test.ExpectEquality(t, m.Mem.Peek(0x0317), 0xfe)
	test.ExpectEquality(t, m.Mem.Peek(0x0318), 0x47)
	test.ExpectEquality(t, m.Mem.Peek(0x0319), 0xfe)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0xe000)
	test.ExpectEquality(t, m.CPU.Clock, 0)
	test.ExpectEquality(t, m.Ticks(), 0)
}

func TestTick(t *testing.T) {
	r := &mockRenderer{}
	m, err := hardware.NewMachine(testROMs(), r)
	test.DemandSuccess(t, err)

	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, m.Tick())
	}

	// the interrupt raised at the end of each tick is serviced during the
	// following tick
	test.ExpectEquality(t, m.Mem.Peek(0xc000), 2)
	test.ExpectEquality(t, m.Ticks(), 3)

	// frames are rendered on ticks zero and two
	test.ExpectEquality(t, r.frames, 2)

	test.DemandSuccess(t, m.Tick())
	test.ExpectEquality(t, r.frames, 2)

	// errors from the renderer are returned by Tick()
	r.err = errors.New("test")
	test.ExpectFailure(t, m.Tick())
}

func TestRun(t *testing.T) {
	m, err := hardware.NewMachine(testROMs(), nil)
	test.DemandSuccess(t, err)

	n := 0
	err = m.Run(func() (govern.State, error) {
		n++
		if n == 5 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Ticks(), 5)

	// typed text reaches the keyboard buffer as the machine runs
	m.Type("AB")
	test.ExpectSuccess(t, m.RunForFrameCount(3, nil))
	test.ExpectEquality(t, m.Ticks(), 8)
	test.ExpectEquality(t, m.Mem.Peek(0x00c6), 2)
	test.ExpectEquality(t, m.Mem.Peek(0x0277), 'A')
	test.ExpectEquality(t, m.Mem.Peek(0x0278), 'B')

	// an error from the continue check ends the loop
	err = m.RunForFrameCount(10, func(frame int) (govern.State, error) {
		return govern.Running, errors.New("test")
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, m.Ticks(), 9)
}

func TestKeys(t *testing.T) {
	m, err := hardware.NewMachine(testROMs(), nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, m.PressKey("a"))
	test.ExpectFailure(t, m.PressKey("Escape"))
	test.ExpectEquality(t, m.Mem.Peek(0x0277), 'A')

	for i := 0; i < 9; i++ {
		test.ExpectSuccess(t, m.InjectKey(13))
	}
	// the eleventh and twelfth keys are dropped
	test.ExpectFailure(t, m.InjectKey(13))
	test.ExpectFailure(t, m.InjectKey(13))
	test.ExpectEquality(t, m.Mem.Peek(0x00c6), 10)
	test.ExpectEquality(t, m.Mem.Peek(0x0277+10), 0)
	test.ExpectEquality(t, m.Mem.Peek(0x0277+11), 0)
}

func TestBreak(t *testing.T) {
	m, err := hardware.NewMachine(testROMs(), nil)
	test.DemandSuccess(t, err)

	// interrupts are disabled but the break still happens
	m.CPU.Status.InterruptDisable = true
	m.Break()
	test.ExpectEquality(t, m.CPU.PC.Address(), 0xe100)
	test.ExpectEquality(t, m.CPU.SP.Value(), 0xfa)
}

func TestSnapshot(t *testing.T) {
	m, err := hardware.NewMachine(testROMs(), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.RunForFrameCount(5, nil))

	s := m.Snapshot()
	test.ExpectEquality(t, len(s.RAM), hardware.RAMSize)
	test.ExpectEquality(t, s.Ticks, 5)

	// the snapshot is a copy and is unaffected by the machine
	m.Mem.Poke(0x2000, 0x55)
	test.ExpectEquality(t, s.RAM[0x2000], 0x00)
	m.Mem.Poke(0x2000, 0x00)

	test.DemandSuccess(t, m.RunForFrameCount(5, nil))
	after := m.Snapshot()

	// restoring and running again gives the same result
	test.DemandSuccess(t, m.Restore(s))
	test.ExpectEquality(t, m.Ticks(), 5)
	test.DemandSuccess(t, m.RunForFrameCount(5, nil))
	again := m.Snapshot()

	test.ExpectEquality(t, again.Registers, after.Registers)
	test.ExpectEquality(t, again.Clock, after.Clock)
	test.ExpectEquality(t, again.Ticks, after.Ticks)
	test.ExpectEquality(t, string(again.RAM), string(after.RAM))
}

func TestRestoreClockSource(t *testing.T) {
	m, err := hardware.NewMachine(testROMs(), nil)
	test.DemandSuccess(t, err)

	s := m.Snapshot()
	s.Clock = 64 * 10
	s.Registers.A = 0x99
	test.DemandSuccess(t, m.Restore(s))
	test.ExpectEquality(t, m.CPU.A.Value(), 0x99)
	test.ExpectEquality(t, m.CPU.Clock, 64*10)

	// the raster register is derived from the restored CPU
	test.ExpectEquality(t, m.Mem.Read(0xd012), 10)

	// and the restored CPU reads from the machine's memory
	s.RAM[0x3000] = 0xea
	s.Registers.PC = 0x3000
	test.DemandSuccess(t, m.Restore(s))
	test.ExpectEquality(t, m.CPU.Disassemble(), "3000  ea        NOP")
}

func TestBadSnapshot(t *testing.T) {
	m, err := hardware.NewMachine(testROMs(), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.RunForFrameCount(3, nil))
	before := m.Snapshot()

	err = m.Restore(nil)
	test.ExpectSuccess(t, errors.Is(err, hardware.ErrBadSnapshot))

	bad := m.Snapshot()
	bad.RAM = bad.RAM[:1000]
	bad.Registers.PC = 0x1234
	err = m.Restore(bad)
	test.ExpectSuccess(t, errors.Is(err, hardware.ErrBadSnapshot))

	// machine is unchanged
	now := m.Snapshot()
	test.ExpectEquality(t, now.Registers, before.Registers)
	test.ExpectEquality(t, now.Ticks, before.Ticks)
	test.ExpectEquality(t, string(now.RAM), string(before.RAM))
}

func TestSnapshotVideoDigest(t *testing.T) {
	// interrupt routine increments the border colour so that consecutive
	// frames are different
	roms := testROMs()
	copy(roms.KERNAL[0x0100:], []uint8{0xee, 0x20, 0xd0, 0x40})

	a, err := hardware.NewMachine(roms, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, a.RunForFrameCount(7, nil))

	b, err := hardware.NewMachine(roms, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, b.Restore(a.Snapshot()))

	da := digest.NewVideo()
	a.AttachRenderer(da)
	db := digest.NewVideo()
	b.AttachRenderer(db)

	test.DemandSuccess(t, a.RunForFrameCount(20, nil))
	test.DemandSuccess(t, b.RunForFrameCount(20, nil))
	test.ExpectEquality(t, da.Frames(), 10)
	test.ExpectEquality(t, da.Hash(), db.Hash())

	// one more frame on one machine only
	test.DemandSuccess(t, a.RunForFrameCount(2, nil))
	test.ExpectInequality(t, da.Hash(), db.Hash())
}
