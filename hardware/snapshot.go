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

package hardware

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/logger"
)

// ErrBadSnapshot is returned by Restore() when the snapshot cannot be used.
var ErrBadSnapshot = errors.New("bad snapshot")

// RAMSize is the required length of Snapshot.RAM.
const RAMSize = 65536

// Snapshot is a copy of the state of the machine. It is produced by the
// Snapshot() function and can be restored with the Restore() function.
//
// ROMs are not part of the snapshot.
type Snapshot struct {
	RAM       []uint8
	Registers cpu.Registers
	Ticks     int

	// the cycle balance of the CPU. restoring this value means that execution
	// continues exactly as it would have done had the snapshot not been taken
	Clock int
}

// Snapshot the state of the machine. Should only be called between ticks.
func (m *Machine) Snapshot() *Snapshot {
	return &Snapshot{
		RAM:       m.Mem.CopyRAM(),
		Registers: m.CPU.Registers(),
		Ticks:     m.ticks,
		Clock:     m.CPU.Clock,
	}
}

// Validate checks that the snapshot can be restored. Errors wrap
// ErrBadSnapshot.
func (s *Snapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("machine: %w: nil snapshot", ErrBadSnapshot)
	}
	if len(s.RAM) != RAMSize {
		return fmt.Errorf("machine: %w: RAM is %d bytes, expected %d", ErrBadSnapshot, len(s.RAM), RAMSize)
	}
	if s.Ticks < 0 {
		return fmt.Errorf("machine: %w: negative tick count", ErrBadSnapshot)
	}
	return nil
}

// Restore a previously taken snapshot. The snapshot is copied so it can be
// restored again later. If the snapshot is not valid the machine is left
// untouched. Should only be called between ticks.
func (m *Machine) Restore(s *Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}

	// length has been checked by Validate() so this cannot fail
	if err := m.Mem.LoadRAM(s.RAM); err != nil {
		return fmt.Errorf("machine: %w: %w", ErrBadSnapshot, err)
	}

	// the restored CPU replaces the current CPU entirely. memory must be
	// plumbed in both directions because memory uses the CPU as its clock
	// source
	mc := m.CPU.Snapshot()
	mc.LoadRegisters(s.Registers)
	mc.Clock = s.Clock
	mc.LastResult = cpu.Result{}
	mc.Plumb(m.Mem)
	m.CPU = mc
	m.Mem.Plumb(m.CPU)

	m.ticks = s.Ticks

	logger.Logf(logger.Allow, "machine", "restored snapshot: tick=%d %s", m.ticks, m.CPU)

	return nil
}
