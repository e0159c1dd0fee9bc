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
	"fmt"
	"time"

	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/govern"
)

// TickDuration is the nominal time between ticks.
const TickDuration = time.Second / time.Duration(clocks.TickRate)

// It can be expensive to do a full continue check every tick. The
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run the emulation as quickly as possible. Input is processed before every
// tick as though TickDuration has passed. The continueCheck function is
// called after every tick and the loop ends when it returns govern.Ending or
// govern.Initialising.
//
// Hosts that need to throttle the emulation should do so in the
// continueCheck function.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state.Continue() {
		switch state {
		case govern.Running:
			m.Input.Process(TickDuration)
			if err := m.Tick(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return fmt.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of ticks. Useful
// for performance measurement and for tests.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := m.ticks + numFrames

	state := govern.Running
	for m.ticks < targetFrame && state != govern.Ending {
		m.Input.Process(TickDuration)
		if err := m.Tick(); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(m.ticks)
		if err != nil {
			return err
		}
	}

	return nil
}
