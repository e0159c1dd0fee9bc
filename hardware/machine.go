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

	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/input"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/hardware/video"
	"github.com/jetsetilly/gopher64/logger"
)

// Machine is the emulated computer.
type Machine struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	Input *input.Input
	Video *video.Compositor

	// the renderer is not part of the machine but is attached to it. can be
	// nil
	renderer video.Renderer

	// number of ticks since reset
	ticks int
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The machine is reset and ready to run.
func NewMachine(roms memory.ROMs, renderer video.Renderer) (*Machine, error) {
	mem, err := memory.NewMemory(roms)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	m := &Machine{
		Mem:      mem,
		renderer: renderer,
	}

	m.CPU = cpu.NewCPU(m.Mem)
	m.Mem.Plumb(m.CPU)
	m.Input = input.NewInput(m.Mem)
	m.Video = video.NewCompositor(m.Mem)

	m.Reset()

	return m, nil
}

// AttachRenderer replaces the renderer. A nil renderer means frames are
// composited but not presented.
func (m *Machine) AttachRenderer(renderer video.Renderer) {
	m.renderer = renderer
}

// values written to RAM after it has been cleared by Reset()
var resetValues = []struct {
	address uint16
	value   uint8
}{
	{0x0000, 0x2f},
	{memorymap.BankSelect, 0x07},
	{memorymap.KeyboardBufferLen, 0x00},
	{0x0286, 0x0e},
	{memorymap.BorderColour, 0x0e},
	{memorymap.BackgroundColour, 0x06},

	// IRQ, BRK and NMI vectors
	{0x0314, 0x31},
	{0x0315, 0xea},
	{0x0316, 0x66},
	{0x0317, 0xfe},
	{0x0318, 0x47},
	{0x0319, 0xfe},
}

// Reset the machine. RAM is cleared and seeded with the values the KERNAL
// expects. The CPU is then reset, which loads the PC from the reset vector in
// the KERNAL ROM.
func (m *Machine) Reset() {
	m.Mem.Clear()
	for _, v := range resetValues {
		m.Mem.Poke(v.address, v.value)
	}
	m.CPU.Reset()
	m.Input.Clear()
	m.ticks = 0
	logger.Logf(logger.Allow, "machine", "reset: PC=%s", m.CPU.PC)
}

// Ticks returns the number of ticks since the last reset.
func (m *Machine) Ticks() int {
	return m.ticks
}

// Tick runs the machine for one frame. The CPU is given a budget of
// clocks.CyclesPerFrame and an interrupt request is raised afterwards. The
// screen is composited and sent to the renderer on every other tick.
//
// The only error returned is from the renderer.
func (m *Machine) Tick() error {
	m.CPU.Execute(clocks.CyclesPerFrame)
	m.CPU.IRQ()

	render := m.ticks%clocks.RenderDivisor == 0
	m.ticks++

	if render {
		img := m.Video.Render()
		if m.renderer != nil {
			if err := m.renderer.NewFrame(img); err != nil {
				return fmt.Errorf("machine: %w", err)
			}
		}
	}

	return nil
}

// Break interrupts the CPU regardless of the interrupt disable flag. This is
// an approximation of the RUN/STOP key.
func (m *Machine) Break() {
	m.CPU.ForceBreak()
	logger.Logf(logger.Allow, "machine", "break: PC=%s", m.CPU.PC)
}

// InjectKey puts the key code into the keyboard buffer. Returns false if the
// buffer is full and the key has been dropped.
func (m *Machine) InjectKey(code uint8) bool {
	return input.Inject(m.Mem, code)
}

// PressKey maps the named key and puts it into the keyboard buffer. Returns
// false if the name has no key code or if the buffer is full.
func (m *Machine) PressKey(name string) bool {
	return m.Input.Press(name)
}

// Type text into the machine. The text is queued and released over time by
// the Input.Process() function.
func (m *Machine) Type(text string) {
	m.Input.Type(text)
}

// ScreenText returns the current contents of the screen as text.
func (m *Machine) ScreenText() string {
	return video.ScreenText(m.Mem)
}

func (m *Machine) String() string {
	return fmt.Sprintf("tick=%d %s", m.ticks, m.CPU)
}
