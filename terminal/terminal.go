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

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/govern"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/performance/limiter"
	"github.com/jetsetilly/gopher64/terminal/easyterm"
)

// the number of ticks between checks for a change to the screen
const redrawPeriod = 15

// events are sent from the input goroutine to the emulation goroutine
type event struct {
	key     string
	command string
	quit    bool
}

// Host runs the machine in a terminal.
type Host struct {
	m    *hardware.Machine
	term *easyterm.Terminal
	lim  *limiter.Limiter

	// the terminal when running but can be any io.Writer for testing
	output io.Writer

	// default file for the SAVE and LOAD commands
	statePath string

	events chan event

	// the screen is not redrawn while the command prompt is open
	prompting atomic.Bool

	lastScreen string
	redraw     int
}

func newHost(m *hardware.Machine, output io.Writer, statePath string) *Host {
	return &Host{
		m:         m,
		output:    output,
		statePath: statePath,
		lim:       limiter.NewLimiter(clocks.TickRate),
		events:    make(chan event, 64),
	}
}

// NewHost is the preferred method of initialisation for the Host type. The
// terminal must have been initialised.
func NewHost(m *hardware.Machine, term *easyterm.Terminal, statePath string) *Host {
	h := newHost(m, term, statePath)
	h.term = term
	return h
}

// Run the machine until the user quits. The terminal is put into cbreak mode
// for the duration.
func (h *Host) Run() error {
	h.term.CBreakMode()
	defer h.term.CanonicalMode()

	h.term.Print("%s%s", easyterm.ClearScreen, easyterm.CursorHome)

	go h.readInput(h.term)

	err := h.m.Run(h.continueCheck)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	h.term.Print("\n")
	return nil
}

// readInput runs in its own goroutine and sends events to the emulation
// goroutine.
func (h *Host) readInput(input io.Reader) {
	rd := bufio.NewReader(input)
	buf := make([]byte, 16)

	for {
		n, err := rd.Read(buf)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Log(logger.Allow, "terminal", err)
			}
			h.events <- event{quit: true}
			return
		}

		b := buf[:n]
		for len(b) > 0 {
			switch b[0] {
			case easyterm.KeyInterrupt:
				h.events <- event{quit: true}
				return

			case easyterm.KeySuspend:
				h.term.SuspendProcess()
				h.term.CBreakMode()
				b = b[1:]
				continue

			case easyterm.KeyTab:
				h.events <- event{command: h.prompt(rd)}
				b = b[1:]
				continue
			}

			key, consumed := translate(b)
			if consumed == 0 {
				// incomplete sequences are discarded
				break
			}
			if key != "" {
				h.events <- event{key: key}
			}
			b = b[consumed:]
		}
	}
}

// prompt the user for a command. the terminal is put into canonical mode
// while the user is typing.
func (h *Host) prompt(rd *bufio.Reader) string {
	h.prompting.Store(true)
	defer h.prompting.Store(false)

	if h.term != nil {
		h.term.CanonicalMode()
		defer h.term.CBreakMode()
	}

	fmt.Fprint(h.output, "\n> ")
	s, _ := rd.ReadString('\n')
	return strings.TrimSpace(s)
}

// the continueCheck function for the hardware.Machine.Run() function. all
// access to the machine happens from here.
func (h *Host) continueCheck() (govern.State, error) {
	h.lim.Wait()

	for {
		select {
		case ev := <-h.events:
			if ev.quit {
				return govern.Ending, nil
			}
			if ev.command != "" {
				err := h.execute(ev.command)
				if errors.Is(err, errQuit) {
					return govern.Ending, nil
				}
				if err != nil {
					fmt.Fprintf(h.output, "%v\n", err)
				}
				h.lastScreen = ""
			}
			if ev.key != "" {
				if !h.m.PressKey(ev.key) {
					logger.Logf(logger.Allow, "terminal", "key dropped (%s)", ev.key)
				}
			}
		default:
			h.redraw++
			if h.redraw >= redrawPeriod {
				h.redraw = 0
				h.drawScreen()
			}
			return govern.Running, nil
		}
	}
}

// drawScreen writes the screen text to the output if it has changed since
// the last draw.
func (h *Host) drawScreen() {
	if h.prompting.Load() {
		return
	}

	scr := h.m.ScreenText()
	if scr == h.lastScreen {
		return
	}
	h.lastScreen = scr

	var cols int
	if h.term != nil {
		cols = int(h.term.Geometry().Cols)
	}

	s := &strings.Builder{}
	s.WriteString(easyterm.CursorHome)
	for _, l := range strings.Split(strings.TrimSuffix(scr, "\n"), "\n") {
		if cols > 0 && len(l) > cols {
			l = l[:cols]
		}
		s.WriteString(easyterm.ClearLine)
		s.WriteString(l)
		s.WriteString("\r\n")
	}
	io.WriteString(h.output, s.String())
}
