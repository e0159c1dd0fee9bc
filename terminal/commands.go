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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher64/control"
	"github.com/jetsetilly/gopher64/hardware/video"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/screenshot"
	"github.com/jetsetilly/gopher64/state"
)

// returned by execute() when the session should end
var errQuit = errors.New("quit")

// the number of log entries printed by the LOG command if no number is given
const defaultLogTail = 10

const help = `RESET, NEW, LIST, RUN, STOP
TYPE <text>
PASTE <file>
SCREEN
MEM <from> [<to>]
CPU
SAVE [<file>]
LOAD [<file>]
SCREENSHOT
LOG [<n>]
HELP
QUIT
`

// parse a hex address. the address can be prefixed with $ or 0x
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("terminal: bad address (%s)", s)
	}
	return uint16(a), nil
}

// execute a single command line. errors returned by execute are to be
// reported to the user and do not end the session, with the exception of
// errQuit.
func (h *Host) execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	cmd, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)
	cmd = strings.ToUpper(cmd)

	if a, err := control.Parse(cmd); err == nil {
		control.Apply(h.m, a)
		return nil
	}

	switch cmd {
	case "QUIT", "EXIT":
		return errQuit

	case "HELP":
		fmt.Fprint(h.output, help)

	case "TYPE":
		h.m.Type(args + "\n")

	case "PASTE":
		if args == "" {
			return fmt.Errorf("terminal: PASTE requires a filename")
		}
		data, err := os.ReadFile(args)
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if !control.Paste(h.m, string(data)) {
			logger.Logf(logger.Allow, "terminal", "%s does not look like BASIC", args)
		}

	case "SCREEN":
		fmt.Fprint(h.output, h.m.ScreenText())

	case "MEM":
		f := strings.Fields(args)
		if len(f) == 0 || len(f) > 2 {
			return fmt.Errorf("terminal: MEM requires one or two addresses")
		}
		origin, err := parseAddress(f[0])
		if err != nil {
			return err
		}
		memtop := origin
		if len(f) == 2 {
			memtop, err = parseAddress(f[1])
			if err != nil {
				return err
			}
		}
		h.m.Mem.Dump(h.output, origin, memtop)

	case "CPU":
		fmt.Fprintln(h.output, h.m.CPU)
		fmt.Fprintln(h.output, h.m.CPU.Disassemble())

	case "SAVE":
		path := h.statePath
		if args != "" {
			path = args
		}
		if err := state.SaveFile(path, h.m.Snapshot()); err != nil {
			return err
		}
		fmt.Fprintf(h.output, "saved %s\n", path)

	case "LOAD":
		path := h.statePath
		if args != "" {
			path = args
		}
		s, err := state.LoadFile(path)
		if err != nil {
			return err
		}
		if err := h.m.Restore(s); err != nil {
			return err
		}
		fmt.Fprintf(h.output, "loaded %s\n", path)

	case "SCREENSHOT":
		path, err := screenshot.Save(h.m.Video.Render(), 2, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(h.output, "saved %s (%dx%d source)\n", path, video.Width, video.Height)

	case "LOG":
		n := defaultLogTail
		if args != "" {
			var err error
			n, err = strconv.Atoi(args)
			if err != nil || n < 0 {
				return fmt.Errorf("terminal: LOG requires a positive number")
			}
		}
		logger.Tail(h.output, n)

	default:
		return fmt.Errorf("terminal: unrecognised command (%s)", cmd)
	}

	return nil
}
