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

// Package terminal is a text console host for the machine. Keys typed at the
// terminal are sent to the machine as they are pressed and the machine's
// screen is drawn as text whenever it changes.
//
// Pressing TAB opens a command prompt. Commands are not case sensitive:
//
//	RESET, NEW, LIST, RUN, STOP    host control actions
//	TYPE <text>                    type text followed by RETURN
//	PASTE <file>                   enter the contents of a file as BASIC
//	SCREEN                         print the screen text
//	MEM <from> [<to>]              hex dump of RAM (addresses in hex)
//	CPU                            print the CPU registers and next instruction
//	SAVE [<file>]                  save the machine state
//	LOAD [<file>]                  restore the machine state
//	SCREENSHOT                     save an image of the display
//	LOG [<n>]                      print the last n log entries
//	HELP                           list commands
//	QUIT                           end the session
//
// Ctrl-C also ends the session.
package terminal
