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

package basic

import (
	"regexp"
	"strings"
	"time"

	"github.com/jetsetilly/gopher64/hardware/input"
)

var (
	lineNumber       = regexp.MustCompile(`^\d{1,5}\s+`)
	anyLineNumber    = regexp.MustCompile(`(?m)^\s*\d+\s+`)
	immediateCommand = regexp.MustCompile(`^(PRINT|POKE|SYS|LOAD|RUN|LIST|NEW|FOR|IF|GOTO|GOSUB|REM)\b`)
)

// the maximum number of lines for text without line numbers to be considered
// runnable
const maxImmediateLines = 4

// IsRunnable returns true if the text looks like BASIC. Text is runnable if
// any line begins with a line number, or if it has no more than four lines
// and the first line begins with a BASIC command that can be used in direct
// mode. Blank lines are ignored.
func IsRunnable(text string) bool {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}

	if len(lines) == 0 {
		return false
	}

	for _, l := range lines {
		if lineNumber.MatchString(l) {
			return true
		}
	}

	return len(lines) <= maxImmediateLines && immediateCommand.MatchString(strings.ToUpper(lines[0]))
}

// Typist is the interface to the typed key queue used by Enter().
// input.TypedQueue implements this interface.
type Typist interface {
	Push(text string)
	Wait(d time.Duration)
}

// ProgramDelay is the time between starting to type NEW and starting to type
// a numbered program.
const ProgramDelay = 400 * time.Millisecond

const clearProgram = "NEW\n"

// Enter queues the text for typing. Carriage returns are removed. If the text
// contains line numbers then NEW is typed first and the program is followed
// by RUN. Otherwise the text is typed as a direct command and followed by
// Enter.
func Enter(q Typist, text string) {
	text = strings.ReplaceAll(text, "\r", "")

	if !anyLineNumber.MatchString(text) {
		q.Push(text + "\n")
		return
	}

	q.Push(clearProgram)
	q.Wait(ProgramDelay - typingDuration(clearProgram))
	q.Push(text + "\nRUN\n")
}

// the time taken from the first key of the text being released until the
// next key could be released
func typingDuration(text string) time.Duration {
	var d time.Duration
	for _, r := range text {
		switch r {
		case '\r':
		case '\n':
			d += input.NewlineDelay
		default:
			d += input.CharacterDelay
		}
	}
	return d
}
