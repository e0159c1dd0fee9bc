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

package basic_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher64/basic"
	"github.com/jetsetilly/gopher64/hardware/input"
	"github.com/jetsetilly/gopher64/test"
)

func TestIsRunnable(t *testing.T) {
	test.ExpectSuccess(t, basic.IsRunnable("10 PRINT \"HELLO\"\n20 GOTO 10"))
	test.ExpectSuccess(t, basic.IsRunnable("\n\n  10 PRINT 1\n"))
	test.ExpectSuccess(t, basic.IsRunnable("print 2+2"))
	test.ExpectSuccess(t, basic.IsRunnable("POKE 53280,0\nPOKE 53281,0"))
	test.ExpectSuccess(t, basic.IsRunnable("for i=1 to 10:print i:next"))

	test.ExpectFailure(t, basic.IsRunnable(""))
	test.ExpectFailure(t, basic.IsRunnable("   \n  "))
	test.ExpectFailure(t, basic.IsRunnable("READY."))
	test.ExpectFailure(t, basic.IsRunnable("**** COMMODORE 64 BASIC V2 ****"))

	// direct commands are limited to four lines
	test.ExpectFailure(t, basic.IsRunnable("PRINT 1\nPRINT 2\nPRINT 3\nPRINT 4\nPRINT 5"))

	// keyword must be complete
	test.ExpectFailure(t, basic.IsRunnable("PRINTER"))

	// line numbers have at most five digits and must be followed by space
	test.ExpectFailure(t, basic.IsRunnable("123456 PRINT"))
	test.ExpectFailure(t, basic.IsRunnable("10PRINT"))
}

func TestEnterDirect(t *testing.T) {
	q := input.NewTypedQueue()
	basic.Enter(q, "print 1\r\n")

	var s []uint8
	for _, e := range q.Entries() {
		s = append(s, e.Code)
	}
	test.ExpectEquality(t, string(s), "PRINT 1\r\r")
}

func TestEnterProgram(t *testing.T) {
	q := input.NewTypedQueue()
	basic.Enter(q, "10 PRINT 1")

	var s []uint8
	var elapsed time.Duration
	var programStart time.Duration
	for i, e := range q.Entries() {
		elapsed += e.Delay
		s = append(s, e.Code)

		// the first character of the program comes after NEW and the enter key
		if i == 4 {
			programStart = elapsed
		}
	}
	test.ExpectEquality(t, string(s), "NEW\r10 PRINT 1\rRUN\r")
	test.ExpectEquality(t, programStart, basic.ProgramDelay)
}
