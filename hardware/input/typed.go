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

package input

import (
	"time"
)

// Delays between keys when typing text.
const (
	CharacterDelay = 30 * time.Millisecond
	NewlineDelay   = 70 * time.Millisecond
)

// TypedEntry is a single key in the TypedQueue. The delay is the time to wait
// after the previous key before the key is released.
type TypedEntry struct {
	Delay time.Duration
	Code  uint8
}

// TypedQueue is an ordered queue of keys released over time. Text pushed onto
// the queue follows on from text already in the queue.
type TypedQueue struct {
	entries []TypedEntry

	// delay to use for the next entry added to the queue
	gap time.Duration

	// time accumulated towards the delay of the entry at the head of the
	// queue
	waited time.Duration
}

// NewTypedQueue is the preferred method of initialisation for TypedQueue.
func NewTypedQueue() *TypedQueue {
	return &TypedQueue{}
}

// Push text onto the queue. Carriage returns are skipped and newlines are
// typed as the Enter key. Characters that have no key code are not typed but
// still take up time.
func (q *TypedQueue) Push(text string) {
	for _, r := range text {
		if r == '\r' {
			continue
		}

		if code, ok := mapRune(r); ok {
			q.entries = append(q.entries, TypedEntry{Delay: q.gap, Code: code})
			q.gap = 0
		}

		if r == '\n' {
			q.gap += NewlineDelay
		} else {
			q.gap += CharacterDelay
		}
	}
}

// Wait adds time before the next entry pushed onto the queue.
func (q *TypedQueue) Wait(d time.Duration) {
	q.gap += d
}

// Advance moves time forward and returns the key codes that are now due, in
// order. Returns nil if no keys are due.
func (q *TypedQueue) Advance(d time.Duration) []uint8 {
	var due []uint8

	q.waited += d
	for len(q.entries) > 0 && q.waited >= q.entries[0].Delay {
		q.waited -= q.entries[0].Delay
		due = append(due, q.entries[0].Code)
		q.entries = q.entries[1:]
	}

	// time passing while the queue is empty counts towards the next entry
	if len(q.entries) == 0 {
		q.gap = max(0, q.gap-q.waited)
		q.waited = 0
	}

	return due
}

// Len returns the number of keys yet to be released.
func (q *TypedQueue) Len() int {
	return len(q.entries)
}

// Entries returns a copy of the queue.
func (q *TypedQueue) Entries() []TypedEntry {
	return append([]TypedEntry(nil), q.entries...)
}

// Clear the queue.
func (q *TypedQueue) Clear() {
	q.entries = q.entries[:0]
	q.gap = 0
	q.waited = 0
}
