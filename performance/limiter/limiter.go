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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		machine.Tick()
//	}
package limiter

import (
	"time"
)

// Limiter will trigger a fixed number of times per second.
type Limiter struct {
	period time.Duration
	last   time.Time

	// the time measured between the last two calls to Wait()
	Elapsed time.Duration
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(ratePerSecond float64) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(ratePerSecond)
	return lim
}

// SetLimit changes the rate at which the Limiter triggers. A rate of zero or
// less means there is no limit.
func (lim *Limiter) SetLimit(ratePerSecond float64) {
	if ratePerSecond <= 0 {
		lim.period = 0
		return
	}
	lim.period = time.Duration(float64(time.Second) / ratePerSecond)
}

// Period returns the time between triggers.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// Wait will block until the period has elapsed since the previous trigger.
// If the caller is running late then there is no wait but the lateness is
// not carried forward beyond a single period.
func (lim *Limiter) Wait() {
	now := time.Now()
	if lim.last.IsZero() {
		lim.last = now
		return
	}

	next := lim.last.Add(lim.period)
	if d := next.Sub(now); d > 0 {
		time.Sleep(d)
		now = next
	} else if -d > lim.period {
		next = now
	}

	lim.Elapsed = now.Sub(lim.last)
	lim.last = next
}
