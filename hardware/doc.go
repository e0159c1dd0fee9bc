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

// Package hardware is the base package for the emulation. The Machine type
// ties together the CPU, memory, input and video compositor.
//
// The emulation is driven one frame at a time by the Tick() function. Each
// tick gives the CPU a fixed budget of cycles, raises an interrupt request
// and composites the screen on every other tick. There is no cycle accurate
// relationship between the CPU and the video chip. Instead, the raster line
// seen by the CPU is derived from the CPU's cycle balance.
//
// The Run() and RunForFrameCount() functions are convenient loops for hosts.
// The continueCheck function is called after every tick and controls whether
// the loop continues.
//
// The Machine is not safe for concurrent use. Hosts that read input on
// another goroutine must pass it to the goroutine running the machine.
package hardware
