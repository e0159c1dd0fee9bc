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

// Package clocks defines the constant values that govern the speed of the
// emulation.
//
// The machine does not emulate the video chip cycle by cycle. Instead the CPU
// is given a budget of cycles for every frame and the raster line is derived
// from the CPU's cycle count.
package clocks

// CyclesPerFrame is the budget of CPU cycles given to every call to Tick().
// This is the PAL CPU clock of 0.985248MHz divided by TickRate.
const CyclesPerFrame = 16421

// RasterLines is the number of raster lines in a PAL frame.
const RasterLines = 313

// CyclesPerLine is the approximate number of CPU cycles per raster line. The
// raster line is derived by shifting the cycle count rather than dividing.
const CyclesPerLine = 64

// TickRate is the number of times per second that Tick() should be called by
// a host. This is the refresh rate of a typical display rather than the
// frequency of a PAL television.
const TickRate = 60.0

// RenderDivisor is the number of ticks between rendered frames.
const RenderDivisor = 2
