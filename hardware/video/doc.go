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

// Package video composites the text screen of the machine into an image.
//
// The compositor reads screen RAM, colour RAM, the border and background
// colour registers and the character ROM and draws a 384x272 image. The text
// area is 320x200 pixels and is placed inside the border at (32, 36). There
// is no emulation of bitmap modes, sprites or smooth scrolling.
//
// Hosts receive frames through the Renderer interface.
package video
