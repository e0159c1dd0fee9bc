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

package video

import "image/color"

// PaletteRGB is the sixteen colour palette as packed 24 bit RGB values.
var PaletteRGB = [16]uint32{
	0x000000, 0xffffff, 0x68372b, 0x70a4b2,
	0x6f3d86, 0x588d43, 0x352879, 0xb8c76f,
	0x6f4f25, 0x433900, 0x9a6759, 0x444444,
	0x6c6c6c, 0x9ad284, 0x6c5eb5, 0x959595,
}

// Palette is the sixteen colour palette as color.RGBA values.
var Palette [16]color.RGBA

func init() {
	for i, c := range PaletteRGB {
		Palette[i] = color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
	}
}

// Colour returns the palette entry for the value. Only the lower four bits of
// the value are used.
func Colour(v uint8) color.RGBA {
	return Palette[v&0x0f]
}
