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

package video_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/video"
	"github.com/jetsetilly/gopher64/test"
)

type mockBus struct {
	ram  [0x10000]uint8
	char [4096]uint8
}

func (bus *mockBus) Peek(address uint16) uint8 {
	return bus.ram[address]
}

func (bus *mockBus) Char(offset uint16) uint8 {
	return bus.char[int(offset)%len(bus.char)]
}

func TestPalette(t *testing.T) {
	test.ExpectEquality(t, video.Palette[0], color.RGBA{A: 0xff})
	test.ExpectEquality(t, video.Palette[2], color.RGBA{R: 0x68, G: 0x37, B: 0x2b, A: 0xff})
	test.ExpectEquality(t, video.Colour(0xf1), video.Palette[1])
}

func TestGeometry(t *testing.T) {
	test.ExpectEquality(t, video.BorderX, 32)
	test.ExpectEquality(t, video.BorderY, 36)
}

func TestRender(t *testing.T) {
	bus := &mockBus{}

	// light blue border and blue background
	bus.ram[0xd020] = 0x0e
	bus.ram[0xd021] = 0xf6

	// glyph 1 is a single pixel in the top left and a single pixel in the
	// bottom right. glyph 0 is empty
	bus.char[8] = 0x80
	bus.char[15] = 0x01

	// first cell uses glyph 1 in white. second cell in red
	bus.ram[0x0400] = 0x01
	bus.ram[0xd800] = 0x01
	bus.ram[0x0401] = 0x01
	bus.ram[0xd801] = 0x02

	// third cell uses the empty glyph with a yellow foreground
	bus.ram[0x0402] = 0x00
	bus.ram[0xd802] = 0x07

	cmp := video.NewCompositor(bus)
	img := cmp.Render()
	test.ExpectEquality(t, img.Bounds().Dx(), video.Width)
	test.ExpectEquality(t, img.Bounds().Dy(), video.Height)

	border := video.Palette[0x0e]
	background := video.Palette[0x06]

	test.ExpectEquality(t, img.RGBAAt(0, 0), border)
	test.ExpectEquality(t, img.RGBAAt(31, 36), border)
	test.ExpectEquality(t, img.RGBAAt(383, 271), border)
	test.ExpectEquality(t, img.RGBAAt(352, 236), border)

	test.ExpectEquality(t, img.RGBAAt(32, 36), video.Palette[1])
	test.ExpectEquality(t, img.RGBAAt(33, 36), background)
	test.ExpectEquality(t, img.RGBAAt(39, 43), video.Palette[1])
	test.ExpectEquality(t, img.RGBAAt(40, 36), video.Palette[2])
	test.ExpectEquality(t, img.RGBAAt(47, 43), video.Palette[2])

	// every pixel of the first cell other than the two set pixels is
	// background
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x == 0 && y == 0) || (x == 7 && y == 7) {
				continue
			}
			test.ExpectEquality(t, img.RGBAAt(32+x, 36+y), background, x, y)
		}
	}

	// the whole of a cell using the empty glyph shows the background
	// regardless of the foreground colour
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			test.ExpectEquality(t, img.RGBAAt(48+x, 36+y), background, x, y)
		}
	}
	test.ExpectEquality(t, img.RGBAAt(351, 235), background)

	// rendering again after a change to the border
	bus.ram[0xd020] = 0x00
	cmp.Render()
	test.ExpectEquality(t, cmp.Image().RGBAAt(0, 0), video.Palette[0])
}

func TestScreenText(t *testing.T) {
	bus := &mockBus{}
	for i := 0; i < 1000; i++ {
		bus.ram[0x0400+i] = 0x20
	}

	// READY. in screen codes
	copy(bus.ram[0x0400+40:], []uint8{0x12, 0x05, 0x01, 0x04, 0x19, 0x2e})

	// reversed space for the cursor
	bus.ram[0x0400+80] = 0xa0

	s := video.ScreenText(bus)
	lines := strings.Split(s, "\n")
	test.DemandEquality(t, len(lines), video.Rows+1)
	test.ExpectEquality(t, lines[0], "")
	test.ExpectEquality(t, lines[1], "READY.")
	test.ExpectEquality(t, lines[2], "")
}
