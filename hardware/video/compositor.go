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

import (
	"image"
	"image/color"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// Dimensions of the composited image.
const (
	Width  = 384
	Height = 272
)

// Dimensions and placement of the text area.
const (
	ScreenWidth  = 320
	ScreenHeight = 200
	BorderX      = (Width - ScreenWidth) / 2
	BorderY      = (Height - ScreenHeight) / 2
	Columns      = 40
	Rows         = 25
	GlyphSize    = 8
)

// Bus defines the memory functions required by the compositor. Peek should
// bypass the memory map.
type Bus interface {
	Peek(address uint16) uint8
	Char(offset uint16) uint8
}

// Renderer implementations receive composited frames. The image is owned by
// the compositor and will be overwritten by the next frame. Implementations
// that need the frame for longer must copy it.
type Renderer interface {
	NewFrame(img *image.RGBA) error
}

// Compositor draws the text screen.
type Compositor struct {
	bus Bus
	img *image.RGBA
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type.
func NewCompositor(bus Bus) *Compositor {
	return &Compositor{
		bus: bus,
		img: image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
}

// Image returns the most recently composited frame.
func (cmp *Compositor) Image() *image.RGBA {
	return cmp.img
}

// Render the screen and return the image.
func (cmp *Compositor) Render() *image.RGBA {
	border := Colour(cmp.bus.Peek(memorymap.BorderColour))
	background := Colour(cmp.bus.Peek(memorymap.BackgroundColour))

	fill(cmp.img, cmp.img.Rect, border)
	fill(cmp.img, image.Rect(BorderX, BorderY, BorderX+ScreenWidth, BorderY+ScreenHeight), background)

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			cell := uint16(row*Columns + col)
			code := cmp.bus.Peek(memorymap.ScreenRAM + cell)
			fg := Colour(cmp.bus.Peek(memorymap.OriginColourRAM + cell))
			cmp.glyph(BorderX+col*GlyphSize, BorderY+row*GlyphSize, code, fg)
		}
	}

	return cmp.img
}

// draw the set bits of a glyph. unset bits are left as they are. the most
// significant bit of each byte is the leftmost pixel
func (cmp *Compositor) glyph(x, y int, code uint8, fg color.RGBA) {
	base := uint16(code) * GlyphSize
	for cy := 0; cy < GlyphSize; cy++ {
		line := cmp.bus.Char(base + uint16(cy))
		if line == 0 {
			continue
		}
		for cx := 0; cx < GlyphSize; cx++ {
			if line&(0x80>>cx) != 0 {
				cmp.img.SetRGBA(x+cx, y+cy, fg)
			}
		}
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
			i += 4
		}
	}
}
