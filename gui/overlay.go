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

package gui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// OverlayDuration is the number of frames a message remains on screen.
const OverlayDuration = 60

var (
	overlayBackground = image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 0xc0})
	overlayText       = image.NewUniform(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
)

// Overlay draws short status messages over the display.
type Overlay struct {
	message string
	frames  int
}

// Show the message for OverlayDuration frames. Any existing message is
// replaced.
func (ov *Overlay) Show(message string) {
	ov.message = message
	ov.frames = OverlayDuration
}

// Message returns the current message. The empty string if there is no
// message.
func (ov *Overlay) Message() string {
	if ov.frames <= 0 {
		return ""
	}
	return ov.message
}

// Draw the current message onto the image at the bottom of the display. Draw
// should be called once per frame. Returns true if anything was drawn.
func (ov *Overlay) Draw(img draw.Image) bool {
	if ov.frames <= 0 {
		return false
	}
	ov.frames--

	face := basicfont.Face7x13
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil() + 4

	b := img.Bounds()
	bar := image.Rect(b.Min.X, b.Max.Y-height, b.Max.X, b.Max.Y)
	draw.Draw(img, bar, overlayBackground, image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  overlayText,
		Face: face,
		Dot:  fixed.P(bar.Min.X+4, bar.Min.Y+2+metrics.Ascent.Ceil()),
	}
	d.DrawString(ov.message)

	return true
}
