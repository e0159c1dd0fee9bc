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

package sdl

import (
	"image"
	"math"

	"github.com/jetsetilly/gopher64/hardware/video"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

func (scr *SdlC64) createTexture() error {
	var err error

	// texture is the same size as the composited image. scaling is applied
	// by the renderer in order to fit it in the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, video.Height)
	return err
}

// windowSize returns the size of the window for the scale value. the window
// has an aspect ratio of 4:3
func windowSize(scale int) (int32, int32) {
	if scale < 1 {
		scale = 1
	}
	h := video.Height * scale
	w := int(math.Round(float64(h) * 4 / 3))
	return int32(w), int32(h)
}

func (scr *SdlC64) setScaling(scale int) {
	scr.scale = scale
	w, h := windowSize(scale)
	scr.window.SetSize(w, h)
}

// NewFrame implements the video.Renderer interface.
func (scr *SdlC64) NewFrame(img *image.RGBA) error {
	scr.overlay.Draw(img)

	// image.RGBA pixels are in the same byte order as PIXELFORMAT_ABGR8888
	// on little-endian machines
	err := scr.texture.Update(nil, img.Pix, img.Stride)
	if err != nil {
		return err
	}

	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
