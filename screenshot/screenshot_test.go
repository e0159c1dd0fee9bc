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

package screenshot_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/video"
	"github.com/jetsetilly/gopher64/screenshot"
	"github.com/jetsetilly/gopher64/test"
)

func TestAspectCorrect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))
	src.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})

	img := screenshot.AspectCorrect(src, 1)
	test.ExpectEquality(t, img.Bounds().Dy(), video.Height)
	test.ExpectEquality(t, img.Bounds().Dx(), 363)
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 0xff, A: 0xff})

	img = screenshot.AspectCorrect(src, 2)
	test.ExpectEquality(t, img.Bounds().Dy(), video.Height*2)
	test.ExpectEquality(t, img.Bounds().Dx(), 725)

	// scale values less than one are treated as one
	img = screenshot.AspectCorrect(src, 0)
	test.ExpectEquality(t, img.Bounds().Dy(), video.Height)
}

func TestWrite(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))

	var b bytes.Buffer
	test.DemandSuccess(t, screenshot.Write(&b, src, 1))

	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 363)
	test.ExpectEquality(t, img.Bounds().Dy(), video.Height)
}
