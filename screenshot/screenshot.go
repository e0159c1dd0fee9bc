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

// Package screenshot saves images of the machine's display. Images are
// corrected to a 4:3 aspect ratio before saving.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/paths"
	"golang.org/x/image/draw"
)

// AspectCorrect scales the image so that it is presented with a 4:3 aspect
// ratio. The height of the result is the height of the source multiplied by
// scale and the width is derived from that.
func AspectCorrect(src image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	h := src.Bounds().Dy() * scale
	w := int(math.Round(float64(h) * 4 / 3))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst
}

// Write the aspect corrected image to the io.Writer as a PNG.
func Write(w io.Writer, src image.Image, scale int) error {
	if err := png.Encode(w, AspectCorrect(src, scale)); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return nil
}

// Save the aspect corrected image to a file with a unique name in the current
// directory. The name of the file is returned.
func Save(src image.Image, scale int, label string) (string, error) {
	path := fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", label))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	err = Write(f, src, scale)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("screenshot: %w", cerr)
	}
	if err != nil {
		return "", err
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)

	return path, nil
}
