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

package digest_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/gopher64/digest"
	"github.com/jetsetilly/gopher64/test"
)

func TestVideo(t *testing.T) {
	var _ digest.Digest = digest.NewVideo()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	test.DemandSuccess(t, a.NewFrame(img))
	test.ExpectInequality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Frames(), 1)

	test.DemandSuccess(t, b.NewFrame(img))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// hashes are chained so a second identical frame changes the hash
	h := a.Hash()
	test.DemandSuccess(t, a.NewFrame(img))
	test.ExpectInequality(t, a.Hash(), h)

	// a different frame produces a different hash
	img.Pix[0] = 0xff
	test.DemandSuccess(t, b.NewFrame(img))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Frames(), 0)
	test.ExpectEquality(t, a.Hash(), digest.NewVideo().Hash())
}
