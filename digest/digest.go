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

// Package digest is used to create mathematical hashes of the machine's
// output. Two runs of the machine that produce the same digest can be
// considered to have produced the same output.
//
// The Video type implements the video.Renderer interface and can be attached
// to a machine with the hardware.Machine.AttachRenderer() function.
package digest

// Digest implementations compute a hash of some aspect of the emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
