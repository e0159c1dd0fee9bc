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

package memory

import (
	"errors"
	"fmt"
)

// Required sizes of each ROM image.
const (
	BASICSize  = 8192
	KERNALSize = 8192
	CharSize   = 4096
)

// ErrROMSize is returned by NewMemory() when a ROM image is the wrong size.
var ErrROMSize = errors.New("wrong ROM size")

// ROMs are the three read-only images required by the machine.
type ROMs struct {
	BASIC  []uint8
	KERNAL []uint8
	Char   []uint8
}

// Validate checks that each image is the correct size.
func (r ROMs) Validate() error {
	if len(r.BASIC) != BASICSize {
		return fmt.Errorf("BASIC: %w: %d bytes, expected %d", ErrROMSize, len(r.BASIC), BASICSize)
	}
	if len(r.KERNAL) != KERNALSize {
		return fmt.Errorf("KERNAL: %w: %d bytes, expected %d", ErrROMSize, len(r.KERNAL), KERNALSize)
	}
	if len(r.Char) != CharSize {
		return fmt.Errorf("char: %w: %d bytes, expected %d", ErrROMSize, len(r.Char), CharSize)
	}
	return nil
}
