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

// Package romset loads the three ROM images required by the machine from
// disk. By default the images are found in the "roms" resource directory
// (see the paths package) with the following names:
//
//	basic.bin
//	kernal.bin
//	chargen.bin
package romset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/paths"
)

// ErrSize is returned when a ROM file is not the expected size.
var ErrSize = errors.New("ROM file is the wrong size")

// Filenames of the ROM images.
const (
	BASICFile  = "basic.bin"
	KERNALFile = "kernal.bin"
	CharFile   = "chargen.bin"
)

// DefaultDir returns the default directory for ROM images.
func DefaultDir() (string, error) {
	return paths.ResourcePath("roms", "")
}

// Load the ROM images from the directory.
func Load(dir string) (memory.ROMs, error) {
	var roms memory.ROMs
	var err error

	roms.BASIC, err = load(filepath.Join(dir, BASICFile), memory.BASICSize)
	if err != nil {
		return memory.ROMs{}, err
	}

	roms.KERNAL, err = load(filepath.Join(dir, KERNALFile), memory.KERNALSize)
	if err != nil {
		return memory.ROMs{}, err
	}

	roms.Char, err = load(filepath.Join(dir, CharFile), memory.CharSize)
	if err != nil {
		return memory.ROMs{}, err
	}

	logger.Logf(logger.Allow, "romset", "loaded ROMs from %s", dir)

	return roms, nil
}

func load(filename string, size int) ([]uint8, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("romset: %w", err)
	}
	if len(d) != size {
		return nil, fmt.Errorf("romset: %w: %s is %d bytes, expected %d", ErrSize, filename, len(d), size)
	}
	return d, nil
}
