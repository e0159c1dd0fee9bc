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

package romset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/romset"
	"github.com/jetsetilly/gopher64/test"
)

func writeROM(t *testing.T, dir string, name string, size int) {
	t.Helper()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0600))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := romset.Load(dir)
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	writeROM(t, dir, romset.BASICFile, memory.BASICSize)
	writeROM(t, dir, romset.KERNALFile, memory.KERNALSize)
	writeROM(t, dir, romset.CharFile, 2048)

	_, err = romset.Load(dir)
	test.ExpectSuccess(t, errors.Is(err, romset.ErrSize))

	writeROM(t, dir, romset.CharFile, memory.CharSize)
	roms, err := romset.Load(dir)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, roms.Validate())
}
