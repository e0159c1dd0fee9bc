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

//go:build !release

package paths

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/gopher64/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	pth, err := ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher64/foo/bar/baz")

	// directory has been created but not the resource
	_, err = os.Stat(".gopher64/foo/bar")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(".gopher64/foo/bar/baz")
	test.ExpectFailure(t, err)

	pth, err = ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher64/foo/bar")

	pth, err = ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher64/baz")

	pth, err = ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher64")
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("screenshot", "", n), "screenshot_20240305_070809")
	test.ExpectEquality(t, uniqueFilename("screenshot", " basic ", n), "screenshot_basic_20240305_070809")
}
