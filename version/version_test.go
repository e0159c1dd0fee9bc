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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/gopher64/test"
)

func TestFromSettings(t *testing.T) {
	inf := fromSettings(nil)
	test.ExpectEquality(t, inf.Version, "local")
	test.ExpectEquality(t, inf.Release, false)
	test.ExpectEquality(t, inf.String(), "local (no revision information)")

	inf = fromSettings([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectEquality(t, inf.Version, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")

	number = "v1.0.0"
	defer func() { number = "" }()
	inf = fromSettings(nil)
	test.ExpectEquality(t, inf.Release, true)
	test.ExpectEquality(t, inf.String(), "v1.0.0")
}
