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

// Package version reports the version of the application. Version numbers
// are set at link time with:
//
//	-ldflags "-X github.com/jetsetilly/gopher64/version.number=v0.1.0"
//
// Without a version number the VCS revision from the build information is
// used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher64"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	// the version number or one of "unreleased" or "local". unreleased means
	// there is VCS information but no version number. local means that there
	// is neither
	Version string

	// the VCS revision. suffixed with "+dirty" if the source was modified
	Revision string

	// true if Version is a version number
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return inf.Version
	}
	return fmt.Sprintf("%s (%s)", inf.Version, inf.Revision)
}

// Current returns the Info for the running binary.
func Current() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(nil)
	}
	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) Info {
	var inf Info
	var vcs bool
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			inf.Revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}

// Title returns a string suitable for window titles.
func Title() string {
	return fmt.Sprintf("%s %s", ApplicationName, Current())
}
