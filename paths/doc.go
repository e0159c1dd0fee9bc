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

// Package paths contains functions to prepare paths to gopher64 resources.
//
// The ResourcePath() function returns the path to a resource file, prepended
// with the appropriate config directory. For example, the following returns
// the path to the KERNAL ROM.
//
//	p, err := paths.ResourcePath("roms", "kernal.bin")
//
// The policy of ResourcePath() depends on the build. For development builds
// the base path is ".gopher64" in the current directory. For release builds
// (built with the "release" tag) the base path is "gopher64" in the user's
// config directory, as returned by os.UserConfigDir().
//
// In the example above, for a release build on a modern Linux system, the
// path returned will be:
//
//	/home/user/.config/gopher64/roms/kernal.bin
//
// The directory containing the resource is created if it does not exist. The
// resource itself is never created.
package paths
