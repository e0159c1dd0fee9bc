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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each mode.
//
// A mode is a special command line argument that, when specified, puts the
// program into a different mode of operation. For gopher64 the modes are RUN,
// TERMINAL, PERFORMANCE and SCREENSHOT. Each mode has its own set of flags.
//
// Arguments are given to NewArgs() and are then parsed in stages with
// Parse(). For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERMINAL")
//	logEcho := md.AddBool("log", false, "echo log to stderr")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// Mode() then returns the selected mode. The first sub-mode is the default
// and is selected when no mode is given on the command line. Sub-mode
// comparisons are case insensitive.
//
// Once the mode has been decided, NewMode() prepares for the flags specific to
// that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 2.0, "window scale")
//		p, err := md.Parse()
//		...
//	}
//
// Arguments that are neither flags nor modes are retrieved with
// RemainingArgs() or GetArg().
package modalflag
