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

// Package gui contains the parts of a graphical host that do not depend on
// the windowing library. Events produced by a windowing library are
// translated to the Event types in this package and then bound to an
// operation on the machine with the Bind() function.
//
// Function keys are bound to the host control actions:
//
//	F1      RESET
//	F2      NEW
//	F3      LIST
//	F4      RUN
//	F5      STOP (also Escape)
//	F9      paste text from the clipboard
//	F10     save state
//	F12     screenshot
package gui
