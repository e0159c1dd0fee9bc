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

// Package state saves and loads machine snapshots. Snapshots are stored as
// JSON documents. RAM is stored as a base64 string.
//
// Load() and LoadFile() distinguish between there being no saved state at all
// (ErrNoState) and saved state that cannot be used (ErrCorrupt). A host
// should report ErrCorrupt to the user rather than silently starting afresh.
package state
