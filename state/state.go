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

package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/paths"
)

// Sentinel errors returned by the load functions.
var (
	ErrNoState = errors.New("no saved state")
	ErrCorrupt = errors.New("saved state is corrupt")
)

// the version of the document format. documents with a different version are
// treated as corrupt
const version = 1

// DefaultFile is the name of the state file in the state resource directory.
const DefaultFile = "session.json"

type registers struct {
	A      uint8  `json:"a"`
	X      uint8  `json:"x"`
	Y      uint8  `json:"y"`
	SP     uint8  `json:"sp"`
	PC     uint16 `json:"pc"`
	Status uint8  `json:"status"`
}

type document struct {
	Version int       `json:"version"`
	RAM     []byte    `json:"ram"`
	CPU     registers `json:"cpu"`
	Frame   int       `json:"frame"`
	Clock   int       `json:"clock"`
}

// Save writes the snapshot to the io.Writer.
func Save(w io.Writer, s *hardware.Snapshot) error {
	if s == nil {
		return fmt.Errorf("state: nil snapshot")
	}

	doc := document{
		Version: version,
		RAM:     s.RAM,
		CPU: registers{
			A:      s.Registers.A,
			X:      s.Registers.X,
			Y:      s.Registers.Y,
			SP:     s.Registers.SP,
			PC:     s.Registers.PC,
			Status: s.Registers.Status,
		},
		Frame: s.Ticks,
		Clock: s.Clock,
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("state: %w", err)
	}

	return nil
}

// Load reads a snapshot from the io.Reader. An empty reader is ErrNoState. A
// document that cannot be decoded, or that decodes to an invalid snapshot, is
// ErrCorrupt.
func Load(r io.Reader) (*hardware.Snapshot, error) {
	var doc document

	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("state: %w", ErrNoState)
		}
		return nil, fmt.Errorf("state: %w: %w", ErrCorrupt, err)
	}

	if doc.Version != version {
		return nil, fmt.Errorf("state: %w: unsupported version (%d)", ErrCorrupt, doc.Version)
	}

	s := &hardware.Snapshot{
		RAM: doc.RAM,
		Registers: cpu.Registers{
			A:      doc.CPU.A,
			X:      doc.CPU.X,
			Y:      doc.CPU.Y,
			SP:     doc.CPU.SP,
			PC:     doc.CPU.PC,
			Status: doc.CPU.Status,
		},
		Ticks: doc.Frame,
		Clock: doc.Clock,
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("state: %w: %w", ErrCorrupt, err)
	}

	return s, nil
}

// SaveFile writes the snapshot to the named file. The file is written to a
// temporary file first and then renamed so that a failed save never leaves a
// partial document.
func SaveFile(filename string, s *hardware.Snapshot) error {
	f, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("state: %w", err)
	}

	err = Save(f, s)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return err
	}

	if err := os.Rename(f.Name(), filename); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("state: %w", err)
	}

	logger.Logf(logger.Allow, "state", "saved to %s", filename)

	return nil
}

// LoadFile reads a snapshot from the named file. A file that does not exist
// is ErrNoState.
func LoadFile(filename string) (*hardware.Snapshot, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("state: %w: %s", ErrNoState, filename)
		}
		return nil, fmt.Errorf("state: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "state", "loaded from %s", filename)

	return s, nil
}

// DefaultPath returns the path to the default state file.
func DefaultPath() (string, error) {
	return paths.ResourcePath("state", DefaultFile)
}
