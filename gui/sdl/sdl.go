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

package sdl

import (
	"fmt"

	"github.com/jetsetilly/gopher64/gui"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/performance/limiter"
	"github.com/jetsetilly/gopher64/version"
	"github.com/veandco/go-sdl2/sdl"
	"golang.design/x/clipboard"
)

// SdlC64 is a simple SDL implementation of the video.Renderer interface.
type SdlC64 struct {
	m *hardware.Machine

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// limit the machine to the nominal tick rate
	lmtr *limiter.Limiter

	// status messages drawn over the display
	overlay gui.Overlay

	// the amount of scaling applied to the display
	scale int

	// clipboard is not available on all platforms
	clipboard bool

	// file used by the save state operation
	statePath string

	// set by the quit operation
	quit bool
}

// NewSdlC64 is the preferred method of initialisation for SdlC64. The SdlC64
// is attached to the machine as its renderer.
func NewSdlC64(m *hardware.Machine, scale int, statePath string) (*SdlC64, error) {
	scr := &SdlC64{
		m:         m,
		scale:     scale,
		statePath: statePath,
		lmtr:      limiter.NewLimiter(clocks.TickRate),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// SDL window - window size is set in setScaling() function
	scr.window, err = sdl.CreateWindow(version.Title(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = scr.createTexture()
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.setScaling(scale)

	// failure to initialise the clipboard only means paste is unavailable
	err = clipboard.Init()
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "clipboard unavailable: %v", err)
	} else {
		scr.clipboard = true
	}

	sdl.StartTextInput()

	m.AttachRenderer(scr)

	return scr, nil
}

// Destroy the SDL resources. The SdlC64 is detached from the machine.
func (scr *SdlC64) Destroy() {
	scr.m.AttachRenderer(nil)
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}

// Run the machine until the window is closed.
func (scr *SdlC64) Run() error {
	err := scr.m.Run(scr.continueCheck)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}
