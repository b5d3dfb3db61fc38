// This file is part of RetroArch-Go.
//
// RetroArch-Go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RetroArch-Go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RetroArch-Go.  If not, see <https://www.gnu.org/licenses/>.

// Package glvideo is a video driver rendering through an SDL window with an
// OpenGL 2.1 context. Each frame is uploaded into a single streaming texture
// and drawn as one textured quad covering the viewport.
package glvideo

import (
	"fmt"
	"time"

	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/video"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "RetroArch"

// frame pixels are packed RGBA, four bytes per pixel.
const pixelDepth = 4

// one quad covering the unit square. the texture coordinates flip the image
// vertically; decoded frames arrive with the top row first
var vertices = []float32{
	0, 0, 0,
	0, 1, 0,
	1, 1, 0,
	1, 0, 0,
}

var texCoords = []float32{
	0, 1,
	0, 0,
	1, 0,
	1, 1,
}

// Driver is the descriptor for the gl video driver.
type Driver struct{}

// ID implements the driver.Descriptor interface.
func (d Driver) ID() string {
	return "gl"
}

// Init implements the video.Driver interface.
func (d Driver) Init(cfg video.Config) (driver.Handle, error) {
	return newGlVideo(cfg)
}

type glVideo struct {
	cfg video.Config

	window *sdl.Window
	glctx  sdl.GLContext

	// the single texture the frame is uploaded to
	texture uint32

	fps video.FPSCounter

	// drawable size at the most recent viewport computation. the viewport
	// is recomputed when the window size changes
	lastWidth  int32
	lastHeight int32
}

func newGlVideo(cfg video.Config) (*glVideo, error) {
	g := &glVideo{cfg: cfg}

	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("glvideo: %v", err)
	}

	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2); err != nil {
		return nil, curated.Errorf("glvideo: %v", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1); err != nil {
		return nil, curated.Errorf("glvideo: %v", err)
	}

	wflags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		wflags |= uint32(sdl.WINDOW_FULLSCREEN)
	}

	var err error
	g.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(cfg.Width), int32(cfg.Height),
		wflags)
	if err != nil {
		return nil, curated.Errorf("glvideo: %v", err)
	}

	g.glctx, err = g.window.GLCreateContext()
	if err != nil {
		g.window.Destroy()
		return nil, curated.Errorf("glvideo: %v", err)
	}

	if err = gl.Init(); err != nil {
		g.window.Destroy()
		return nil, curated.Errorf("glvideo: %v", err)
	}

	if cfg.VSync {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}

	gl.Enable(gl.TEXTURE_2D)
	gl.Disable(gl.DITHER)
	gl.Disable(gl.DEPTH_TEST)
	gl.Color3f(1, 1, 1)
	gl.ClearColor(0, 0, 0, 0)

	filter := int32(gl.NEAREST)
	if cfg.Smooth {
		filter = gl.LINEAR
	}

	gl.GenTextures(1, &g.texture)
	gl.BindTexture(gl.TEXTURE_2D, g.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)

	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.TEXTURE_COORD_ARRAY)
	gl.VertexPointer(3, gl.FLOAT, 0, gl.Ptr(vertices))
	gl.TexCoordPointer(2, gl.FLOAT, 0, gl.Ptr(texCoords))

	g.setViewport()

	return g, nil
}

// setViewport applies the aspect policy to the current drawable size.
func (g *glVideo) setViewport() {
	w, h := g.window.GLGetDrawableSize()
	g.lastWidth = w
	g.lastHeight = h

	x, y, vw, vh := video.Viewport(int(w), int(h), g.cfg.KeepAspect)
	gl.Viewport(x, y, vw, vh)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, 1, 0, 1, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

// Frame implements the video.Renderer interface.
func (g *glVideo) Frame(pixels []byte, width int, height int, pitch int) error {
	if w, h := g.window.GLGetDrawableSize(); w != g.lastWidth || h != g.lastHeight {
		g.setViewport()
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)

	// the pitch may exceed width*4 to skip padding bytes at the end of each
	// row. the texture upload must be told the true row length
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pitch/pixelDepth))
	gl.TexImage2D(gl.TEXTURE_2D,
		0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA,
		gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.DrawArrays(gl.QUADS, 0, 4)

	if fps, ok := g.fps.Tick(time.Now()); ok {
		g.window.SetTitle(fmt.Sprintf("%s || FPS: %6.1f || Frames: %d", windowTitle, fps, g.fps.Frames()))
	}

	g.window.GLSwap()

	return nil
}

// SetNonBlock implements the video.NonBlocker interface. Only meaningful
// when the window was created with vsync; toggling releases the frame rate
// from the monitor refresh during fast-forward.
func (g *glVideo) SetNonBlock(state bool) {
	if !g.cfg.VSync {
		return
	}
	if state {
		sdl.GLSetSwapInterval(0)
	} else {
		sdl.GLSetSwapInterval(1)
	}
}

// Close implements the driver.Closer interface.
func (g *glVideo) Close() {
	gl.DisableClientState(gl.VERTEX_ARRAY)
	gl.DisableClientState(gl.TEXTURE_COORD_ARRAY)
	gl.DeleteTextures(1, &g.texture)
	sdl.GLDeleteContext(g.glctx)
	g.window.Destroy()
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}
