package window

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/icy-engine/icy/config"
	"github.com/veandco/go-sdl2/sdl"
)

// OpenGLWindow is a Window with an OpenGL core profile context attached.
type OpenGLWindow struct {
	Base
	cfg     config.GLConfig
	context sdl.GLContext
}

func NewOpenGLWindow(cfg config.GLConfig) *OpenGLWindow {
	return &OpenGLWindow{cfg: cfg}
}

type glAttribute struct {
	name  string
	attr  sdl.GLattr
	value int
}

// glAttributes are applied before the context exists, SDL only reads them at context creation.
func glAttributes(cfg config.GLConfig) []glAttribute {
	doubleBuffer := 0
	if cfg.DoubleBuffer {
		doubleBuffer = 1
	}
	return []glAttribute{
		{"profile mask", sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{"major version", sdl.GL_CONTEXT_MAJOR_VERSION, cfg.Major},
		{"minor version", sdl.GL_CONTEXT_MINOR_VERSION, cfg.Minor},
		{"double buffer", sdl.GL_DOUBLEBUFFER, doubleBuffer},
		{"depth size", sdl.GL_DEPTH_SIZE, cfg.DepthSize},
	}
}

func (w *OpenGLWindow) Create(title string, x, y, width, height int32, flags uint32) error {
	if w.sdlWindow != nil {
		return ErrAlreadyCreated
	}
	if err := w.create(title, x, y, width, height, flags); err != nil {
		w.Destroy()
		return err
	}
	return nil
}

func (w *OpenGLWindow) create(title string, x, y, width, height int32, flags uint32) error {
	if err := w.initSDL(); err != nil {
		return err
	}
	for _, a := range glAttributes(w.cfg) {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return errors.Wrapf(err, "setting GL %s to %d", a.name, a.value)
		}
	}

	if err := w.createSDLWindow(title, x, y, width, height, flags|uint32(sdl.WINDOW_OPENGL)); err != nil {
		return err
	}

	ctx, err := w.sdlWindow.GLCreateContext()
	if err != nil {
		return errors.Wrap(err, "creating OpenGL context")
	}
	w.context = ctx
	if err := w.sdlWindow.GLMakeCurrent(ctx); err != nil {
		return errors.Wrap(err, "making OpenGL context current")
	}

	if err := gl.InitWithProcAddrFunc(sdl.GLGetProcAddress); err != nil {
		return errors.Wrap(err, "loading OpenGL functions")
	}
	log.Printf("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// Display swaps the back buffer onto the window.
func (w *OpenGLWindow) Display() error {
	if w.sdlWindow == nil {
		return ErrNotCreated
	}
	w.sdlWindow.GLSwap()
	return nil
}

// Destroy deletes the GL context before the window it belongs to.
func (w *OpenGLWindow) Destroy() {
	if w.context != nil {
		sdl.GLDeleteContext(w.context)
		w.context = nil
	}
	w.destroySDLWindow()
}
