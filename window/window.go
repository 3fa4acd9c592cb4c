package window

import (
	"fmt"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/icy-engine/icy/config"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	ErrNotCreated     = errors.New("window not created")
	ErrAlreadyCreated = errors.New("window already created")
)

// Window is an SDL backed window with a renderer specific flavor. Create opens it, Display presents whatever the
// flavor renders and Destroy releases everything Create built, including SDL itself.
type Window interface {
	// Create initializes SDL video and opens the window.
	// title : The title of the Window
	// x, y : The left and top position, SDL's WINDOWPOS_* values are accepted
	// width, height : The size of the Window
	// flags : SDL window flags, the flavor adds the ones it needs
	Create(title string, x, y, width, height int32, flags uint32) error
	PollEvent() sdl.Event
	IsOpen() bool
	Close()
	Display() error
	Destroy()
}

// Base holds what every flavor shares: the SDL window and the closed flag.
type Base struct {
	sdlWindow *sdl.Window
	closed    bool
	sdlUp     bool
}

func (b *Base) initSDL() error {
	if b.sdlUp {
		return nil
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "initializing SDL video")
	}
	b.sdlUp = true
	log.Printf("Initialized SDL %s", sdlVersion())
	return nil
}

func (b *Base) createSDLWindow(title string, x, y, width, height int32, flags uint32) error {
	if b.sdlWindow != nil {
		return ErrAlreadyCreated
	}
	if err := b.initSDL(); err != nil {
		return err
	}

	win, err := sdl.CreateWindow(title, x, y, width, height, flags)
	if err != nil {
		return errors.Wrapf(err, "creating SDL window %q", title)
	}
	log.Printf("Created SDL window. Title: \"%s\", Width: %d, Height: %d", title, width, height)
	b.sdlWindow = win
	b.closed = false
	return nil
}

func (b *Base) PollEvent() sdl.Event {
	if !b.sdlUp {
		return nil
	}
	return sdl.PollEvent()
}

// IsOpen checks if the window exists and was not asked to close.
func (b *Base) IsOpen() bool {
	return b.sdlWindow != nil && !b.closed
}

func (b *Base) Close() {
	b.closed = true
}

func (b *Base) destroySDLWindow() {
	if b.sdlWindow != nil {
		if err := b.sdlWindow.Destroy(); err != nil {
			log.Printf("Failed to destroy SDL window: %v", err)
		}
		b.sdlWindow = nil
	}
	if b.sdlUp {
		sdl.Quit()
		b.sdlUp = false
	}
	b.closed = true
}

func sdlVersion() string {
	return fmt.Sprintf("v%d.%d.%d", sdl.MAJOR_VERSION, sdl.MINOR_VERSION, sdl.PATCHLEVEL)
}

// New returns an uncreated window of the flavor cfg asks for.
func New(cfg config.Config) (Window, error) {
	switch cfg.Window.Backend {
	case config.BackendVulkan:
		return NewVulkanWindow(cfg.Vulkan), nil
	case config.BackendOpenGL:
		return NewOpenGLWindow(cfg.GL), nil
	default:
		return nil, errors.Wrapf(config.ErrInvalidConfig, "unknown backend %q", cfg.Window.Backend)
	}
}

// Flags turns the window section of the config into SDL window flags.
func Flags(cfg config.WindowConfig) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	return flags
}

// Open creates w with the title, position and size from cfg.
func Open(w Window, cfg config.WindowConfig) error {
	return w.Create(cfg.Title, cfg.X, cfg.Y, cfg.Width, cfg.Height, Flags(cfg))
}
