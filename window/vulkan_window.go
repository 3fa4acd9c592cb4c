package window

import (
	"github.com/cockroachdb/errors"
	"github.com/icy-engine/icy/config"
	"github.com/icy-engine/icy/renderer"
	"github.com/veandco/go-sdl2/sdl"
)

// VulkanWindow is a Window whose surface is driven by a VulkanRenderer.
type VulkanWindow struct {
	Base
	renderer *renderer.VulkanRenderer
}

func NewVulkanWindow(cfg config.VulkanConfig) *VulkanWindow {
	return &VulkanWindow{renderer: renderer.NewVulkanRenderer(cfg)}
}

func withVulkanFlag(flags uint32) uint32 {
	return flags | uint32(sdl.WINDOW_VULKAN)
}

// Create opens the window and brings the renderer up on it. Nothing is left behind when either step fails.
func (w *VulkanWindow) Create(title string, x, y, width, height int32, flags uint32) error {
	if err := w.createSDLWindow(title, x, y, width, height, withVulkanFlag(flags)); err != nil {
		if errors.Is(err, ErrAlreadyCreated) {
			return err
		}
		w.destroySDLWindow()
		return err
	}
	if err := w.renderer.Init(w.sdlWindow); err != nil {
		w.destroySDLWindow()
		return errors.Wrapf(err, "initializing Vulkan for window %q", title)
	}
	return nil
}

// Display has nothing to present yet, no frames are recorded.
func (w *VulkanWindow) Display() error {
	if w.sdlWindow == nil {
		return ErrNotCreated
	}
	return nil
}

// Destroy tears the renderer down before the window its surface belongs to.
func (w *VulkanWindow) Destroy() {
	w.renderer.Cleanup()
	w.destroySDLWindow()
}

func (w *VulkanWindow) Renderer() *renderer.VulkanRenderer {
	return w.renderer
}
