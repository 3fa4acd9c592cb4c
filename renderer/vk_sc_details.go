package renderer

import (
	"log"

	vk "github.com/goki/vulkan"
)

// undefinedExtent is the value of CurrentExtent.Width when the surface lets the swapchain decide its size.
const undefinedExtent = 0xFFFFFFFF

// SwapChainSupportDetails stores what a physical device supports for a given surface.
type SwapChainSupportDetails struct {
	Capabilities vk.SurfaceCapabilities
	Formats      []vk.SurfaceFormat
	PresentModes []vk.PresentMode
}

func (s SwapChainSupportDetails) adequate() bool {
	return len(s.Formats) > 0 && len(s.PresentModes) > 0
}

func chooseSwapSurfaceFormat(formats []vk.SurfaceFormat) (vk.SurfaceFormat, error) {
	preferred := vk.SurfaceFormat{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear}
	if len(formats) == 0 {
		return vk.SurfaceFormat{}, ErrNoSurfaceFormat
	}
	// A lone undefined entry means the surface has no preference at all
	if len(formats) == 1 && formats[0].Format == vk.FormatUndefined {
		return preferred, nil
	}
	for _, af := range formats {
		if af.Format == preferred.Format && af.ColorSpace == preferred.ColorSpace {
			return af, nil
		}
	}
	fallbackFormat := formats[0]
	log.Printf("Did not find prefered SurfaceFormat, selecting first one available. (%v)", fallbackFormat)
	return fallbackFormat, nil
}

// chooseSwapPresentMode prefers mailbox (when asked to), then immediate, and falls back to FIFO which every
// implementation must support.
func chooseSwapPresentMode(modes []vk.PresentMode, preferMailbox bool) vk.PresentMode {
	hasImmediate := false
	for _, pm := range modes {
		if preferMailbox && pm == vk.PresentModeMailbox {
			return pm
		}
		if pm == vk.PresentModeImmediate {
			hasImmediate = true
		}
	}
	if hasImmediate {
		return vk.PresentModeImmediate
	}
	log.Printf("Did not find prefered PresentMode, selecting FIFO. (%v)", vk.PresentModeFifo)
	return vk.PresentModeFifo
}

func chooseSwapExtent(capabilities vk.SurfaceCapabilities, drawableWidth, drawableHeight int32) vk.Extent2D {
	if capabilities.CurrentExtent.Width != undefinedExtent {
		return capabilities.CurrentExtent
	}
	w, h := uint32(0), uint32(0)
	if drawableWidth > 0 {
		w = uint32(drawableWidth)
	}
	if drawableHeight > 0 {
		h = uint32(drawableHeight)
	}
	return vk.Extent2D{
		Width:  clamp(w, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width),
		Height: clamp(h, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height),
	}
}

// chooseImageCount asks for one image more than the minimum. A MaxImageCount of 0 means there is no upper limit.
func chooseImageCount(capabilities vk.SurfaceCapabilities) uint32 {
	imgCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && imgCount > capabilities.MaxImageCount {
		imgCount = capabilities.MaxImageCount
	}
	return imgCount
}

func clamp(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
