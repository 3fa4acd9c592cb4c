package renderer

import (
	"testing"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

func TestChooseSwapSurfaceFormat(t *testing.T) {
	preferred := vk.SurfaceFormat{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear}
	other := vk.SurfaceFormat{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear}

	f, err := chooseSwapSurfaceFormat([]vk.SurfaceFormat{{Format: vk.FormatUndefined}})
	if err != nil || f != preferred {
		t.Errorf("Undefined format should yield the preferred one, got %v (%v)", f, err)
	}

	f, err = chooseSwapSurfaceFormat([]vk.SurfaceFormat{other, preferred})
	if err != nil || f != preferred {
		t.Errorf("Preferred format should win when listed, got %v (%v)", f, err)
	}

	f, err = chooseSwapSurfaceFormat([]vk.SurfaceFormat{other})
	if err != nil || f != other {
		t.Errorf("First format is the fallback, got %v (%v)", f, err)
	}

	if _, err = chooseSwapSurfaceFormat(nil); !errors.Is(err, ErrNoSurfaceFormat) {
		t.Errorf("Expected ErrNoSurfaceFormat, got %v", err)
	}
}

func TestChooseSwapPresentMode(t *testing.T) {
	all := []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeImmediate, vk.PresentModeMailbox}

	if m := chooseSwapPresentMode(all, true); m != vk.PresentModeMailbox {
		t.Errorf("Expected mailbox, got %s", toStringPresentMode(m))
	}
	if m := chooseSwapPresentMode(all, false); m != vk.PresentModeImmediate {
		t.Errorf("Expected immediate when mailbox is not preferred, got %s", toStringPresentMode(m))
	}
	if m := chooseSwapPresentMode([]vk.PresentMode{vk.PresentModeFifo}, true); m != vk.PresentModeFifo {
		t.Errorf("Expected fifo fallback, got %s", toStringPresentMode(m))
	}
	if m := chooseSwapPresentMode(nil, true); m != vk.PresentModeFifo {
		t.Errorf("Expected fifo for an empty list, got %s", toStringPresentMode(m))
	}
}

func TestChooseSwapExtent(t *testing.T) {
	caps := vk.SurfaceCapabilities{
		CurrentExtent:  vk.Extent2D{Width: 640, Height: 480},
		MinImageExtent: vk.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: vk.Extent2D{Width: 4096, Height: 4096},
	}
	if e := chooseSwapExtent(caps, 1000, 1000); e.Width != 640 || e.Height != 480 {
		t.Errorf("Current extent should be used as is, got %dx%d", e.Width, e.Height)
	}

	caps.CurrentExtent = vk.Extent2D{Width: undefinedExtent, Height: undefinedExtent}
	if e := chooseSwapExtent(caps, 800, 600); e.Width != 800 || e.Height != 600 {
		t.Errorf("Drawable size should be used, got %dx%d", e.Width, e.Height)
	}
	if e := chooseSwapExtent(caps, 8000, 0); e.Width != 4096 || e.Height != 1 {
		t.Errorf("Drawable size should be clamped, got %dx%d", e.Width, e.Height)
	}
	if e := chooseSwapExtent(caps, -5, 100); e.Width != 1 || e.Height != 100 {
		t.Errorf("Negative drawable size should clamp to the minimum, got %dx%d", e.Width, e.Height)
	}
}

func TestChooseImageCount(t *testing.T) {
	cases := []struct {
		min, max, want uint32
	}{
		{2, 0, 3},
		{2, 8, 3},
		{2, 2, 2},
		{3, 3, 3},
	}
	for _, c := range cases {
		got := chooseImageCount(vk.SurfaceCapabilities{MinImageCount: c.min, MaxImageCount: c.max})
		if got != c.want {
			t.Errorf("min %d max %d: expected %d images, got %d", c.min, c.max, c.want, got)
		}
	}
}

func TestSwapChainAdequacy(t *testing.T) {
	details := SwapChainSupportDetails{}
	if details.adequate() {
		t.Errorf("Empty details must not be adequate")
	}
	details.Formats = []vk.SurfaceFormat{{Format: vk.FormatB8g8r8a8Unorm}}
	if details.adequate() {
		t.Errorf("Details without present modes must not be adequate")
	}
	details.PresentModes = []vk.PresentMode{vk.PresentModeFifo}
	if !details.adequate() {
		t.Errorf("Details with a format and a present mode are adequate")
	}
}
