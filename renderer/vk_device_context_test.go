package renderer

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
	"github.com/google/uuid"
)

func props(dt vk.PhysicalDeviceType, maxDim uint32) vk.PhysicalDeviceProperties {
	return vk.PhysicalDeviceProperties{
		DeviceType: dt,
		Limits:     vk.PhysicalDeviceLimits{MaxImageDimension2D: maxDim},
	}
}

func TestRateDevice(t *testing.T) {
	discrete := rateDevice(props(vk.PhysicalDeviceTypeDiscreteGpu, 16384))
	integrated := rateDevice(props(vk.PhysicalDeviceTypeIntegratedGpu, 16384))
	cpu := rateDevice(props(vk.PhysicalDeviceTypeCpu, 16384))

	if discrete != 1000+16384 {
		t.Errorf("Unexpected discrete score %d", discrete)
	}
	if !(discrete > integrated && integrated > cpu) {
		t.Errorf("Expected discrete > integrated > cpu, got %d, %d, %d", discrete, integrated, cpu)
	}
	if rateDevice(props(vk.PhysicalDeviceTypeDiscreteGpu, 8192)) >= discrete {
		t.Errorf("Larger image dimension should score higher")
	}
}

func candidate(name string, suitable bool, score int) deviceCandidate {
	return deviceCandidate{report: DeviceReport{Name: name, Suitable: suitable, Score: score}}
}

func TestPickBest(t *testing.T) {
	candidates := []deviceCandidate{
		candidate("llvmpipe", true, 8192),
		candidate("big but broken", false, 99999),
		candidate("gpu a", true, 17384),
		candidate("gpu b", true, 17384),
	}
	best, err := pickBest(candidates)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if candidates[best].report.Name != "gpu a" {
		t.Errorf("Expected the first of the highest scores, got %q", candidates[best].report.Name)
	}

	_, err = pickBest([]deviceCandidate{candidate("x", false, 1)})
	if !errors.Is(err, ErrNoSuitableDevice) {
		t.Errorf("Expected ErrNoSuitableDevice, got %v", err)
	}
	if _, err = pickBest(nil); !errors.Is(err, ErrNoSuitableDevice) {
		t.Errorf("Expected ErrNoSuitableDevice for no candidates, got %v", err)
	}
}

func TestDeviceReportString(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	r := DeviceReport{
		Name:              "Test GPU",
		Type:              vk.PhysicalDeviceTypeDiscreteGpu,
		VendorID:          0x10DE,
		PipelineCacheUUID: id,
		QueueFamilies:     []QueueFamilyProps{family(0, 16, vk.QueueGraphicsBit|vk.QueueComputeBit)},
		Score:             1234,
		Suitable:          true,
		Selected:          true,
	}
	s := r.String()
	for _, want := range []string{"Test GPU", "NVIDIA", "discrete Gpu", id.String(), "VK_QUEUE_GRAPHICS_BIT", "selected", "score 1234"} {
		if !strings.Contains(s, want) {
			t.Errorf("Report should contain %q:\n%s", want, s)
		}
	}

	r.Suitable = false
	r.Selected = false
	r.Reason = "missing device extensions"
	if s = r.String(); !strings.Contains(s, "unsuitable: missing device extensions") {
		t.Errorf("Report should state why the device is unsuitable:\n%s", s)
	}
}

func TestVendorAndDriverNames(t *testing.T) {
	if asVendorName(0x8086) != "INTEL" || asVendorName(0x1) != "unknown" {
		t.Errorf("Unexpected vendor mapping")
	}
	// 470.57.2.0 packed the nvidia way
	raw := uint32(470)<<22 | uint32(57)<<14 | uint32(2)<<6
	if v := asDriverVersion(0x10DE, raw); v != "470.57.2.0" {
		t.Errorf("Unexpected nvidia driver version %q", v)
	}
}
