package renderer

import (
	"testing"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

func family(index int, count uint32, bits vk.QueueFlagBits) QueueFamilyProps {
	return QueueFamilyProps{
		Index: index,
		Props: vk.QueueFamilyProperties{QueueFlags: vk.QueueFlags(bits), QueueCount: count},
	}
}

func presentOn(indices ...uint32) func(uint32) (bool, error) {
	return func(i uint32) (bool, error) {
		return inList(i, indices), nil
	}
}

// TestSelectSharedFamily confirms a graphics family that can present serves both roles
func TestSelectSharedFamily(t *testing.T) {
	families := []QueueFamilyProps{
		family(0, 1, vk.QueueTransferBit),
		family(1, 4, vk.QueueGraphicsBit|vk.QueueComputeBit),
		family(2, 2, vk.QueueGraphicsBit),
	}
	indices, err := selectQueueFamilies(families, presentOn(0, 1, 2))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *indices.GraphicsFamily != 1 || *indices.PresentFamily != 1 {
		t.Errorf("Expected family 1 for both, got graphics %d present %d", *indices.GraphicsFamily, *indices.PresentFamily)
	}
	uniq, err := indices.uniqueIndices()
	if err != nil || len(uniq) != 1 {
		t.Errorf("Expected a single unique family, got %v (%v)", uniq, err)
	}
	mode, shared := indices.sharingMode()
	if mode != vk.SharingModeExclusive || shared != nil {
		t.Errorf("Same family should use exclusive sharing, got %v %v", mode, shared)
	}
}

func TestSelectSeparatePresentFamily(t *testing.T) {
	families := []QueueFamilyProps{
		family(0, 1, vk.QueueGraphicsBit),
		family(1, 1, vk.QueueTransferBit),
		family(2, 1, vk.QueueComputeBit),
	}
	indices, err := selectQueueFamilies(families, presentOn(2))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *indices.GraphicsFamily != 0 || *indices.PresentFamily != 2 {
		t.Errorf("Expected graphics 0 / present 2, got %d / %d", *indices.GraphicsFamily, *indices.PresentFamily)
	}

	infos, err := indices.toQueueCreateInfos()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("Expected 2 queue create infos, got %d", len(infos))
	}
	if infos[0].QueueFamilyIndex != 0 || infos[1].QueueFamilyIndex != 2 {
		t.Errorf("Unexpected queue family order: %d, %d", infos[0].QueueFamilyIndex, infos[1].QueueFamilyIndex)
	}
	for i := range infos {
		if infos[i].QueueCount != 1 || infos[i].PQueuePriorities[0] != 1.0 {
			t.Errorf("Queue create info %d should request one queue with priority 1.0", i)
		}
	}

	mode, shared := indices.sharingMode()
	if mode != vk.SharingModeConcurrent || len(shared) != 2 {
		t.Errorf("Different families should share concurrently, got %v %v", mode, shared)
	}
}

func TestSelectSkipsEmptyFamilies(t *testing.T) {
	families := []QueueFamilyProps{
		family(0, 0, vk.QueueGraphicsBit),
		family(1, 1, vk.QueueGraphicsBit),
	}
	indices, err := selectQueueFamilies(families, presentOn(0, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *indices.GraphicsFamily != 1 || *indices.PresentFamily != 1 {
		t.Errorf("Families without queues must be skipped, got %d / %d", *indices.GraphicsFamily, *indices.PresentFamily)
	}
}

func TestSelectMissingFamilies(t *testing.T) {
	_, err := selectQueueFamilies([]QueueFamilyProps{family(0, 1, vk.QueueComputeBit)}, presentOn(0))
	if !errors.Is(err, ErrNoGraphicsQueue) {
		t.Errorf("Expected ErrNoGraphicsQueue, got %v", err)
	}

	_, err = selectQueueFamilies([]QueueFamilyProps{family(0, 1, vk.QueueGraphicsBit)}, presentOn())
	if !errors.Is(err, ErrNoPresentQueue) {
		t.Errorf("Expected ErrNoPresentQueue, got %v", err)
	}

	_, err = selectQueueFamilies(nil, presentOn())
	if !errors.Is(err, ErrNoGraphicsQueue) {
		t.Errorf("Expected ErrNoGraphicsQueue for no families, got %v", err)
	}
}

func TestSelectProbeError(t *testing.T) {
	probeErr := errors.New("surface lost")
	_, err := selectQueueFamilies(
		[]QueueFamilyProps{family(0, 1, vk.QueueGraphicsBit)},
		func(uint32) (bool, error) { return false, probeErr },
	)
	if !errors.Is(err, probeErr) {
		t.Errorf("Probe error should be returned, got %v", err)
	}
}

func TestUniqueIndicesIncomplete(t *testing.T) {
	q := &QueueFamilyIndices{GraphicsFamily: new(uint32)}
	if _, err := q.uniqueIndices(); !errors.Is(err, ErrQueueFamilyIndexUnset) {
		t.Errorf("Expected ErrQueueFamilyIndexUnset, got %v", err)
	}
	if _, err := q.toQueueCreateInfos(); err == nil {
		t.Errorf("Incomplete indices should not produce create infos")
	}
}

func TestVkGetDeviceQueueNilIndex(t *testing.T) {
	if _, err := VkGetDeviceQueue(nil, nil, 0); !errors.Is(err, ErrQueueFamilyIndexUnset) {
		t.Errorf("Expected ErrQueueFamilyIndexUnset, got %v", err)
	}
}
