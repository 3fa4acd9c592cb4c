package renderer

import (
	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// QueueFamilyProps stores the vk.QueueFamilyProperties of a family together with the index of that family.
type QueueFamilyProps struct {
	Index int
	Props vk.QueueFamilyProperties
}

func (q QueueFamilyProps) Supports(bit vk.QueueFlagBits) bool {
	return vk.QueueFlagBits(q.Props.QueueFlags)&bit > 0
}

// QueueFamilyIndices holds the families graphics and present commands are sent to. A nil entry means no family
// qualified.
type QueueFamilyIndices struct {
	GraphicsFamily *uint32
	PresentFamily  *uint32
}

// selectQueueFamilies picks the first graphics capable family and a present capable one. The graphics family is
// preferred for presenting as well, so a single family serves both whenever the hardware allows it.
func selectQueueFamilies(families []QueueFamilyProps, canPresent func(index uint32) (bool, error)) (*QueueFamilyIndices, error) {
	indices := &QueueFamilyIndices{}

	for i := range families {
		if families[i].Props.QueueCount == 0 {
			continue
		}
		if families[i].Supports(vk.QueueGraphicsBit) {
			indices.GraphicsFamily = new(uint32)
			*indices.GraphicsFamily = uint32(families[i].Index)
			break
		}
	}
	if indices.GraphicsFamily == nil {
		return nil, ErrNoGraphicsQueue
	}

	ok, err := canPresent(*indices.GraphicsFamily)
	if err != nil {
		return nil, err
	}
	if ok {
		indices.PresentFamily = new(uint32)
		*indices.PresentFamily = *indices.GraphicsFamily
		return indices, nil
	}

	for i := range families {
		if families[i].Props.QueueCount == 0 {
			continue
		}
		idx := uint32(families[i].Index)
		ok, err := canPresent(idx)
		if err != nil {
			return nil, err
		}
		if ok {
			indices.PresentFamily = new(uint32)
			*indices.PresentFamily = idx
			return indices, nil
		}
	}
	return nil, ErrNoPresentQueue
}

func (q *QueueFamilyIndices) isAllQueuesFound() bool {
	return q.GraphicsFamily != nil && q.PresentFamily != nil
}

// uniqueIndices lists graphics then present, dropping the present family when it is the same one.
func (q *QueueFamilyIndices) uniqueIndices() ([]uint32, error) {
	if !q.isAllQueuesFound() {
		return nil, errors.Wrap(ErrQueueFamilyIndexUnset, "collecting unique queue families")
	}
	uniq := []uint32{*q.GraphicsFamily}
	if !inList(*q.PresentFamily, uniq) {
		uniq = append(uniq, *q.PresentFamily)
	}
	return uniq, nil
}

func (q *QueueFamilyIndices) toQueueCreateInfos() ([]vk.DeviceQueueCreateInfo, error) {
	uniqIndices, err := q.uniqueIndices()
	if err != nil {
		return nil, err
	}
	infos := make([]vk.DeviceQueueCreateInfo, len(uniqIndices))
	for i := range uniqIndices {
		infos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			PNext:            nil,
			Flags:            0,
			QueueFamilyIndex: uniqIndices[i],
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		}
	}
	return infos, nil
}

// sharingMode depends on whether our queue families are the same for graphics and presentation:
// https://vulkan-tutorial.com/Drawing_a_triangle/Presentation/Swap_chain
func (q *QueueFamilyIndices) sharingMode() (vk.SharingMode, []uint32) {
	if *q.GraphicsFamily != *q.PresentFamily {
		return vk.SharingModeConcurrent, []uint32{*q.GraphicsFamily, *q.PresentFamily}
	}
	return vk.SharingModeExclusive, nil
}
