package renderer

import (
	"fmt"
	"strings"

	vk "github.com/goki/vulkan"
	"github.com/google/uuid"
)

// DeviceReport summarizes one physical device as seen during selection.
type DeviceReport struct {
	Name              string
	Type              vk.PhysicalDeviceType
	VendorID          uint32
	DeviceID          uint32
	APIVersion        uint32
	DriverVersion     uint32
	PipelineCacheUUID uuid.UUID
	MaxImageDim2D     uint32
	QueueFamilies     []QueueFamilyProps

	Suitable bool
	Reason   string
	Score    int
	Selected bool
}

func newDeviceReport(props vk.PhysicalDeviceProperties, families []QueueFamilyProps) DeviceReport {
	return DeviceReport{
		Name:              vk.ToString(props.DeviceName[:]),
		Type:              props.DeviceType,
		VendorID:          props.VendorID,
		DeviceID:          props.DeviceID,
		APIVersion:        props.ApiVersion,
		DriverVersion:     props.DriverVersion,
		PipelineCacheUUID: uuid.UUID(props.PipelineCacheUUID),
		MaxImageDim2D:     props.Limits.MaxImageDimension2D,
		QueueFamilies:     families,
	}
}

func (r DeviceReport) String() string {
	strBuilder := strings.Builder{}
	for i := range r.QueueFamilies {
		prefix := "| "
		if i == len(r.QueueFamilies)-1 {
			prefix = "|_"
		}
		strBuilder.WriteString(fmt.Sprintf("%sQfamily[%d] %s\n", prefix, r.QueueFamilies[i].Index, toStringQueueFamilyPropsTable(r.QueueFamilies[i].Props)))
	}
	status := "suitable"
	if !r.Suitable {
		status = "unsuitable: " + r.Reason
	}
	if r.Selected {
		status += ", selected"
	}
	return fmt.Sprintf(
		"%s (%s, score %d):\n|_api: %s, driver: %s, vendorId: %d (%s), deviceId: %d, deviceType: %d (%s), UUID: %s\n%s",
		r.Name,
		status,
		r.Score,
		vk.Version(r.APIVersion).String(),
		asDriverVersion(r.VendorID, r.DriverVersion),
		r.VendorID,
		asVendorName(r.VendorID),
		r.DeviceID,
		r.Type,
		toStringDeviceType(r.Type),
		r.PipelineCacheUUID.String(),
		strBuilder.String(),
	)
}

func tableStringNames(names []string) string {
	strBuilder := strings.Builder{}
	for i := range names {
		strBuilder.WriteString(fmt.Sprintf(" %s\n", names[i]))
	}
	return strBuilder.String()
}

func asVendorName(v uint32) string {
	// There seem to only be a handful of vendors and Ids as stated in:
	// https://www.reddit.com/r/vulkan/comments/4ta9nj/is_there_a_comprehensive_list_of_the_names_and/
	switch v {
	case 0x1002:
		return "AMD"
	case 0x1010:
		return "ImgTec"
	case 0x10DE:
		return "NVIDIA"
	case 0x13B5:
		return "ARM"
	case 0x5143:
		return "Qualcomm"
	case 0x8086:
		return "INTEL"
	case 0x10005:
		return "Mesa"
	default:
		return "unknown"
	}
}

func asDriverVersion(vendor uint32, raw uint32) string {
	// Only nvidia packs its driver version differently
	if vendor == 0x10DE {
		return nvidiaVer(raw)
	}
	return vk.Version(raw).String()
}

func nvidiaVer(i uint32) string {
	return fmt.Sprintf(
		"%d.%d.%d.%d",
		(i>>22)&0x3ff,
		(i>>14)&0x0ff,
		(i>>6)&0x0ff,
		i&0x003f,
	)
}

func toStringDeviceType(dt vk.PhysicalDeviceType) string {
	switch dt {
	case vk.PhysicalDeviceTypeOther:
		return "other"
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "integrated Gpu"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "discrete Gpu"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "virtual Gpu"
	case vk.PhysicalDeviceTypeCpu:
		return "cpu"
	default:
		return "unknown"
	}
}

func toStringQueueFamilyPropsTable(q vk.QueueFamilyProperties) string {
	return fmt.Sprintf(
		"Count: %2d, Valid ts bits: %d, ImageGranularity: (%d,%d,%d), Flags: %v",
		q.QueueCount,
		q.TimestampValidBits,
		q.MinImageTransferGranularity.Width,
		q.MinImageTransferGranularity.Height,
		q.MinImageTransferGranularity.Depth,
		toStringQueueFlags(q.QueueFlags),
	)
}

func toStringQueueFlags(bits vk.QueueFlags) []string {
	var properties []string
	flags := vk.QueueFlagBits(bits)
	if flags&vk.QueueGraphicsBit > 0 {
		properties = append(properties, "VK_QUEUE_GRAPHICS_BIT")
	}
	if flags&vk.QueueComputeBit > 0 {
		properties = append(properties, "VK_QUEUE_COMPUTE_BIT")
	}
	if flags&vk.QueueTransferBit > 0 {
		properties = append(properties, "VK_QUEUE_TRANSFER_BIT")
	}
	if flags&vk.QueueSparseBindingBit > 0 {
		properties = append(properties, "VK_QUEUE_SPARSE_BINDING_BIT")
	}
	if flags&vk.QueueProtectedBit > 0 {
		properties = append(properties, "VK_QUEUE_PROTECTED_BIT")
	}
	return properties
}

func toStringPresentMode(pm vk.PresentMode) string {
	switch pm {
	case vk.PresentModeImmediate:
		return "immediate"
	case vk.PresentModeMailbox:
		return "mailbox"
	case vk.PresentModeFifo:
		return "fifo"
	case vk.PresentModeFifoRelaxed:
		return "fifo relaxed"
	default:
		return fmt.Sprintf("unknown(%d)", pm)
	}
}
