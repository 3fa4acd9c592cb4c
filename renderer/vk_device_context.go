package renderer

import (
	"log"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// deviceCandidate is a physical device together with what selection learned about it.
type deviceCandidate struct {
	device   vk.PhysicalDevice
	report   DeviceReport
	families *QueueFamilyIndices
}

// rateDevice prefers dedicated hardware and, among equals, the one with the larger maximum texture size.
func rateDevice(props vk.PhysicalDeviceProperties) int {
	score := 0
	switch props.DeviceType {
	case vk.PhysicalDeviceTypeDiscreteGpu:
		score += 1000
	case vk.PhysicalDeviceTypeIntegratedGpu:
		score += 100
	}
	score += int(props.Limits.MaxImageDimension2D)
	return score
}

// pickBest returns the index of the suitable candidate with the highest score, the first one wins a tie.
func pickBest(candidates []deviceCandidate) (int, error) {
	best := -1
	for i := range candidates {
		if !candidates[i].report.Suitable {
			continue
		}
		if best < 0 || candidates[i].report.Score > candidates[best].report.Score {
			best = i
		}
	}
	if best < 0 {
		return -1, ErrNoSuitableDevice
	}
	return best, nil
}

// evaluateDevice fills in suitability, reason and score. Probing errors only disqualify the device.
func (r *VulkanRenderer) evaluateDevice(pd vk.PhysicalDevice) deviceCandidate {
	props := readPhysicalDeviceProperties(pd)
	c := deviceCandidate{
		device: pd,
		report: newDeviceReport(props, readQueueFamilies(pd)),
	}
	c.report.Score = rateDevice(props)

	if r.cfg.RequireDiscreteGPU && props.DeviceType != vk.PhysicalDeviceTypeDiscreteGpu {
		c.report.Reason = "not a discrete GPU"
		return c
	}

	indices, err := selectQueueFamilies(c.report.QueueFamilies, readSurfaceSupport(pd, r.surface))
	if err != nil {
		c.report.Reason = err.Error()
		return c
	}
	c.families = indices

	extensionsSupported, err := checkDeviceExtensionSupport(pd, r.cfg.DeviceExtensions)
	if err != nil {
		c.report.Reason = err.Error()
		return c
	}
	if !extensionsSupported {
		c.report.Reason = "missing device extensions"
		return c
	}

	details, err := readSwapChainSupportDetails(pd, r.surface)
	if err != nil {
		c.report.Reason = err.Error()
		return c
	}
	if !details.adequate() {
		c.report.Reason = "swapchain support inadequate"
		return c
	}

	c.report.Suitable = true
	return c
}

func (r *VulkanRenderer) pickPhysicalDevice() error {
	availableDevices, err := readPhysicalDevices(r.instance)
	if err != nil {
		return err
	}

	candidates := make([]deviceCandidate, len(availableDevices))
	for i := range availableDevices {
		candidates[i] = r.evaluateDevice(availableDevices[i])
	}

	best, err := pickBest(candidates)
	r.reports = make([]DeviceReport, len(candidates))
	for i := range candidates {
		candidates[i].report.Selected = i == best
		r.reports[i] = candidates[i].report
		log.Printf("Physical device\n%s", r.reports[i])
	}
	if err != nil {
		return errors.Wrapf(err, "%d devices inspected", len(candidates))
	}

	r.physicalDevice = candidates[best].device
	r.selected = candidates[best].report
	r.queueFamProps = candidates[best].report.QueueFamilies
	log.Printf("Found suitable device %q", r.selected.Name)
	return nil
}

// getQueueFamilies settles the graphics and present family of the chosen device.
func (r *VulkanRenderer) getQueueFamilies() error {
	indices, err := selectQueueFamilies(r.queueFamProps, readSurfaceSupport(r.physicalDevice, r.surface))
	if err != nil {
		return err
	}
	r.qFamilies = *indices
	log.Printf("Using queue family %d for graphics and %d for presenting", *indices.GraphicsFamily, *indices.PresentFamily)
	return nil
}

func (r *VulkanRenderer) createLogicalDevice() error {
	queueInfos, err := r.qFamilies.toQueueCreateInfos()
	if err != nil {
		return err
	}
	deviceFeatures := vk.PhysicalDeviceFeatures{} // Empty for now as we dont need anything special at the moment
	deviceCreateInfo := &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		PNext:                   nil,
		Flags:                   0,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledLayerCount:       0,
		PpEnabledLayerNames:     nil,
		EnabledExtensionCount:   uint32(len(r.cfg.DeviceExtensions)),
		PpEnabledExtensionNames: TerminatedStrs(r.cfg.DeviceExtensions),
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{deviceFeatures},
	}
	// Device layers are deprecated but older loaders still honour them
	if len(r.layers) > 0 {
		deviceCreateInfo.EnabledLayerCount = uint32(len(r.layers))
		deviceCreateInfo.PpEnabledLayerNames = TerminatedStrs(r.layers)
	}

	r.device, err = VkCreateDevice(r.physicalDevice, deviceCreateInfo, nil)
	if err != nil {
		return errors.Wrap(err, "creating logical device")
	}
	r.graphicsQ, err = VkGetDeviceQueue(r.device, r.qFamilies.GraphicsFamily, 0)
	if err != nil {
		return errors.Wrap(err, "getting 'graphics' device queue")
	}
	r.presentQ, err = VkGetDeviceQueue(r.device, r.qFamilies.PresentFamily, 0)
	if err != nil {
		return errors.Wrap(err, "getting 'present' device queue")
	}
	log.Println("Successfully created logical device")
	return nil
}
