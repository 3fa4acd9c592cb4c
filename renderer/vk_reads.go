package renderer

import (
	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// Read operations that require duplicated function calls, allocations and dereferencing. It is pulled out to
// provide a more go-lang feel and tidy the core code.

// readInstanceExtensionNames is a convenience method obfuscating the Vulkan defined []vk.ExtensionProperties
// type in favor of their respective names in order to simplify support checks to a point of string comparisons.
func readInstanceExtensionNames() ([]string, error) {
	props, err := readInstanceExtensionProperties()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(props))
	for i, ext := range props {
		names[i] = vk.ToString(ext.ExtensionName[:])
	}
	return names, nil
}

func readInstanceExtensionProperties() ([]vk.ExtensionProperties, error) {
	extensionCount := uint32(0)
	err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &extensionCount, nil))
	if err != nil {
		return nil, errors.Wrap(err, "reading number of instance extension properties")
	}
	extensionProperties := make([]vk.ExtensionProperties, extensionCount)
	err = vk.Error(vk.EnumerateInstanceExtensionProperties("", &extensionCount, extensionProperties))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %d instance extension properties", extensionCount)
	}
	for i := range extensionProperties {
		extensionProperties[i].Deref()
	}
	return extensionProperties, nil
}

func readInstanceLayerNames() ([]string, error) {
	layers, err := readInstanceLayerProperties()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = vk.ToString(l.LayerName[:])
	}
	return names, nil
}

func readInstanceLayerProperties() ([]vk.LayerProperties, error) {
	layerCount := uint32(0)
	err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, nil))
	if err != nil {
		return nil, errors.Wrap(err, "reading number of instance layer properties")
	}
	layers := make([]vk.LayerProperties, layerCount)
	err = vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, layers))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %d instance layer properties", layerCount)
	}
	for i := range layers {
		layers[i].Deref()
	}
	return layers, nil
}

func readPhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var gpuCount uint32
	err := vk.Error(vk.EnumeratePhysicalDevices(instance, &gpuCount, nil))
	if err != nil {
		return nil, errors.Wrap(err, "reading number of physical devices")
	}
	if gpuCount == 0 {
		return nil, ErrNoPhysicalDevice
	}
	physDevices := make([]vk.PhysicalDevice, gpuCount)
	err = vk.Error(vk.EnumeratePhysicalDevices(instance, &gpuCount, physDevices))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %d physical devices", gpuCount)
	}
	return physDevices[:gpuCount], nil
}

func readPhysicalDeviceProperties(pd vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	var pdProps vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(pd, &pdProps)
	pdProps.Deref()
	pdProps.Limits.Deref()
	return pdProps
}

// readQueueFamilies pairs every family with its index so selection never has to rely on slice positions again.
func readQueueFamilies(pd vk.PhysicalDevice) []QueueFamilyProps {
	qFamilyCount := uint32(0)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &qFamilyCount, nil)
	qFamilyProps := make([]vk.QueueFamilyProperties, qFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &qFamilyCount, qFamilyProps)
	families := make([]QueueFamilyProps, len(qFamilyProps))
	for i := range qFamilyProps {
		qFamilyProps[i].Deref()
		qFamilyProps[i].MinImageTransferGranularity.Deref()
		families[i] = QueueFamilyProps{Index: i, Props: qFamilyProps[i]}
	}
	return families
}

func readDeviceExtensionNames(pd vk.PhysicalDevice) ([]string, error) {
	extensionCount := uint32(0)
	err := vk.Error(vk.EnumerateDeviceExtensionProperties(pd, "", &extensionCount, nil))
	if err != nil {
		return nil, errors.Wrap(err, "reading number of device extension properties")
	}
	extensionProperties := make([]vk.ExtensionProperties, extensionCount)
	err = vk.Error(vk.EnumerateDeviceExtensionProperties(pd, "", &extensionCount, extensionProperties))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %d device extension properties", extensionCount)
	}
	names := make([]string, len(extensionProperties))
	for i := range extensionProperties {
		extensionProperties[i].Deref()
		names[i] = vk.ToString(extensionProperties[i].ExtensionName[:])
	}
	return names, nil
}

func readSurfaceSupport(pd vk.PhysicalDevice, surface vk.Surface) func(uint32) (bool, error) {
	return func(index uint32) (bool, error) {
		var presentSupport vk.Bool32
		err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(pd, index, surface, &presentSupport))
		if err != nil {
			return false, errors.Wrapf(err, "reading surface support of queue family %d", index)
		}
		return presentSupport == vk.True, nil
	}
}

func readSwapChainSupportDetails(pd vk.PhysicalDevice, surface vk.Surface) (SwapChainSupportDetails, error) {
	details := SwapChainSupportDetails{}
	err := vk.Error(vk.GetPhysicalDeviceSurfaceCapabilities(pd, surface, &details.Capabilities))
	if err != nil {
		return details, errors.Wrap(err, "reading surface capabilities")
	}
	details.Capabilities.Deref()
	details.Capabilities.CurrentExtent.Deref()
	details.Capabilities.MinImageExtent.Deref()
	details.Capabilities.MaxImageExtent.Deref()

	var formatCount uint32
	err = vk.Error(vk.GetPhysicalDeviceSurfaceFormats(pd, surface, &formatCount, nil))
	if err != nil {
		return details, errors.Wrap(err, "reading number of surface formats")
	}
	details.Formats = make([]vk.SurfaceFormat, formatCount)
	err = vk.Error(vk.GetPhysicalDeviceSurfaceFormats(pd, surface, &formatCount, details.Formats))
	if err != nil {
		return details, errors.Wrapf(err, "reading %d surface formats", formatCount)
	}
	for i := range details.Formats {
		details.Formats[i].Deref()
	}

	var presentModeCount uint32
	err = vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(pd, surface, &presentModeCount, nil))
	if err != nil {
		return details, errors.Wrap(err, "reading number of present modes")
	}
	details.PresentModes = make([]vk.PresentMode, presentModeCount)
	err = vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(pd, surface, &presentModeCount, details.PresentModes))
	if err != nil {
		return details, errors.Wrapf(err, "reading %d present modes", presentModeCount)
	}

	return details, nil
}

func readSwapChainImages(device vk.Device, swapChain vk.Swapchain) ([]vk.Image, error) {
	var imgCount uint32
	err := vk.Error(vk.GetSwapchainImages(device, swapChain, &imgCount, nil))
	if err != nil {
		return nil, errors.Wrap(err, "reading number of swapchain images")
	}
	imgs := make([]vk.Image, imgCount)
	err = vk.Error(vk.GetSwapchainImages(device, swapChain, &imgCount, imgs))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %d swapchain images", imgCount)
	}
	return imgs, nil
}
