package renderer

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// Utility functions wrapping the raw go bindings to provide a more go-lang style interface. This should not
// hide or alter behavior and only allow for more tidy core code by tweaking signatures.

func VkCreateInstance(pCreateInfo *vk.InstanceCreateInfo, pAllocator *vk.AllocationCallbacks) (vk.Instance, error) {
	var in vk.Instance
	err := vk.Error(vk.CreateInstance(pCreateInfo, pAllocator, &in))
	if err != nil {
		return nil, err
	}
	err = vk.InitInstance(in)
	if err != nil {
		return nil, err
	}
	return in, nil
}

// VkCreateSurface turns the raw surface pointer returned by the windowing layer into a vk.Surface.
func VkCreateSurface(src SurfaceSource, instance vk.Instance) (vk.Surface, error) {
	surfPtr, err := src.VulkanCreateSurface(instance)
	if err != nil {
		return nil, err
	}
	if surfPtr == nil {
		return nil, errors.New("window returned a nil surface")
	}
	return vk.SurfaceFromPointer(uintptr(surfPtr)), nil
}

func VkCreateDebugReportCallback(instance vk.Instance, pCreateInfo *vk.DebugReportCallbackCreateInfo, pAllocator *vk.AllocationCallbacks) (vk.DebugReportCallback, error) {
	var cb vk.DebugReportCallback
	err := vk.Error(vk.CreateDebugReportCallback(instance, pCreateInfo, pAllocator, &cb))
	if err != nil {
		return vk.NullDebugReportCallback, err
	}
	return cb, nil
}

func VkCreateDevice(physicalDevice vk.PhysicalDevice, pCreateInfo *vk.DeviceCreateInfo, pAllocator *vk.AllocationCallbacks) (vk.Device, error) {
	var d vk.Device
	err := vk.Error(vk.CreateDevice(physicalDevice, pCreateInfo, pAllocator, &d))
	if err != nil {
		return nil, err
	}
	return d, nil
}

func VkGetDeviceQueue(device vk.Device, queueFamilyIndex *uint32, queueIndex uint32) (vk.Queue, error) {
	var q vk.Queue
	if queueFamilyIndex == nil {
		return nil, ErrQueueFamilyIndexUnset
	}
	vk.GetDeviceQueue(device, *queueFamilyIndex, queueIndex, &q)
	return q, nil
}

func VkCreateSwapChain(device vk.Device, pCreateInfo *vk.SwapchainCreateInfo, pAllocator *vk.AllocationCallbacks) (vk.Swapchain, error) {
	var sc vk.Swapchain
	err := vk.Error(vk.CreateSwapchain(device, pCreateInfo, pAllocator, &sc))
	if err != nil {
		return nil, err
	}
	return sc, nil
}

func VkCreateImageView(device vk.Device, pCreateInfo *vk.ImageViewCreateInfo, pAllocator *vk.AllocationCallbacks) (vk.ImageView, error) {
	var iv vk.ImageView
	err := vk.Error(vk.CreateImageView(device, pCreateInfo, pAllocator, &iv))
	if err != nil {
		return nil, err
	}
	return iv, nil
}

// SurfaceSource is the part of a window the renderer needs. *sdl.Window satisfies it.
type SurfaceSource interface {
	VulkanGetInstanceExtensions() []string
	VulkanCreateSurface(instance interface{}) (unsafe.Pointer, error)
	VulkanGetDrawableSize() (int32, int32)
}
