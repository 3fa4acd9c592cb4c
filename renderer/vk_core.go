package renderer

import (
	"log"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
	"github.com/icy-engine/icy/config"
	"github.com/veandco/go-sdl2/sdl"
)

const applicationVersionMajor, applicationVersionMinor, applicationVersionPatch = 1, 0, 0

// VulkanRenderer owns every Vulkan object created for a window, from the instance down to the swapchain image
// views. It is brought up by Init and torn down by Cleanup.
type VulkanRenderer struct {
	cfg    config.VulkanConfig
	window SurfaceSource

	// Instance level
	instance vk.Instance
	layers   []string
	debugCb  vk.DebugReportCallback
	surface  vk.Surface

	// Device level
	physicalDevice vk.PhysicalDevice
	selected       DeviceReport
	reports        []DeviceReport
	queueFamProps  []QueueFamilyProps
	qFamilies      QueueFamilyIndices
	device         vk.Device
	graphicsQ      vk.Queue
	presentQ       vk.Queue

	// Target level
	swapChain     vk.Swapchain
	scImages      []vk.Image
	scImgViews    []vk.ImageView
	scFormat      vk.SurfaceFormat
	scPresentMode vk.PresentMode
	scExtent      vk.Extent2D

	initialized bool
}

func NewVulkanRenderer(cfg config.VulkanConfig) *VulkanRenderer {
	return &VulkanRenderer{
		cfg:     cfg,
		debugCb: vk.NullDebugReportCallback,
		surface: vk.NullSurface,

		swapChain: vk.NullSwapchain,
	}
}

type stage struct {
	name string
	run  func() error
}

func (r *VulkanRenderer) stages() []stage {
	return []stage{
		{"loader", initLoader},
		{"createInstance", r.createInstance},
		{"setupDebugCallback", r.setupDebugCallback},
		{"createSurface", r.createSurface},
		{"pickPhysicalDevice", r.pickPhysicalDevice},
		{"getQueueFamilies", r.getQueueFamilies},
		{"createLogicalDevice", r.createLogicalDevice},
		{"createSwapChain", r.createSwapChain},
		{"createImageViews", r.createImageViews},
	}
}

// Init runs the bring-up sequence against win. On failure everything created so far is released again and the
// returned error names the step that failed.
func (r *VulkanRenderer) Init(win SurfaceSource) error {
	if r.initialized {
		return ErrAlreadyInitialized
	}
	r.window = win
	for _, s := range r.stages() {
		if err := s.run(); err != nil {
			r.Cleanup()
			return stageError(s.name, err)
		}
	}
	r.initialized = true
	log.Println("Vulkan bring-up complete")
	return nil
}

// Cleanup destroys what exists in reverse creation order. Calling it again is a no-op.
func (r *VulkanRenderer) Cleanup() {
	if r.device != nil {
		vk.DeviceWaitIdle(r.device)
	}
	r.destroySwapChainAndDerivatives()
	if r.device != nil {
		vk.DestroyDevice(r.device, nil)
		r.device = nil
		r.graphicsQ = nil
		r.presentQ = nil
	}
	if r.debugCb != vk.NullDebugReportCallback {
		vk.DestroyDebugReportCallback(r.instance, r.debugCb, nil)
		r.debugCb = vk.NullDebugReportCallback
	}
	if r.surface != vk.NullSurface {
		vk.DestroySurface(r.instance, r.surface, nil)
		r.surface = vk.NullSurface
	}
	if r.instance != nil {
		vk.DestroyInstance(r.instance, nil)
		r.instance = nil
	}
	r.physicalDevice = nil
	r.initialized = false
}

// initLoader finds and loads the Vulkan addresses through SDL so driver level functions can be called.
func initLoader() error {
	vk.SetGetInstanceProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	return errors.Wrap(vk.Init(), "initializing Vulkan API")
}

func (r *VulkanRenderer) createInstance() error {
	supportedExt, err := readInstanceExtensionNames()
	if err != nil {
		return err
	}
	requiredExtensions := requiredInstanceExtensions(r.window.VulkanGetInstanceExtensions(), r.cfg.Validation)
	if err := checkInstanceExtensionSupport(requiredExtensions, supportedExt); err != nil {
		return err
	}

	availableLayers, err := readInstanceLayerNames()
	if err != nil {
		return err
	}
	r.layers, err = resolveLayers(r.cfg.Validation, r.cfg.EnableAllLayers, r.cfg.ValidationLayers, r.cfg.ExcludedLayers, availableLayers)
	if err != nil {
		return err
	}
	if r.cfg.Validation {
		log.Printf("Validation enabled with layers %v", r.layers)
	}

	applicationInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PNext:              nil,
		PApplicationName:   TerminatedStr(r.cfg.ApplicationName),
		ApplicationVersion: vk.MakeVersion(applicationVersionMajor, applicationVersionMinor, applicationVersionPatch),
		PEngineName:        TerminatedStr(r.cfg.EngineName),
		EngineVersion:      vk.MakeVersion(applicationVersionMajor, applicationVersionMinor, applicationVersionPatch),
		ApiVersion:         vk.MakeVersion(1, 0, 0),
	}
	createInfo := &vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PNext:                   nil,
		Flags:                   0,
		PApplicationInfo:        applicationInfo,
		EnabledLayerCount:       uint32(len(r.layers)),
		PpEnabledLayerNames:     TerminatedStrs(r.layers),
		EnabledExtensionCount:   uint32(len(requiredExtensions)),
		PpEnabledExtensionNames: TerminatedStrs(requiredExtensions),
	}
	r.instance, err = VkCreateInstance(createInfo, nil)
	if err != nil {
		return errors.Wrap(err, "creating vk instance")
	}
	log.Println("Successfully created vk instance")
	return nil
}

func (r *VulkanRenderer) setupDebugCallback() error {
	if !r.cfg.Validation {
		return nil
	}
	cb, err := VkCreateDebugReportCallback(r.instance, debugReportCreateInfo(), nil)
	if err != nil {
		return errors.Wrap(err, "creating debug report callback")
	}
	r.debugCb = cb
	return nil
}

func (r *VulkanRenderer) createSurface() error {
	surf, err := VkCreateSurface(r.window, r.instance)
	if err != nil {
		return errors.Wrap(err, "creating window's Vulkan surface")
	}
	r.surface = surf
	return nil
}

// Devices reports every physical device inspected during selection.
func (r *VulkanRenderer) Devices() []DeviceReport {
	return r.reports
}

func (r *VulkanRenderer) SelectedDevice() DeviceReport {
	return r.selected
}

func (r *VulkanRenderer) QueueFamilies() QueueFamilyIndices {
	return r.qFamilies
}

func (r *VulkanRenderer) SwapChainFormat() vk.SurfaceFormat {
	return r.scFormat
}

func (r *VulkanRenderer) SwapChainExtent() vk.Extent2D {
	return r.scExtent
}

func (r *VulkanRenderer) PresentMode() vk.PresentMode {
	return r.scPresentMode
}

func (r *VulkanRenderer) ImageViews() []vk.ImageView {
	return r.scImgViews
}

func (r *VulkanRenderer) Initialized() bool {
	return r.initialized
}
