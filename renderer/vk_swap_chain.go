package renderer

import (
	"log"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

func (r *VulkanRenderer) querySwapChainSupport() (SwapChainSupportDetails, error) {
	return readSwapChainSupportDetails(r.physicalDevice, r.surface)
}

func (r *VulkanRenderer) createSwapChain() error {
	details, err := r.querySwapChainSupport()
	if err != nil {
		return err
	}
	r.scFormat, err = chooseSwapSurfaceFormat(details.Formats)
	if err != nil {
		return err
	}
	r.scPresentMode = chooseSwapPresentMode(details.PresentModes, r.cfg.PreferMailbox)
	drawableW, drawableH := r.window.VulkanGetDrawableSize()
	r.scExtent = chooseSwapExtent(details.Capabilities, drawableW, drawableH)
	imgCount := chooseImageCount(details.Capabilities)

	sharingMode, qFamIndices := r.qFamilies.sharingMode()

	createInfo := &vk.SwapchainCreateInfo{
		SType:                 vk.StructureTypeSwapchainCreateInfo,
		PNext:                 nil,
		Flags:                 0,
		Surface:               r.surface,
		MinImageCount:         imgCount,
		ImageFormat:           r.scFormat.Format,
		ImageColorSpace:       r.scFormat.ColorSpace,
		ImageExtent:           r.scExtent,
		ImageArrayLayers:      1,
		ImageUsage:            vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode:      sharingMode,
		QueueFamilyIndexCount: uint32(len(qFamIndices)),
		PQueueFamilyIndices:   qFamIndices,
		PreTransform:          details.Capabilities.CurrentTransform,
		CompositeAlpha:        vk.CompositeAlphaOpaqueBit,
		PresentMode:           r.scPresentMode,
		Clipped:               vk.True,
		OldSwapchain:          vk.NullSwapchain,
	}

	r.swapChain, err = VkCreateSwapChain(r.device, createInfo, nil)
	if err != nil {
		return errors.Wrap(err, "creating swapchain")
	}
	log.Printf("Successfully created swap chain: %d images, %dx%d, format %d, present mode %s",
		imgCount, r.scExtent.Width, r.scExtent.Height, r.scFormat.Format, toStringPresentMode(r.scPresentMode))
	return nil
}

func (r *VulkanRenderer) createImageViews() error {
	images, err := readSwapChainImages(r.device, r.swapChain)
	if err != nil {
		return err
	}
	r.scImages = images
	r.scImgViews = make([]vk.ImageView, 0, len(images))
	for i := range images {
		view, err := VkCreateImageView(r.device, colorImageViewCreateInfo(images[i], r.scFormat.Format), nil)
		if err != nil {
			return errors.Wrapf(err, "creating image view %d of %d", i, len(images))
		}
		r.scImgViews = append(r.scImgViews, view)
	}
	log.Printf("Successfully created %d image views", len(r.scImgViews))
	return nil
}

func colorImageViewCreateInfo(image vk.Image, format vk.Format) *vk.ImageViewCreateInfo {
	return &vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		PNext:    nil,
		Flags:    0,
		Image:    image,
		ViewType: vk.ImageViewType2d,
		Format:   format,
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleIdentity,
			G: vk.ComponentSwizzleIdentity,
			B: vk.ComponentSwizzleIdentity,
			A: vk.ComponentSwizzleIdentity,
		},
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}
}

func (r *VulkanRenderer) destroySwapChainAndDerivatives() {
	for i := range r.scImgViews {
		vk.DestroyImageView(r.device, r.scImgViews[i], nil)
	}
	r.scImgViews = nil
	r.scImages = nil
	if r.swapChain != vk.NullSwapchain {
		vk.DestroySwapchain(r.device, r.swapChain, nil)
		r.swapChain = vk.NullSwapchain
	}
}
