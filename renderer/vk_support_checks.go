package renderer

import (
	"log"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// Provides validation functions to ensure support and availability of requirements of layers/extensions and so on.

const debugReportExtensionName = "VK_EXT_debug_report"

// requiredInstanceExtensions is what the window needs plus debug reporting when validation is on.
func requiredInstanceExtensions(windowExt []string, validation bool) []string {
	exts := appendUnique(nil, windowExt...)
	if validation {
		exts = appendUnique(exts, debugReportExtensionName)
	}
	return exts
}

func checkInstanceExtensionSupport(required []string, supported []string) error {
	log.Printf("Required instance extensions: %v", required)
	log.Printf("Available extensions (%d):\n%v", len(supported), tableStringNames(supported))

	if missing := missingFrom(required, supported); len(missing) > 0 {
		return errors.Wrapf(ErrMissingExtension, "instance extensions %v", missing)
	}
	log.Println("Success - All required instance extensions are supported")
	return nil
}

// filterLayers keeps every available layer that is not excluded.
func filterLayers(available []string, excluded []string) []string {
	var layers []string
	for _, l := range available {
		if contains(excluded, l) {
			continue
		}
		layers = append(layers, l)
	}
	return layers
}

// resolveLayers decides which instance layers get enabled. In all-layers mode nothing can be missing, otherwise
// each requested layer has to be reported by the loader.
func resolveLayers(validation, allLayers bool, requested, excluded, available []string) ([]string, error) {
	if !validation {
		return nil, nil
	}
	if allLayers {
		return filterLayers(available, excluded), nil
	}
	log.Printf("Desired validation layers: %v", requested)
	log.Printf("Supported layers (%d):\n%v", len(available), tableStringNames(available))
	if missing := missingFrom(requested, available); len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingLayer, "layers %v (install the LunarG Vulkan SDK)", missing)
	}
	log.Println("Success - All desired validation layers are supported")
	return append([]string(nil), requested...), nil
}

func checkDeviceExtensionSupport(pd vk.PhysicalDevice, requiredDeviceExt []string) (bool, error) {
	supported, err := readDeviceExtensionNames(pd)
	if err != nil {
		return false, err
	}
	log.Printf("Required device extensions: %v", requiredDeviceExt)
	log.Printf("Available device extensions (%d) [...]\n", len(supported))
	return AllOfAinB(requiredDeviceExt, supported), nil
}
