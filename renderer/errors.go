package renderer

import "github.com/cockroachdb/errors"

var (
	ErrMissingExtension      = errors.New("required extension not available")
	ErrMissingLayer          = errors.New("requested layer not available")
	ErrNoPhysicalDevice      = errors.New("no Vulkan capable physical device")
	ErrNoSuitableDevice      = errors.New("no suitable physical device (GPU) found")
	ErrNoGraphicsQueue       = errors.New("unable to find graphics capable queue family")
	ErrNoPresentQueue        = errors.New("unable to find present capable queue family for given surface")
	ErrNoSurfaceFormat       = errors.New("surface reports no formats")
	ErrAlreadyInitialized    = errors.New("renderer already initialized")
	ErrQueueFamilyIndexUnset = errors.New("queue family index was nil")
)

// stageError tags err with the bring-up step that produced it.
func stageError(stage string, err error) error {
	return errors.Wrapf(err, "vulkan bring-up failed at %s", stage)
}
