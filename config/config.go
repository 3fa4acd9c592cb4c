package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	BackendVulkan = "vulkan"
	BackendOpenGL = "opengl"
)

// Centered mirrors SDL_WINDOWPOS_CENTERED so this package stays free of cgo.
const Centered int32 = 0x2FFF0000

const EnvPrefix = "ICY"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config gathers everything needed to open a window and bring up its renderer. It is usually obtained via Load,
// which layers a config file and ICY_* environment variables on top of Default.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Vulkan VulkanConfig `mapstructure:"vulkan"`
	GL     GLConfig     `mapstructure:"gl"`
}

type WindowConfig struct {
	Title     string `mapstructure:"title"`
	X         int32  `mapstructure:"x"`
	Y         int32  `mapstructure:"y"`
	Width     int32  `mapstructure:"width"`
	Height    int32  `mapstructure:"height"`
	Backend   string `mapstructure:"backend"`
	Resizable bool   `mapstructure:"resizable"`
}

// VulkanConfig controls instance and device creation. With EnableAllLayers set every layer reported by the loader
// is enabled except ExcludedLayers, otherwise exactly ValidationLayers are requested.
type VulkanConfig struct {
	ApplicationName    string   `mapstructure:"application_name"`
	EngineName         string   `mapstructure:"engine_name"`
	Validation         bool     `mapstructure:"validation"`
	ValidationLayers   []string `mapstructure:"validation_layers"`
	EnableAllLayers    bool     `mapstructure:"enable_all_layers"`
	ExcludedLayers     []string `mapstructure:"excluded_layers"`
	DeviceExtensions   []string `mapstructure:"device_extensions"`
	PreferMailbox      bool     `mapstructure:"prefer_mailbox"`
	RequireDiscreteGPU bool     `mapstructure:"require_discrete_gpu"`
}

type GLConfig struct {
	Major        int  `mapstructure:"major"`
	Minor        int  `mapstructure:"minor"`
	DepthSize    int  `mapstructure:"depth_size"`
	DoubleBuffer bool `mapstructure:"double_buffer"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:   "Hello Triangle",
			X:       Centered,
			Y:       Centered,
			Width:   500,
			Height:  500,
			Backend: BackendVulkan,
		},
		Vulkan: VulkanConfig{
			ApplicationName:  "Hello Triangle",
			EngineName:       "Icy Engine",
			Validation:       true,
			ValidationLayers: []string{"VK_LAYER_KHRONOS_validation"},
			ExcludedLayers:   []string{"VK_LAYER_LUNARG_vktrace"},
			DeviceExtensions: []string{"VK_KHR_swapchain"},
			PreferMailbox:    true,
		},
		GL: GLConfig{
			Major:        4,
			Minor:        5,
			DepthSize:    24,
			DoubleBuffer: true,
		},
	}
}

// Load resolves the configuration from v. Keys not present in the optional config file (v's "config" key) or in
// the environment keep their Default value.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %q", file)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("window.title", cfg.Window.Title)
	v.SetDefault("window.x", cfg.Window.X)
	v.SetDefault("window.y", cfg.Window.Y)
	v.SetDefault("window.width", cfg.Window.Width)
	v.SetDefault("window.height", cfg.Window.Height)
	v.SetDefault("window.backend", cfg.Window.Backend)
	v.SetDefault("window.resizable", cfg.Window.Resizable)

	v.SetDefault("vulkan.application_name", cfg.Vulkan.ApplicationName)
	v.SetDefault("vulkan.engine_name", cfg.Vulkan.EngineName)
	v.SetDefault("vulkan.validation", cfg.Vulkan.Validation)
	v.SetDefault("vulkan.validation_layers", cfg.Vulkan.ValidationLayers)
	v.SetDefault("vulkan.enable_all_layers", cfg.Vulkan.EnableAllLayers)
	v.SetDefault("vulkan.excluded_layers", cfg.Vulkan.ExcludedLayers)
	v.SetDefault("vulkan.device_extensions", cfg.Vulkan.DeviceExtensions)
	v.SetDefault("vulkan.prefer_mailbox", cfg.Vulkan.PreferMailbox)
	v.SetDefault("vulkan.require_discrete_gpu", cfg.Vulkan.RequireDiscreteGPU)

	v.SetDefault("gl.major", cfg.GL.Major)
	v.SetDefault("gl.minor", cfg.GL.Minor)
	v.SetDefault("gl.depth_size", cfg.GL.DepthSize)
	v.SetDefault("gl.double_buffer", cfg.GL.DoubleBuffer)
}

func (c Config) Validate() error {
	switch c.Window.Backend {
	case BackendVulkan, BackendOpenGL:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown backend %q", c.Window.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) {
		return errors.Wrapf(ErrInvalidConfig, "OpenGL %d.%d is below the 3.3 core minimum", c.GL.Major, c.GL.Minor)
	}
	if c.GL.DepthSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative depth size %d", c.GL.DepthSize)
	}
	if c.Vulkan.Validation && !c.Vulkan.EnableAllLayers && len(c.Vulkan.ValidationLayers) == 0 {
		return errors.Wrap(ErrInvalidConfig, "validation enabled but no layers requested")
	}
	return nil
}
