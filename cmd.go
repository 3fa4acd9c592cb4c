package main

import (
	"fmt"
	"io"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/icy-engine/icy/config"
	"github.com/icy-engine/icy/renderer"
	"github.com/icy-engine/icy/window"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/veandco/go-sdl2/sdl"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"config":     "config",
	"backend":    "window.backend",
	"title":      "window.title",
	"width":      "window.width",
	"height":     "window.height",
	"validation": "vulkan.validation",
	"all-layers": "vulkan.enable_all_layers",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	def := config.Default()

	root := &cobra.Command{
		Use:           "icy",
		Short:         "Open a window and bring up its renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runPlayground(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to a config file")
	flags.String("backend", def.Window.Backend, "renderer backend, vulkan or opengl")
	flags.String("title", def.Window.Title, "window title")
	flags.Int32("width", def.Window.Width, "window width")
	flags.Int32("height", def.Window.Height, "window height")
	flags.Bool("validation", def.Vulkan.Validation, "enable Vulkan validation layers")
	flags.Bool("all-layers", def.Vulkan.EnableAllLayers, "enable every available Vulkan layer")
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Panicf("Failed to bind flag %s: %v", flag, err)
		}
	}

	root.AddCommand(newDevicesCmd(v))
	return root
}

func newDevicesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "Bring up Vulkan and list the physical devices it found",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return listDevices(cmd, cfg)
		},
	}
}

func runPlayground(cfg config.Config) error {
	w, err := window.New(cfg)
	if err != nil {
		return err
	}
	if err := window.Open(w, cfg.Window); err != nil {
		return err
	}
	defer w.Destroy()

	stats, err := loop(w)
	log.Println(stats)
	return err
}

func listDevices(cmd *cobra.Command, cfg config.Config) error {
	w := window.NewVulkanWindow(cfg.Vulkan)
	wc := cfg.Window
	defer w.Destroy()
	return reportDevices(cmd.OutOrStdout(), func() error {
		return w.Create(wc.Title, wc.X, wc.Y, wc.Width, wc.Height, uint32(sdl.WINDOW_HIDDEN))
	}, w.Renderer().Devices)
}

// reportDevices prints whatever devices bring-up inspected, also when it failed to find a suitable one.
func reportDevices(out io.Writer, bringUp func() error, devices func() []renderer.DeviceReport) error {
	err := bringUp()
	for _, report := range devices() {
		fmt.Fprintln(out, report.String())
	}
	return errors.Wrap(err, "bringing up Vulkan to list devices")
}
