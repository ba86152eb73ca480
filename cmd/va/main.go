package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/viewadapt/pkg/display"
	"github.com/Dicklesworthstone/viewadapt/pkg/host"
	"github.com/Dicklesworthstone/viewadapt/pkg/responsive"
	"github.com/Dicklesworthstone/viewadapt/pkg/ui"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	profilePath := flag.String("profile", "", "Drive the engine from a YAML device profile instead of the terminal")
	settingsPath := flag.String("settings", "", "Load timing settings from a YAML file")
	headless := flag.Bool("headless", false, "Print the deterministic default configuration and exit")
	viewportOverride := flag.String("viewport", "", "Start in a forced viewport class (small/medium/large, or mobile/tablet/desktop); the next resize reclassifies from real dimensions")
	verbose := flag.Bool("verbose", false, "Log engine events to stderr")
	flag.Parse()

	if *help {
		fmt.Println("Usage: va [options]")
		fmt.Println("\nAn adaptive-configuration dashboard. Resize the terminal (or edit")
		fmt.Println("the device profile) and watch the derived configuration follow.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("va version 0.1.0")
		os.Exit(0)
	}

	settings, err := responsive.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		os.Exit(1)
	}

	log := zerolog.Nop()
	if *verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	if *headless {
		m := responsive.New(host.Headless{}, responsive.WithSettings(settings))
		defer m.Destroy()
		printConfig(m.Config())
		return
	}

	var opts []responsive.Option
	opts = append(opts, responsive.WithSettings(settings), responsive.WithLogger(log))

	var env host.Environment
	if *profilePath != "" {
		ph, err := host.NewProfileHost(*profilePath, log)
		if err != nil {
			fmt.Printf("Error loading device profile: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, responsive.WithCleanup(ph.Close))
		env = ph
	} else {
		term := host.NewTerminal()
		opts = append(opts, responsive.WithCleanup(term.Close))
		env = term
	}

	manager := responsive.New(env, opts...)
	defer manager.Destroy()

	if *viewportOverride != "" {
		cat, ok := display.ParseCategory(*viewportOverride)
		if !ok {
			fmt.Printf("Unknown viewport class %q\n", *viewportOverride)
			os.Exit(1)
		}
		manager.UpdateLayout(cat)
	}

	p := tea.NewProgram(ui.NewModel(manager), tea.WithAltScreen())

	unsubscribe := manager.Subscribe(func(cfg responsive.Config) {
		p.Send(ui.ConfigMsg(cfg))
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}

// printConfig writes the configuration as YAML with the enums spelled
// out, which is what scripts consuming --headless want to diff against.
func printConfig(cfg responsive.Config) {
	out := map[string]any{
		"viewport":    cfg.Viewport.String(),
		"orientation": cfg.Orientation.String(),
		"capabilities": map[string]any{
			"tier":                cfg.Capabilities.Tier.String(),
			"max_pixel_ratio":     cfg.Capabilities.MaxPixelRatio,
			"advanced_graphics":   cfg.Capabilities.SupportsAdvancedGraphics,
			"max_texture_size":    cfg.Capabilities.MaxTextureSize,
			"estimated_memory_gb": cfg.Capabilities.EstimatedMemoryGB,
			"touch":               cfg.Capabilities.TouchSupport,
			"orientation_api":     cfg.Capabilities.OrientationSupport,
			"network":             cfg.Capabilities.NetworkSpeed.String(),
			"voice":               cfg.Capabilities.HasVoiceSupport,
			"installable_pwa":     cfg.Capabilities.SupportsInstallablePWA,
		},
		"performance": map[string]any{
			"pixel_ratio":     cfg.Performance.PixelRatio,
			"shadow_quality":  cfg.Performance.Shadow.String(),
			"particle_budget": cfg.Performance.ParticleBudget,
			"antialiasing":    cfg.Performance.Antialiasing,
			"post_processing": cfg.Performance.PostProcessing,
			"max_lod":         cfg.Performance.MaxLOD,
		},
		"layout": map[string]any{
			"show_sidebar":       cfg.Layout.ShowSidebar,
			"full_screen_modals": cfg.Layout.FullScreenModals,
			"gestures":           cfg.Layout.GesturesEnabled,
			"touch_target_px":    cfg.Layout.TouchTargetPx,
			"navigation":         cfg.Layout.Navigation.String(),
		},
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		fmt.Printf("Error encoding configuration: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
