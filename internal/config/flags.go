package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
	flagBackend  = flag.String("backend", "", "Window backend: sdl or glfw")
	flagSeed     = flag.Uint64("seed", 0, "Random seed for traffic patterns (0 = clock)")
	flagSteering = flag.String("steering", "", "Steering mode: lanes or free")
	flagMute     = flag.Bool("mute", false, "Disable sound")

	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config dir and exit")
	flagExportCues = flag.String("export-cues", "", "Write the sound cues as WAV files to this directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// ExportCuesDir returns the --export-cues directory, or "" if not given.
func ExportCuesDir() string {
	return *flagExportCues
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagBackend != "" {
		cfg.Graphics.Backend = *flagBackend
	}
	if *flagSeed != 0 {
		cfg.Game.Seed = *flagSeed
	}
	if *flagSteering != "" {
		cfg.Game.Steering = *flagSteering
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
}
