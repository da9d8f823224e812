// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Game     GameConfig     `yaml:"game" toml:"game"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Audio    AudioConfig    `yaml:"audio" toml:"audio"`
	Debug    DebugConfig    `yaml:"debug" toml:"debug"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width          int    `yaml:"width" toml:"width"`
	Height         int    `yaml:"height" toml:"height"`
	VSync          bool   `yaml:"vsync" toml:"vsync"`
	Backend        string `yaml:"backend" toml:"backend"` // sdl or glfw
	SphereDepth    int    `yaml:"sphere_depth" toml:"sphere_depth"`
	CylinderFacets int    `yaml:"cylinder_facets" toml:"cylinder_facets"`
}

// Steering modes.
const (
	SteeringLanes = "lanes"
	SteeringFree  = "free"
)

// GameConfig holds gameplay tunables.
type GameConfig struct {
	ForwardSpeed   float32 `yaml:"forward_speed" toml:"forward_speed"`
	SpeedIncrement float32 `yaml:"speed_increment" toml:"speed_increment"`
	SpeedInterval  int     `yaml:"speed_interval" toml:"speed_interval"` // frames
	GroundRows     int     `yaml:"ground_rows" toml:"ground_rows"`
	CarRows        int     `yaml:"car_rows" toml:"car_rows"`
	RowSpacing     float32 `yaml:"row_spacing" toml:"row_spacing"`
	LaneWidth      float32 `yaml:"lane_width" toml:"lane_width"`
	Steering       string  `yaml:"steering" toml:"steering"`
	Seed           uint64  `yaml:"seed" toml:"seed"` // 0 seeds from the clock
}

// CameraConfig holds the fixed chase camera placement.
type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye" toml:"eye"`
	Target [3]float32 `yaml:"target" toml:"target"`
	Up     [3]float32 `yaml:"up" toml:"up"`
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" toml:"enabled"`
	MasterVolume float64 `yaml:"master_volume" toml:"master_volume"`
	SFXVolume    float64 `yaml:"sfx_volume" toml:"sfx_volume"`
	EngineVolume float64 `yaml:"engine_volume" toml:"engine_volume"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir" toml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format" toml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:          700,
			Height:         700,
			VSync:          true,
			Backend:        "sdl",
			SphereDepth:    5,
			CylinderFacets: 30,
		},
		Game: GameConfig{
			ForwardSpeed:   0.3,
			SpeedIncrement: 0.03,
			SpeedInterval:  100,
			GroundRows:     12,
			CarRows:        7,
			RowSpacing:     18,
			LaneWidth:      1.5,
			Steering:       SteeringLanes,
		},
		Camera: CameraConfig{
			Eye:    [3]float32{0, 6, -7},
			Target: [3]float32{0, 0, 8},
			Up:     [3]float32{0, 1, 0},
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			EngineVolume: 0.3,
		},
		Debug: DebugConfig{
			ScreenshotDir:    ".",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
