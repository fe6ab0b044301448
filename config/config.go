package config

import (
	"os"

	"github.com/bytedance/sonic"
)

// RGB is an 8-bit colour triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorBand bounds each channel exclusively: Min < c < Max.
type ColorBand struct {
	Min RGB `json:"min"`
	Max RGB `json:"max"`
}

// Contains reports whether (r, g, b) lies strictly inside the band.
func (b ColorBand) Contains(r, g, bl uint8) bool {
	return b.Min.R < r && r < b.Max.R &&
		b.Min.G < g && g < b.Max.G &&
		b.Min.B < bl && bl < b.Max.B
}

// Config holds runtime configuration for detection and session behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
// Pixel values are expressed at ReferenceWidth.
type Config struct {
	Debug    bool   `json:"debug"`
	DebugDir string `json:"debug_dir"`

	// Detection parameters
	ReferenceWidth      int       `json:"reference_width"`
	ScanStartRow        int       `json:"scan_start_row"`
	PieceBand           ColorBand `json:"piece_band"`
	PieceHalfWidth      int       `json:"piece_half_width"`
	PieceBaseOffset     int       `json:"piece_base_offset"`
	BaselineTolerance   int       `json:"baseline_tolerance"`
	HighlightColor      RGB       `json:"highlight_color"`
	HighlightSearchRows int       `json:"highlight_search_rows"`
	HighlightOffset     int       `json:"highlight_offset"`
	FallbackOffset      int       `json:"fallback_offset"`

	// Press timing
	PressCoefficient float64 `json:"press_coefficient"`
	MinPressMs       int     `json:"min_press_ms"`
	MaxPressMs       int     `json:"max_press_ms"` // 0 = no ceiling
	PressX           int     `json:"press_x"`
	PressY           int     `json:"press_y"`

	// Capture / device
	Source       string `json:"source"` // adb, screen or file
	ImagePath    string `json:"image_path"`
	ADBPath      string `json:"adb_path"`
	DeviceSerial string `json:"device_serial"`
	RemotePath   string `json:"remote_path"`

	// Screen source selection rectangle; zero size captures the whole screen.
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`

	// Pacing
	FirstRestAfterMin int     `json:"first_rest_after_min"`
	FirstRestAfterMax int     `json:"first_rest_after_max"`
	FirstRestSecMin   int     `json:"first_rest_sec_min"`
	FirstRestSecMax   int     `json:"first_rest_sec_max"`
	RestAfterMin      int     `json:"rest_after_min"`
	RestAfterMax      int     `json:"rest_after_max"`
	RestSecMin        int     `json:"rest_sec_min"`
	RestSecMax        int     `json:"rest_sec_max"`
	SettleMinSeconds  float64 `json:"settle_min_seconds"`
	SettleMaxSeconds  float64 `json:"settle_max_seconds"`

	// Session guards
	MaxJumps          int `json:"max_jumps"` // 0 = run until cancelled
	MaxDetectFailures int `json:"max_detect_failures"`
	StallHashDistance int `json:"stall_hash_distance"`
	StallFrames       int `json:"stall_frames"` // 0 disables the stall guard
}

// DefaultConfig returns a Config populated with the reference calibration
// (1080 px wide screen).
func DefaultConfig() *Config {
	return &Config{
		Debug:               false,
		DebugDir:            "debug",
		ReferenceWidth:      1080,
		ScanStartRow:        700,
		PieceBand:           ColorBand{Min: RGB{50, 50, 57}, Max: RGB{55, 55, 62}},
		PieceHalfWidth:      4,
		PieceBaseOffset:     190,
		BaselineTolerance:   1,
		HighlightColor:      RGB{254, 254, 254},
		HighlightSearchRows: 150,
		HighlightOffset:     10,
		FallbackOffset:      100,
		PressCoefficient:    1.392,
		MinPressMs:          200,
		MaxPressMs:          0,
		PressX:              200,
		PressY:              200,
		Source:              "adb",
		ADBPath:             "adb",
		RemotePath:          "/sdcard/autojump.png",
		FirstRestAfterMin:   3,
		FirstRestAfterMax:   10,
		FirstRestSecMin:     5,
		FirstRestSecMax:     10,
		RestAfterMin:        30,
		RestAfterMax:        100,
		RestSecMin:          10,
		RestSecMax:          60,
		SettleMinSeconds:    0.9,
		SettleMaxSeconds:    1.2,
		MaxJumps:            0,
		MaxDetectFailures:   3,
		StallHashDistance:   0,
		StallFrames:         5,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.ReferenceWidth < 0 {
		c.ReferenceWidth = 0
	}
	if c.ScanStartRow < 0 {
		c.ScanStartRow = 0
	}
	if c.PieceHalfWidth < 0 {
		c.PieceHalfWidth = 0
	}
	if c.PieceBaseOffset < 0 {
		c.PieceBaseOffset = d.PieceBaseOffset
	}
	if c.BaselineTolerance < 0 {
		c.BaselineTolerance = d.BaselineTolerance
	}
	if c.HighlightSearchRows < 0 {
		c.HighlightSearchRows = 0
	}
	if c.PressCoefficient <= 0 {
		c.PressCoefficient = d.PressCoefficient
	}
	if c.MinPressMs < 0 {
		c.MinPressMs = d.MinPressMs
	}
	if c.MaxPressMs < 0 || (c.MaxPressMs > 0 && c.MaxPressMs < c.MinPressMs) {
		c.MaxPressMs = 0
	}
	switch c.Source {
	case "adb", "screen", "file":
	default:
		c.Source = d.Source
	}
	if c.ADBPath == "" {
		c.ADBPath = d.ADBPath
	}
	if c.RemotePath == "" {
		c.RemotePath = d.RemotePath
	}
	if c.FirstRestAfterMin < 1 {
		c.FirstRestAfterMin = 1
	}
	if c.FirstRestAfterMax <= c.FirstRestAfterMin {
		c.FirstRestAfterMax = c.FirstRestAfterMin + 1
	}
	if c.RestAfterMin < 1 {
		c.RestAfterMin = 1
	}
	if c.RestAfterMax <= c.RestAfterMin {
		c.RestAfterMax = c.RestAfterMin + 1
	}
	if c.FirstRestSecMin < 0 {
		c.FirstRestSecMin = 0
	}
	if c.FirstRestSecMax <= c.FirstRestSecMin {
		c.FirstRestSecMax = c.FirstRestSecMin + 1
	}
	if c.RestSecMin < 0 {
		c.RestSecMin = 0
	}
	if c.RestSecMax <= c.RestSecMin {
		c.RestSecMax = c.RestSecMin + 1
	}
	if c.SettleMinSeconds < 0 {
		c.SettleMinSeconds = 0
	}
	if c.SettleMaxSeconds < c.SettleMinSeconds {
		c.SettleMaxSeconds = c.SettleMinSeconds
	}
	if c.MaxJumps < 0 {
		c.MaxJumps = 0
	}
	if c.MaxDetectFailures < 1 {
		c.MaxDetectFailures = 1
	}
	if c.StallHashDistance < 0 {
		c.StallHashDistance = 0
	}
	if c.StallFrames < 0 {
		c.StallFrames = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := sonic.ConfigStd.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	data, err := sonic.ConfigStd.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
