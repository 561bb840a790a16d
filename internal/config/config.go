// Package config handles objtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Input     InputConfig               `yaml:"input"`
	Textures  TexturesConfig            `yaml:"textures"`
	Materials map[string]MaterialConfig `yaml:"materials"`
	Fallback  MaterialConfig            `yaml:"fallback"`
	Graphics  GraphicsConfig            `yaml:"graphics"`
	Logging   LoggingConfig             `yaml:"logging"`
}

// InputConfig holds OBJ reading settings.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // Text encoding of OBJ files (utf-8, euc-kr, cp1252, ...)
}

// TexturesConfig holds texture loading settings.
type TexturesConfig struct {
	Dir     string `yaml:"dir"`      // Directory texture filenames are relative to
	MaxSize int    `yaml:"max_size"` // Downscale larger textures to this edge length (0 = keep)
}

// MaterialConfig describes how a material is drawn: a texture when Texture
// is set, otherwise the flat Color.
type MaterialConfig struct {
	Color   [3]float32 `yaml:"color"`
	Texture string     `yaml:"texture,omitempty"`
}

// GraphicsConfig holds viewer window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the classroom scene's material palette.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Encoding: "utf-8",
		},
		Textures: TexturesConfig{
			Dir:     ".",
			MaxSize: 0,
		},
		Materials: map[string]MaterialConfig{
			"wood":      {Texture: "bench_wood.bmp"},
			"floor":     {Texture: "floor_texture.bmp"},
			"board":     {Color: [3]float32{0.0, 0.55, 0.29}},
			"projector": {Color: [3]float32{0.8, 0.8, 0.8}},
			"podium":    {Color: [3]float32{0.88, 0.63, 0.27}},
			"wall":      {Color: [3]float32{1.0, 0.99, 0.81}},
			"metal":     {Color: [3]float32{0.8, 0.8, 0.8}},
		},
		Fallback: MaterialConfig{
			Color: [3]float32{0.7, 0.7, 0.7},
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
