package config

import (
	"flag"
	"strings"

	"github.com/Faultbox/objmesh/pkg/encoding"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagEncoding   = flag.String("encoding", "", "Text encoding of the OBJ file ("+strings.Join(encoding.Names(), ", ")+")")
	flagTextureDir = flag.String("texture-dir", "", "Directory to load textures from")
	flagMaxTexture = flag.Int("max-texture-size", -1, "Downscale textures larger than this (0 = never)")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments (the command and its operands).
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagEncoding != "" {
		cfg.Input.Encoding = *flagEncoding
	}
	if *flagTextureDir != "" {
		cfg.Textures.Dir = *flagTextureDir
	}
	if *flagMaxTexture >= 0 {
		cfg.Textures.MaxSize = *flagMaxTexture
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
