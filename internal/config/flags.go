package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagRotation = flag.String("rotation", "", "Rotation format: quaternion or euler")
	flagWorkers  = flag.Int("workers", 0, "Concurrent decodes for batch mode")
	flagOut      = flag.String("out", "", "Output directory for batch export")
	flagPretty   = flag.Bool("pretty", false, "Indent JSON output")
)

// ParseFlags parses command-line flags from args (everything after the
// subcommand) and returns the remaining positional arguments.
func ParseFlags(args []string) []string {
	_ = flag.CommandLine.Parse(args)
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
	if *flagRotation != "" {
		cfg.Decode.Rotation = *flagRotation
	}
	if *flagWorkers > 0 {
		cfg.Batch.Workers = *flagWorkers
	}
	if *flagOut != "" {
		cfg.Export.OutputDir = *flagOut
	}
	if *flagPretty {
		cfg.Export.Pretty = true
	}
}
