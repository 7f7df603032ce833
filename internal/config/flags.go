package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file")
	flagRingSize = flag.Int("ring-size", 0, "Vertices per latitude ring")
	flagStep     = flag.Float64("step", 0, "Degrees between latitude rings")
	flagTime     = flag.String("time", "", "Sun time (RFC 3339)")
	flagNoTilt   = flag.Bool("no-tilt", false, "Do not apply the axial tilt")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
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
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagRingSize > 0 {
		cfg.Ring.Size = *flagRingSize
	}
	if *flagStep > 0 {
		cfg.Ring.LatitudeStep = *flagStep
	}
	if *flagTime != "" {
		cfg.Sun.Time = *flagTime
	}
	if *flagNoTilt {
		cfg.Ring.Tilt = false
	}
}
