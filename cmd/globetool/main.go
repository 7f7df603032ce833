// globetool is a CLI utility for inspecting the tilted globe geometry.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tilted-globe/internal/config"
	"github.com/Faultbox/tilted-globe/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	app := &app{cfg: cfg, out: os.Stdout, now: time.Now}
	if err := app.run(args[0], args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			printUsage()
			os.Exit(1)
		}
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`globetool - tilted globe geometry utility

Usage:
  globetool [flags] <command> [options]

Commands:
  ring <latitude>        Print one ring's positions and normals
  geodetic               Print nominal to geodetic latitude table
  sun                    Show the subsolar point and hour angle
  globe                  Build every ring and show a summary
  camera <moves...>      Apply camera moves and print the result
  pick <x> <y> [moves]   Find the latitude/longitude under a pixel

Flags:
  -config <file>  -debug  -log-file <file>
  -ring-size <n>  -step <deg>  -time <RFC3339>  -no-tilt

Examples:
  globetool ring 45
  globetool -ring-size 7 ring -offset 0.5 -- -30
  globetool geodetic -from 0 -to 90 -by 15
  globetool -time 2024-06-20T21:00:00Z sun
  globetool camera forward yaw yaw pitch-
  globetool pick -width 1024 -height 768 512 384 back back back`)
}
