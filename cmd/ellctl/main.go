// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ellctl drives the example separation oracles against a
// cutting-plane search described by a YAML problem file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/luk036/ellalgo-go/internal/config"
)

var (
	verbose = flag.Int("v", 0, "log verbosity (0=info, 1=debug, 2=trace)")
	vv      = flag.Bool("vv", false, "shortcut for -v=2")
)

func main() {
	verboseCount := 0
	hasVV := false
	for _, arg := range os.Args {
		switch arg {
		case "-v":
			verboseCount++
		case "-vv":
			hasVV = true
		}
	}

	flag.Parse()

	level := *verbose
	if hasVV {
		level = 2
	} else if *verbose == 0 && verboseCount > 0 {
		level = verboseCount
	}
	log := setupLogging(level)

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	commandArgs := args[1:]

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var err error
	switch command {
	case "lmi":
		err = runLMI(ctx, commandArgs, log)
	case "profit":
		err = runProfit(ctx, commandArgs, log)
	case "lowpass":
		err = runLowpass(ctx, commandArgs, log)
	case "optscaling":
		err = runOptScaling(ctx, commandArgs, log)
	case "cycleratio":
		err = runCycleRatio(ctx, commandArgs, log)
	case "help", "-h", "--help":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "ellctl: unknown command %q\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("command failed")
		os.Exit(1)
	}
}

func setupLogging(level int) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	switch level {
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: ellctl <command> -config <problem.yaml> [options]

Commands:
  lmi          Search an LMI/LMI0 feasibility problem
  profit       Maximize a Cobb-Douglas profit oracle
  lowpass      Search an FIR lowpass filter design
  optscaling   Search a network optimal-scaling problem
  cycleratio   Bisect a minimum-cycle-ratio problem

Common flags:
  -v=N         Log verbosity (0=info, 1=debug, 2=trace)
  -vv          Shortcut for -v=2
  -h, --help   Show this help message

Use 'ellctl <command> -h' for command-specific flags.
`)
}

func loadConfig(path string) (*config.ProblemConfig, error) {
	loader := config.NewLoader("", zerolog.Nop())
	return loader.Load(path)
}
