// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/luk036/ellalgo-go/cutting"
	"github.com/luk036/ellalgo-go/ell"
	"github.com/luk036/ellalgo-go/oracles"
)

func runLowpass(ctx context.Context, args []string, log zerolog.Logger) error {
	fs := flag.NewFlagSet("lowpass", flag.ExitOnError)
	path := fs.String("config", "", "path to a YAML problem file with a 'lowpass' section")
	radius := fs.Float64("radius", 40, "initial search sphere scale alpha (shape alpha*I, radius sqrt(alpha))")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("lowpass: -config is required")
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		return err
	}
	lp := cfg.Lowpass
	if lp == nil {
		return fmt.Errorf("lowpass: config has no 'lowpass' section")
	}

	design := oracles.BuildLowpassDesign(lp.Taps, lp.Samples, lp.Wpass, lp.Wstop, lp.DeltaPass, lp.DeltaStop)
	omega := oracles.NewLowpassOracle(design)

	x0 := make([]float64, lp.Taps)
	space := ell.NewEllipsoidSphere(*radius, x0)
	space.UseParallelCut = true

	x, t, info := cutting.CuttingPlaneDC(ctx, omega, space, design.Spsq0, cutting.DefaultOptions(), log)
	log.Info().Bool("feasible", info.Feasible).Int("iters", info.NumIters).
		Float64("stopband_energy", t).Floats64("taps", x).Msg("lowpass search finished")
	return nil
}
