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

func runOptScaling(ctx context.Context, args []string, log zerolog.Logger) error {
	fs := flag.NewFlagSet("optscaling", flag.ExitOnError)
	path := fs.String("config", "", "path to a YAML problem file with an 'opt_scaling' section")
	radius := fs.Float64("radius", 100, "initial search sphere scale alpha (shape alpha*I, radius sqrt(alpha))")
	t0 := fs.Float64("t0", 1e9, "initial upper bound on the scaling span")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("optscaling: -config is required")
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		return err
	}
	s := cfg.OptScaling
	if s == nil {
		return fmt.Errorf("optscaling: config has no 'opt_scaling' section")
	}

	edges := make([]oracles.ScalingEdge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = oracles.ScalingEdge{U: e.U, V: e.V, Cost: e.Cost}
	}
	omega := oracles.NewOptScalingOracle(s.Nodes, edges)

	space := ell.NewEllipsoidSphere(*radius, []float64{0, 0})
	x, t, info := cutting.CuttingPlaneDC(ctx, omega, space, *t0, cutting.DefaultOptions(), log)
	log.Info().Bool("feasible", info.Feasible).Int("iters", info.NumIters).
		Float64("span", t).Floats64("x", x).Msg("opt-scaling search finished")
	return nil
}
