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
	"github.com/luk036/ellalgo-go/oracle"
	"github.com/luk036/ellalgo-go/oracles"
)

func runProfit(ctx context.Context, args []string, log zerolog.Logger) error {
	fs := flag.NewFlagSet("profit", flag.ExitOnError)
	path := fs.String("config", "", "path to a YAML problem file with a 'profit' section")
	radius := fs.Float64("radius", 100, "initial search sphere scale alpha (shape alpha*I, radius sqrt(alpha))")
	discrete := fs.Bool("discrete", false, "use the integer-rounded variant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("profit: -config is required")
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		return err
	}
	p := cfg.Profit
	if p == nil {
		return fmt.Errorf("profit: config has no 'profit' section")
	}

	x0 := make([]float64, len(p.Elasticity))
	space := ell.NewEllipsoidSphere(*radius, x0)
	opts := cutting.DefaultOptions()

	if *discrete {
		omega := oracles.NewProfitQOracle(p.Price, p.Scale, p.Limit, p.Elasticity, p.UnitCost)
		x, t, info := cutting.CuttingPlaneQ(ctx, omega, space, 0, opts, log)
		log.Info().Bool("feasible", info.Feasible).Int("iters", info.NumIters).
			Int("retries", info.NumRetries).Float64("profit", t).Floats64("y", x).Msg("profit search finished")
		return nil
	}

	var omega oracle.OptimizationOracle
	if len(p.Uncertainty) > 0 {
		omega = oracles.NewProfitRbOracle(p.Price, p.Scale, p.Limit, p.Elasticity, p.UnitCost, p.Uncertainty, 1)
	} else {
		omega = oracles.NewProfitOracle(p.Price, p.Scale, p.Limit, p.Elasticity, p.UnitCost)
	}

	x, t, info := cutting.CuttingPlaneDC(ctx, omega, space, 0, opts, log)
	log.Info().Bool("feasible", info.Feasible).Int("iters", info.NumIters).
		Float64("profit", t).Floats64("y", x).Msg("profit search finished")
	return nil
}
