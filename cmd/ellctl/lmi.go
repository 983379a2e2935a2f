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
	"github.com/luk036/ellalgo-go/internal/config"
	"github.com/luk036/ellalgo-go/oracle"
	"github.com/luk036/ellalgo-go/oracles"
)

func toSymMat(c config.SymMatrixConfig) oracles.SymMat {
	return oracles.SymMat{N: c.N, Data: c.Data}
}

func runLMI(ctx context.Context, args []string, log zerolog.Logger) error {
	fs := flag.NewFlagSet("lmi", flag.ExitOnError)
	path := fs.String("config", "", "path to a YAML problem file with an 'lmi' section")
	radius := fs.Float64("radius", 100, "initial search sphere scale alpha (shape alpha*I, radius sqrt(alpha))")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("lmi: -config is required")
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		return err
	}
	if cfg.LMI == nil {
		return fmt.Errorf("lmi: config has no 'lmi' section")
	}

	fs2 := make([]oracles.SymMat, len(cfg.LMI.F))
	for i, f := range cfg.LMI.F {
		fs2[i] = toSymMat(f)
	}
	n := len(fs2)

	var omega oracle.FeasibilityOracle
	if len(cfg.LMI.B.Data) > 0 {
		omega = oracles.NewLMIOracle(fs2, toSymMat(cfg.LMI.B))
	} else {
		omega = oracles.NewLMI0Oracle(fs2)
	}

	x0 := make([]float64, n)
	space := ell.NewEllipsoidSphere(*radius, x0)

	x, info := cutting.CuttingPlaneFeas(ctx, omega, space, cutting.DefaultOptions(), log)
	log.Info().Bool("feasible", info.Feasible).Int("iters", info.NumIters).Floats64("x", x).Msg("lmi search finished")
	return nil
}
