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
	"github.com/luk036/ellalgo-go/oracles"
)

func runCycleRatio(ctx context.Context, args []string, log zerolog.Logger) error {
	fs := flag.NewFlagSet("cycleratio", flag.ExitOnError)
	path := fs.String("config", "", "path to a YAML problem file with a 'cycle_ratio' section")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("cycleratio: -config is required")
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		return err
	}
	c := cfg.CycleRatio
	if c == nil {
		return fmt.Errorf("cycleratio: config has no 'cycle_ratio' section")
	}

	edges := make([]oracles.CycleEdge, len(c.Edges))
	for i, e := range c.Edges {
		edges[i] = oracles.CycleEdge{U: e.U, V: e.V, Cost: e.Cost, Time: e.Time}
	}
	problem := oracles.CycleRatioProblem{N: c.Nodes, Edges: edges}
	lo, hi := problem.Bounds()

	r, iters := cutting.Bsearch(ctx, problem, lo, hi, cutting.DefaultOptions(), log)
	log.Info().Int("iters", iters).Float64("min_cycle_ratio", r).Msg("cycle-ratio search finished")
	return nil
}
