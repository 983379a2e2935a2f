// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads and saves the problem parameters that ellctl feeds
// to the example oracles: LMI matrices, profit-oracle coefficients, and
// lowpass-filter design parameters.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// SymMatrixConfig is the on-disk form of a symmetric matrix, stored as its
// row-major upper-triangle-reflected data (matching oracles.SymMat).
type SymMatrixConfig struct {
	N    int       `yaml:"n"`
	Data []float64 `yaml:"data"`
}

// MatrixConfig is the on-disk form of a general matrix (matching
// oracles.Mat). No problem section of ProblemConfig uses it.
type MatrixConfig struct {
	Rows int       `yaml:"rows"`
	Cols int       `yaml:"cols"`
	Data []float64 `yaml:"data"`
}

// LMIConfig parameterizes an oracles.LMIOracle or oracles.LMI0Oracle
// problem: find x with B - sum(F[i]*x[i]) PSD (B is ignored for the
// homogeneous LMI0 variant).
type LMIConfig struct {
	F []SymMatrixConfig `yaml:"f"`
	B SymMatrixConfig   `yaml:"b"`
}

// ProfitConfig parameterizes an oracles.ProfitOracle family problem.
type ProfitConfig struct {
	Price     float64   `yaml:"price"`
	Scale     float64   `yaml:"scale"`
	Limit     float64   `yaml:"limit"`
	Elasticity []float64 `yaml:"elasticity"`
	UnitCost  []float64 `yaml:"unit_cost"`
	// Uncertainty, if non-empty, selects the robust variant.
	Uncertainty []float64 `yaml:"uncertainty,omitempty"`
}

// LowpassConfig parameterizes a BuildLowpassDesign call.
type LowpassConfig struct {
	Taps       int     `yaml:"taps"`
	Samples    int     `yaml:"samples"`
	Wpass      float64 `yaml:"wpass"`
	Wstop      float64 `yaml:"wstop"`
	DeltaPass  float64 `yaml:"delta_pass"`
	DeltaStop  float64 `yaml:"delta_stop"`
}

// ScalingEdgeConfig is one edge of an OptScalingOracle network.
type ScalingEdgeConfig struct {
	U    int64   `yaml:"u"`
	V    int64   `yaml:"v"`
	Cost float64 `yaml:"cost"`
}

// OptScalingConfig parameterizes an oracles.OptScalingOracle problem.
type OptScalingConfig struct {
	Nodes int                 `yaml:"nodes"`
	Edges []ScalingEdgeConfig `yaml:"edges"`
}

// CycleEdgeConfig is one edge of a CycleRatioProblem.
type CycleEdgeConfig struct {
	U    int64   `yaml:"u"`
	V    int64   `yaml:"v"`
	Cost float64 `yaml:"cost"`
	Time float64 `yaml:"time"`
}

// CycleRatioConfig parameterizes an oracles.CycleRatioProblem.
type CycleRatioConfig struct {
	Nodes int               `yaml:"nodes"`
	Edges []CycleEdgeConfig `yaml:"edges"`
}

// ProblemConfig is the top-level document ellctl reads: exactly one of
// its non-nil fields selects which oracle a command runs.
type ProblemConfig struct {
	LMI        *LMIConfig        `yaml:"lmi,omitempty"`
	Profit     *ProfitConfig     `yaml:"profit,omitempty"`
	Lowpass    *LowpassConfig    `yaml:"lowpass,omitempty"`
	OptScaling *OptScalingConfig `yaml:"opt_scaling,omitempty"`
	CycleRatio *CycleRatioConfig `yaml:"cycle_ratio,omitempty"`
}

// Loader reads a ProblemConfig document. Format is auto-detected from the
// file extension, or pinned by format if non-empty.
type Loader struct {
	format string
	log    zerolog.Logger
}

// NewLoader constructs a Loader. An empty format auto-detects per file.
func NewLoader(format string, log zerolog.Logger) *Loader {
	return &Loader{format: strings.ToLower(format), log: log}
}

// Load reads and decodes the document at path.
func (l *Loader) Load(path string) (*ProblemConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	format := l.detectFormat(path)
	l.log.Debug().Str("path", path).Str("format", format).Msg("loading problem config")
	return l.LoadFromReader(f, format)
}

// LoadFromReader decodes a ProblemConfig from an already-open reader.
func (l *Loader) LoadFromReader(r io.Reader, format string) (*ProblemConfig, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		var cfg ProblemConfig
		if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
		return &cfg, nil
	default:
		return nil, fmt.Errorf("config: unsupported format %q (supported: yaml)", format)
	}
}

func (l *Loader) detectFormat(path string) string {
	if l.format != "" {
		return l.format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "yaml"
	}
}

// Saver writes a ProblemConfig document, mirroring Loader.
type Saver struct {
	format string
	log    zerolog.Logger
}

// NewSaver constructs a Saver. An empty format auto-detects per file.
func NewSaver(format string, log zerolog.Logger) *Saver {
	return &Saver{format: strings.ToLower(format), log: log}
}

// Save encodes cfg to path.
func (s *Saver) Save(path string, cfg *ProblemConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	format := s.detectFormat(path)
	s.log.Debug().Str("path", path).Str("format", format).Msg("saving problem config")
	return s.SaveToWriter(f, format, cfg)
}

// SaveToWriter encodes cfg to an already-open writer.
func (s *Saver) SaveToWriter(w io.Writer, format string, cfg *ProblemConfig) error {
	if cfg == nil {
		return fmt.Errorf("config: cannot save nil config")
	}
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("config: unsupported format %q (supported: yaml)", format)
	}
}

func (s *Saver) detectFormat(path string) string {
	if s.format != "" {
		return s.format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "yaml"
	}
}
