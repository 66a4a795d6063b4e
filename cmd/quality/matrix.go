package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yyyoichi/pairmark"
	"github.com/yyyoichi/pairmark/ecc"
	"github.com/yyyoichi/pairmark/internal/attack"
	"gopkg.in/yaml.v3"
)

// matrix is the experiment grid: every parameter set is embedded once per
// image and read back after every attack.
type matrix struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Text       string    `yaml:"text"`
	Key        int64     `yaml:"key"`
	Tolerance  float64   `yaml:"tolerance"`
	BlockSizes []int     `yaml:"block_sizes"`
	Thresholds []float64 `yaml:"thresholds"`
	ECC        []string  `yaml:"ecc"`
	JPEG       []int     `yaml:"jpeg"`
	Gaussian   []float64 `yaml:"gaussian"`
	Resize     []float64 `yaml:"resize"`
}

func defaultMatrix() matrix {
	return matrix{
		Width:      512,
		Height:     512,
		Text:       "TEST_MARK",
		Key:        42,
		Tolerance:  0.1,
		BlockSizes: []int{8},
		Thresholds: []float64{5, 10, 20},
		ECC:        []string{"repetition-3", "golay"},
		JPEG:       []int{90, 70, 50},
		Gaussian:   []float64{0.005, 0.01, 0.02},
		Resize:     []float64{0.75, 0.5},
	}
}

// loadMatrix overlays the YAML file at path on the defaults. Lists in the
// file replace the default lists.
func loadMatrix(path string) (matrix, error) {
	m := defaultMatrix()
	if path == "" {
		return m, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

type param struct {
	blockSize int
	threshold float64
	ecc       string
}

func (m matrix) params() []param {
	var ps []param
	for _, bs := range m.BlockSizes {
		for _, t := range m.Thresholds {
			for _, e := range m.ECC {
				ps = append(ps, param{blockSize: bs, threshold: t, ecc: e})
			}
		}
	}
	return ps
}

func (m matrix) attacks() []attack.Attack {
	as := []attack.Attack{attack.None{}}
	for _, q := range m.JPEG {
		as = append(as, attack.JPEG{Quality: q})
	}
	for i, s := range m.Gaussian {
		as = append(as, attack.Gaussian{Sigma: s, Seed: uint64(i + 1)})
	}
	for _, s := range m.Resize {
		as = append(as, attack.Resample{Scale: s})
	}
	return as
}

func (p param) options(key int64) ([]pairmark.Option, error) {
	opts := []pairmark.Option{
		pairmark.WithKey(key),
		pairmark.WithBlockSize(p.blockSize),
		pairmark.WithThreshold(p.threshold),
	}
	if p.ecc == "golay" {
		return append(opts, pairmark.WithECC(ecc.Golay(ecc.DefaultShuffleSeed))), nil
	}
	rest, ok := strings.CutPrefix(p.ecc, "repetition-")
	r, err := strconv.Atoi(rest)
	if !ok || err != nil {
		return nil, fmt.Errorf("%w: unknown ecc %q", pairmark.ErrInvalidConfig, p.ecc)
	}
	opts = append(opts, pairmark.WithRepetition(r))
	return opts, nil
}
