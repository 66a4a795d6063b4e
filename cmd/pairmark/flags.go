package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/yyyoichi/pairmark"
	"github.com/yyyoichi/pairmark/ecc"
	"github.com/yyyoichi/pairmark/keygen"
)

// codecFlags are shared by every command; embed and extract must agree.
type codecFlags struct {
	key        int64
	secret     string
	salt       string
	threshold  float64
	repetition int
	ecc        string
	blockSize  int
	band       string
	ratio      float64
	adaptive   bool
	workers    int

	verbose, debug, human bool
}

func (c *codecFlags) register(fs *flag.FlagSet) {
	fs.Int64Var(&c.key, "key", 42, "integer embedding key")
	fs.StringVar(&c.secret, "secret", "", "derive the key from this passphrase instead of -key")
	fs.StringVar(&c.salt, "salt", "", "salt for -secret")
	fs.Float64Var(&c.threshold, "t", 10, "minimum coefficient difference forced per bit")
	fs.IntVar(&c.repetition, "r", 3, "repetition factor")
	fs.StringVar(&c.ecc, "ecc", "repetition", "error correction: repetition or golay")
	fs.IntVar(&c.blockSize, "block", 8, "DCT block size")
	fs.StringVar(&c.band, "band", "default", "mid-band: default or wide")
	fs.Float64Var(&c.ratio, "ratio", 1, "share of blocks that may carry bits")
	fs.BoolVar(&c.adaptive, "adaptive", false, "read bits by clustering instead of sign")
	fs.IntVar(&c.workers, "workers", 0, "goroutines per call, 0 for GOMAXPROCS")
	fs.BoolVar(&c.verbose, "v", false, "info logging")
	fs.BoolVar(&c.debug, "debug", false, "debug logging")
	fs.BoolVar(&c.human, "human", false, "human readable logs")
}

func (c *codecFlags) options() ([]pairmark.Option, error) {
	key := c.key
	if c.secret != "" {
		k, err := keygen.Derive([]byte(c.secret), []byte(c.salt), "image")
		if err != nil {
			return nil, err
		}
		key = k
	}
	opts := []pairmark.Option{
		pairmark.WithKey(key),
		pairmark.WithThreshold(c.threshold),
		pairmark.WithBlockSize(c.blockSize),
		pairmark.WithUsageRatio(c.ratio),
		pairmark.WithWorkers(c.workers),
	}
	switch strings.ToLower(c.ecc) {
	case "repetition", "rep":
		opts = append(opts, pairmark.WithRepetition(c.repetition))
	case "golay":
		opts = append(opts, pairmark.WithECC(ecc.Golay(ecc.DefaultShuffleSeed)))
	default:
		return nil, fmt.Errorf("%w: unknown ecc %q", pairmark.ErrInvalidConfig, c.ecc)
	}
	switch strings.ToLower(c.band) {
	case "default":
		opts = append(opts, pairmark.WithBand(pairmark.DefaultBand))
	case "wide":
		opts = append(opts, pairmark.WithBand(pairmark.WideBand))
	default:
		return nil, fmt.Errorf("%w: unknown band %q", pairmark.ErrInvalidConfig, c.band)
	}
	if c.adaptive {
		opts = append(opts, pairmark.WithAdaptiveDecision())
	}
	return opts, nil
}

// payloadFlags select a text or logo payload.
type payloadFlags struct {
	text          string
	textLen       int
	logo          string
	logoW, logoH  int
	logoThreshold uint
}

func (p *payloadFlags) registerLogo(fs *flag.FlagSet) {
	fs.IntVar(&p.logoW, "logo-w", 32, "logo width in bits")
	fs.IntVar(&p.logoH, "logo-h", 32, "logo height in bits")
	fs.UintVar(&p.logoThreshold, "logo-threshold", 127, "gray level a logo pixel must exceed to read as 1")
}
