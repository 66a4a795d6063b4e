package pairmark

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/yyyoichi/pairmark/ecc"
	"github.com/yyyoichi/pairmark/internal/block"
	"github.com/yyyoichi/pairmark/internal/dct"
	"github.com/yyyoichi/pairmark/internal/gray"
	"github.com/yyyoichi/pairmark/internal/keyed"
	"github.com/yyyoichi/pairmark/internal/pairwise"
)

var (
	// ErrInvalidConfig reports a bad option: block size, repetition factor,
	// mid-band, threshold, usage ratio or peak.
	ErrInvalidConfig = pairwise.ErrInvalidConfig
	// ErrNotAligned is returned by EmbedGrid and ExtractGrid for grids that
	// were not padded to the block size.
	ErrNotAligned = pairwise.ErrNotAligned
	// ErrInvalidSize is returned by Extract for a negative payload size.
	ErrInvalidSize = errors.New("payload size must not be negative")
)

type (
	// Grid is a single channel image, row-major.
	Grid = block.Grid
	// Shape is an image size before padding.
	Shape = block.Shape
	// Band is the ordered list of mid-band coefficient positions.
	Band = keyed.Band
	// Position is a (u, v) coefficient index inside a block.
	Position = keyed.Position
)

var (
	DefaultBand = keyed.DefaultBand
	WideBand    = keyed.WideBand
)

// Embed embeds payload into src with the specified options.
// This is a convenience function that creates a Pairmark instance and calls its Embed method.
func Embed(ctx context.Context, src image.Image, payload []bool, opts ...Option) (*image.Gray, EmbedResult, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, EmbedResult{}, err
	}
	return p.Embed(ctx, src, payload)
}

// Extract extracts a size-bit payload from src with the specified options.
// This is a convenience function that creates a Pairmark instance and calls its Extract method.
func Extract(ctx context.Context, src image.Image, size int, opts ...Option) ([]bool, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return p.Extract(ctx, src, size)
}

// Pad grows g to a multiple of size with reflected edges and returns the
// original shape for Unpad.
func Pad(g Grid, size int) (Grid, Shape, error) {
	p, s, err := block.Pad(g, size)
	if err != nil {
		return Grid{}, Shape{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, s, nil
}

// Unpad crops g back to s.
func Unpad(g Grid, s Shape) Grid {
	return block.Unpad(g, s)
}

// Pairmark is a configured codec. It holds no per-image state and is safe
// for concurrent use.
type Pairmark struct {
	cfg      pairwise.Config
	scheme   ecc.Scheme
	dctCache *dct.Cache
}

// New initializes a codec. Embedding and extraction must use identical
// options. For default values, refer to the init function.
func New(opts ...Option) (*Pairmark, error) {
	p := new(Pairmark)
	if err := p.init(opts...); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pairmark) init(opts ...Option) error {
	p.cfg = pairwise.DefaultConfig()
	p.scheme = ecc.Repetition(3)
	p.dctCache = dct.NewCache()
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return err
		}
	}
	if err := ecc.Validate(p.scheme); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p.cfg.Validate()
}

// Embed embeds payload into src.
//
// Process:
//  1. Converts src to luma.
//  2. Pads it to the block size with reflected edges.
//  3. Expands payload with the error-correcting scheme.
//  4. Forces one coefficient pair per visited block.
//  5. Crops the padding and rounds to 8-bit gray.
//
// An image that is too small is not an error: the result reports how many
// code bits were applied.
func (p *Pairmark) Embed(ctx context.Context, src image.Image, payload []bool) (*image.Gray, EmbedResult, error) {
	g := p.fromImage(src)
	padded, shape, err := Pad(g, p.cfg.BlockSize)
	if err != nil {
		return nil, EmbedResult{}, err
	}
	marked, res, err := p.EmbedGrid(ctx, padded, p.scheme.Encode(payload))
	if err != nil {
		return nil, EmbedResult{}, err
	}
	res.Payload = len(payload)
	return p.toImage(Unpad(marked, shape)), res, nil
}

// Extract extracts a size-bit payload from src.
//
// Process:
//  1. Converts src to luma and pads it as Embed does.
//  2. Reads the code bits from the keyed blocks, zero filling bits beyond
//     the image's capacity.
//  3. Decodes them with the error-correcting scheme.
func (p *Pairmark) Extract(ctx context.Context, src image.Image, size int) ([]bool, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	g := p.fromImage(src)
	padded, _, err := Pad(g, p.cfg.BlockSize)
	if err != nil {
		return nil, err
	}
	code, err := p.ExtractGrid(ctx, padded, p.scheme.EncodedLen(size))
	if err != nil {
		return nil, err
	}
	return p.scheme.Decode(code, size), nil
}

// EmbedGrid writes already encoded bits into a copy of g, which must be
// padded to the block size.
func (p *Pairmark) EmbedGrid(ctx context.Context, g Grid, code []bool) (Grid, EmbedResult, error) {
	marked, applied, err := pairwise.Embed(ctx, g, code, p.cfg, p.dctCache)
	if err != nil {
		return Grid{}, EmbedResult{}, err
	}
	return marked, EmbedResult{Requested: len(code), Applied: applied}, nil
}

// ExtractGrid reads n encoded bits from g, which must be padded to the
// block size. It always returns n bits.
func (p *Pairmark) ExtractGrid(ctx context.Context, g Grid, n int) ([]bool, error) {
	return pairwise.Extract(ctx, g, n, p.cfg, p.dctCache)
}

// Encode expands payload with the configured error-correcting scheme.
func (p *Pairmark) Encode(payload []bool) []bool {
	return p.scheme.Encode(payload)
}

// Decode recovers a size-bit payload from extracted code bits.
func (p *Pairmark) Decode(code []bool, size int) []bool {
	return p.scheme.Decode(code, size)
}

// EncodedLen is the number of code bits embedded for a size-bit payload.
func (p *Pairmark) EncodedLen(size int) int {
	return p.scheme.EncodedLen(size)
}

// Capacity is the number of code bits a width x height image can carry
// after padding.
func (p *Pairmark) Capacity(width, height int) int {
	bs := p.cfg.BlockSize
	return p.cfg.Capacity((width+bs-1)/bs*bs, (height+bs-1)/bs*bs)
}

// Scheme returns the configured error-correcting scheme.
func (p *Pairmark) Scheme() ecc.Scheme {
	return p.scheme
}

func (p *Pairmark) fromImage(src image.Image) Grid {
	g := gray.FromImage(src)
	if p.cfg.Peak != 255 {
		gray.Scale(g, p.cfg.Peak/255)
	}
	return g
}

func (p *Pairmark) toImage(g Grid) *image.Gray {
	if p.cfg.Peak != 255 {
		gray.Scale(g, 255/p.cfg.Peak)
	}
	return gray.ToImage(g)
}

// Batch runs several watermark operations on one image, converting it to
// luma once.
type Batch struct {
	original Grid
}

// NewBatch converts src to luma and keeps it for later calls.
func NewBatch(src image.Image) *Batch {
	return &Batch{original: gray.FromImage(src)}
}

// Embed embeds payload into the cached image with the specified options.
func (b *Batch) Embed(ctx context.Context, payload []bool, opts ...Option) (*image.Gray, EmbedResult, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, EmbedResult{}, err
	}
	return p.Embed(ctx, b.image(), payload)
}

// Extract extracts a size-bit payload from the cached image with the specified options.
func (b *Batch) Extract(ctx context.Context, size int, opts ...Option) ([]bool, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return p.Extract(ctx, b.image(), size)
}

func (b *Batch) image() image.Image {
	return gray.ToImage(b.original)
}
