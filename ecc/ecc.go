// Package ecc expands payload bits before embedding and recovers them after
// extraction.
package ecc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRepetition = errors.New("repetition factor must be positive")
)

// Scheme is an error-correcting code over bit slices.
type Scheme interface {
	// Name identifies the scheme in reports.
	Name() string
	// Encode returns the code word for bits; its length is EncodedLen(len(bits)).
	Encode(bits []bool) []bool
	// Decode recovers size payload bits from a code word. A code word of the
	// wrong length is zero padded or truncated first.
	Decode(code []bool, size int) []bool
	// EncodedLen is the code word length for a size-bit payload.
	EncodedLen(size int) int
}

// Validator is implemented by schemes whose parameters can be invalid.
type Validator interface {
	Validate() error
}

// Validate reports whether s can be used. Schemes without parameters are
// always valid.
func Validate(s Scheme) error {
	if v, ok := s.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// fit returns bits resized to n, zero filling any missing tail. A negative n
// is treated as 0.
func fit(bits []bool, n int) []bool {
	n = max(n, 0)
	if len(bits) == n {
		return bits
	}
	out := make([]bool, n)
	_ = copy(out, bits)
	return out
}

func checkRepetition(r int) error {
	if r <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRepetition, r)
	}
	return nil
}
