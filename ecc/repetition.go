package ecc

import "strconv"

var _ Scheme = Repetition(1)

// Repetition repeats every bit R times and decodes by strict majority.
// A chunk of R bits decodes correctly with up to (R-1)/2 flipped bits.
// A non-positive R fails Validate and encodes to nothing.
type Repetition int

var _ Validator = Repetition(1)

// NewRepetition validates r.
func NewRepetition(r int) (Repetition, error) {
	if err := checkRepetition(r); err != nil {
		return 0, err
	}
	return Repetition(r), nil
}

// EncodeRepetition duplicates each bit r consecutive times.
func EncodeRepetition(bits []bool, r int) ([]bool, error) {
	if err := checkRepetition(r); err != nil {
		return nil, err
	}
	return Repetition(r).Encode(bits), nil
}

// DecodeRepetition majority-decodes consecutive chunks of r bits. A final
// partial chunk is zero padded, so it yields one more output bit.
func DecodeRepetition(bits []bool, r int) ([]bool, error) {
	if err := checkRepetition(r); err != nil {
		return nil, err
	}
	return Repetition(r).majority(bits), nil
}

func (r Repetition) Validate() error {
	return checkRepetition(int(r))
}

func (r Repetition) Name() string {
	return "repetition-" + strconv.Itoa(int(r))
}

func (r Repetition) Encode(bits []bool) []bool {
	n := int(r)
	if n <= 0 {
		return []bool{}
	}
	out := make([]bool, len(bits)*n)
	for i, v := range bits {
		if !v {
			continue
		}
		for j := range n {
			out[i*n+j] = true
		}
	}
	return out
}

func (r Repetition) Decode(code []bool, size int) []bool {
	return fit(r.majority(fit(code, r.EncodedLen(size))), size)
}

func (r Repetition) EncodedLen(size int) int {
	if r <= 0 || size <= 0 {
		return 0
	}
	return size * int(r)
}

func (r Repetition) majority(bits []bool) []bool {
	n := int(r)
	if n <= 0 {
		return []bool{}
	}
	need := n/2 + 1
	out := make([]bool, (len(bits)+n-1)/n)
	for i := range out {
		ones := 0
		for _, v := range bits[i*n : min((i+1)*n, len(bits))] {
			if v {
				ones++
			}
		}
		out[i] = ones >= need
	}
	return out
}
