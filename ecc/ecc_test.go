package ecc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBits(n int, seed int64) []bool {
	rd := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = rd.Intn(2) == 1
	}
	return bits
}

func TestRepetition(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		got, err := EncodeRepetition([]bool{true, false}, 3)
		require.NoError(t, err)
		assert.Equal(t, []bool{true, true, true, false, false, false}, got)
	})

	t.Run("round_trip", func(t *testing.T) {
		for r := 1; r <= 8; r++ {
			for _, n := range []int{0, 1, 7, 1024} {
				bits := randomBits(n, int64(r*n))
				enc, err := EncodeRepetition(bits, r)
				require.NoError(t, err)
				require.Len(t, enc, n*r)
				dec, err := DecodeRepetition(enc, r)
				require.NoError(t, err)
				assert.Equal(t, bits, dec, "r=%d n=%d", r, n)
			}
		}
	})

	t.Run("majority", func(t *testing.T) {
		// up to (r-1)/2 flips in every chunk still decode
		for _, r := range []int{3, 4, 5, 7} {
			bits := randomBits(300, int64(r))
			enc, _ := EncodeRepetition(bits, r)
			rd := rand.New(rand.NewSource(int64(r)))
			for i := range bits {
				for _, j := range rd.Perm(r)[:(r-1)/2] {
					enc[i*r+j] = !enc[i*r+j]
				}
			}
			dec, _ := DecodeRepetition(enc, r)
			assert.Equal(t, bits, dec, "r=%d", r)
		}
	})

	t.Run("single_flip", func(t *testing.T) {
		bits := []bool{true, false, true}
		for pos := range 9 {
			enc, _ := EncodeRepetition(bits, 3)
			enc[pos] = !enc[pos]
			dec, _ := DecodeRepetition(enc, 3)
			assert.Equal(t, bits, dec, "flip at %d", pos)
		}
	})

	t.Run("even_needs_strict_majority", func(t *testing.T) {
		dec, _ := DecodeRepetition([]bool{true, true, false, false, true, true, true, false}, 4)
		assert.Equal(t, []bool{false, true}, dec)
	})

	t.Run("partial_chunk", func(t *testing.T) {
		dec, _ := DecodeRepetition([]bool{true, true, true, true, true}, 3)
		assert.Equal(t, []bool{true, true}, dec)
		dec, _ = DecodeRepetition([]bool{true, true, true, true}, 3)
		assert.Equal(t, []bool{true, false}, dec)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, r := range []int{0, -3} {
			_, err := EncodeRepetition([]bool{true}, r)
			assert.ErrorIs(t, err, ErrInvalidRepetition)
			_, err = DecodeRepetition([]bool{true}, r)
			assert.ErrorIs(t, err, ErrInvalidRepetition)
			_, err = NewRepetition(r)
			assert.ErrorIs(t, err, ErrInvalidRepetition)

			s := Repetition(r)
			assert.ErrorIs(t, Validate(s), ErrInvalidRepetition)
			assert.Empty(t, s.Encode([]bool{true, false}))
			assert.Zero(t, s.EncodedLen(4))
			assert.Equal(t, make([]bool, 4), s.Decode([]bool{true, true}, 4))
		}
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Repetition(3)))
	assert.NoError(t, Validate(Golay(DefaultShuffleSeed)))
}

func TestDecode_NegativeSize(t *testing.T) {
	for _, s := range []Scheme{Repetition(3), Golay(DefaultShuffleSeed)} {
		assert.Zero(t, s.EncodedLen(-1), s.Name())
		assert.Empty(t, s.Decode([]bool{true, true, true}, -1), s.Name())
	}
}

func TestScheme(t *testing.T) {
	rep, err := NewRepetition(3)
	require.NoError(t, err)

	for _, s := range []Scheme{rep, Repetition(1), Golay(DefaultShuffleSeed), Golay(7)} {
		t.Run(s.Name(), func(t *testing.T) {
			for _, n := range []int{1, 12, 13, 100, 1024} {
				bits := randomBits(n, int64(n))
				enc := s.Encode(bits)
				require.Len(t, enc, s.EncodedLen(n))
				assert.Equal(t, bits, s.Decode(enc, n), "n=%d", n)

				// short and long code words never panic and keep the size
				assert.Len(t, s.Decode(enc[:len(enc)/2], n), n)
				assert.Len(t, s.Decode(append(enc, true, true), n), n)
			}
			assert.Empty(t, s.Decode(nil, 0))
		})
	}
}

func TestGolay_Corrects(t *testing.T) {
	s := Golay(DefaultShuffleSeed)
	bits := randomBits(240, 1)
	enc := s.Encode(bits)
	// one flipped bit lands in a single 24-bit word wherever the shuffle moves it
	for _, pos := range []int{0, 17, len(enc) - 1} {
		damaged := append([]bool(nil), enc...)
		damaged[pos] = !damaged[pos]
		assert.Equal(t, bits, s.Decode(damaged, len(bits)), "flip at %d", pos)
	}
}
