package ecc

import (
	"math/rand"

	"github.com/yyyoichi/golay"
	"github.com/yyyoichi/pairmark/internal/bitconv"
)

var (
	DefaultShuffleSeed int64 = 1234567890
)

var _ Scheme = (*shuffledgolay)(nil)

// Golay returns the extended binary Golay code (24,12), which corrects up to
// three errors per 24-bit word. The code word is deterministically shuffled
// with seed so that a burst of damaged neighbouring blocks spreads over many
// words.
//
// Scheme has no error return. Bits the golay decoder fails to produce are
// returned as zero, and show up as bit errors in verification.
func Golay(seed int64) Scheme {
	return shuffledgolay(seed)
}

type shuffledgolay int64

func (sg shuffledgolay) Name() string {
	return "golay"
}

func (sg shuffledgolay) Encode(bits []bool) []bool {
	if len(bits) == 0 {
		return []bool{}
	}
	data, size := bitconv.Pack(bits)
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(data, size)
	encodedLen := enc.Bits()

	plain := bitconv.Unpack(encoded, encodedLen)
	index := sg.generatePermutation(encodedLen)
	out := make([]bool, encodedLen)
	for i := range out {
		out[i] = plain[index[i]]
	}
	return out
}

func (sg shuffledgolay) Decode(code []bool, size int) []bool {
	if size <= 0 {
		return []bool{}
	}
	code = fit(code, sg.EncodedLen(size))

	// reverse shuffle: same permutation, inverse direction
	index := sg.generatePermutation(len(code))
	plain := make([]bool, len(code))
	for i, v := range code {
		plain[index[i]] = v
	}

	data, n := bitconv.Pack(plain)
	var decoded []uint64
	dec := golay.NewDecoder(data, n)
	_ = dec.Decode(&decoded)
	return bitconv.Unpack(decoded, size)
}

func (sg shuffledgolay) EncodedLen(size int) int {
	if size <= 0 {
		return 0
	}
	return golay.EncodedBits(size)
}

func (sg shuffledgolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(sg)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
