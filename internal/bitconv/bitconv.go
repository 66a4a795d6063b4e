// Package bitconv converts between bit slices and packed representations.
// Bytes are read most significant bit first.
package bitconv

import "github.com/yyyoichi/bitstream-go"

func BytesToBools(b []byte) []bool {
	bits := make([]bool, len(b)*8)
	for i, bb := range b {
		for j := range 8 {
			bits[i*8+j] = bb&(0x80>>j) != 0
		}
	}
	return bits
}

// BoolsToBytes packs bits into bytes, zero filling the last byte.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, v := range bits {
		if v {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}

// Pack writes bits into 64-bit words and returns the words and bit count.
func Pack(bits []bool) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	return w.Data(), w.Bits()
}

// Unpack reads the first n bits of data. Bits beyond data are false.
func Unpack(data []uint64, n int) []bool {
	r := bitstream.NewBitReader(data, 0, 0)
	bits := make([]bool, n)
	for i := range min(n, len(data)*64) {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}
