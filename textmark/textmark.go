// Package textmark converts text payloads to bits, 8 bits per byte, most
// significant bit first.
package textmark

import (
	"strings"

	"github.com/yyyoichi/pairmark/internal/bitconv"
)

// Encode encodes the input string into a slice of booleans representing bits.
func Encode(src string) []bool {
	return bitconv.BytesToBools([]byte(src))
}

// Decode decodes the input slice of booleans back into the original string.
// A trailing partial byte is zero filled.
func Decode(mark []bool) string {
	return string(bitconv.BoolsToBytes(mark))
}

// DecodeTrim is Decode without trailing NUL bytes, which is what a payload
// reads as when the image had no room for its tail.
func DecodeTrim(mark []bool) string {
	return strings.TrimRight(Decode(mark), "\x00")
}

// Len is the payload length in bits of src.
func Len(src string) int {
	return len(src) * 8
}
