package textmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, []bool{false, true, false, false, false, false, false, true}, Encode("A"))
	assert.Empty(t, Encode(""))
	assert.Len(t, Encode("héllo"), Len("héllo"))
}

func TestDecode(t *testing.T) {
	for _, s := range []string{"", "A", "Test-Mark", "ลายน้ำ", "a\x00b"} {
		assert.Equal(t, s, Decode(Encode(s)))
	}
	// partial byte: 0100 0001 0 -> "A" + 0x00
	assert.Equal(t, "A\x00", Decode(append(Encode("A"), false)))
	assert.Equal(t, "A", DecodeTrim(append(Encode("A"), make([]bool, 16)...)))
}
