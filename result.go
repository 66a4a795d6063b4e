package pairmark

// EmbedResult describes how much of a payload found a block.
type EmbedResult struct {
	// Payload is the number of payload bits before error correction.
	// Zero for EmbedGrid.
	Payload int
	// Requested is the number of code bits to embed.
	Requested int
	// Applied is the number of code bits that were embedded.
	Applied int
}

// Shortfall reports whether the image was too small for the code word.
// Extraction then reads the missing bits as 0.
func (r EmbedResult) Shortfall() bool {
	return r.Applied < r.Requested
}

// Missing is the number of code bits that were not embedded.
func (r EmbedResult) Missing() int {
	return r.Requested - r.Applied
}

// Verification compares an extracted payload with the original.
type Verification struct {
	TotalBits int
	BitErrors int
	// BER is BitErrors / TotalBits, 0 for an empty payload.
	BER float64
	// Match is true when BER <= tolerance and the lengths agree.
	Match bool
	// LengthMismatch is set when the two payloads differ in length. Only the
	// common prefix is compared.
	LengthMismatch bool
}

// Verify counts bit errors between original and extracted. It never fails;
// a length mismatch is reported in the result.
func Verify(original, extracted []bool, tolerance float64) Verification {
	n := min(len(original), len(extracted))
	v := Verification{
		TotalBits:      n,
		LengthMismatch: len(original) != len(extracted),
	}
	for i := range n {
		if original[i] != extracted[i] {
			v.BitErrors++
		}
	}
	if n > 0 {
		v.BER = float64(v.BitErrors) / float64(n)
	}
	v.Match = v.BER <= tolerance && !v.LengthMismatch
	return v
}
