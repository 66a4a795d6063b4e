package store

type (
	// Image is a source image, a file path or a synthetic pattern name.
	Image struct {
		ID     int64
		URI    string // Unique constraint
		Width  int
		Height int
	}

	// Param is a codec configuration under test.
	Param struct {
		ID         int64
		BlockSize  int
		Threshold  float64
		ECC        string
		UsageRatio float64
		// Unique constraint on (BlockSize, Threshold, ECC, UsageRatio)
	}

	// Result is the outcome of one embed, attack, extract round.
	Result struct {
		ID      int64
		ImageID int64
		ParamID int64
		Attack  string

		PayloadBits int
		CodeBits    int
		AppliedBits int

		BitErrors int
		BER       float64
		Match     bool
		// PSNR of the watermarked image against the original, before the attack
		PSNR float64

		// Unique constraint on (ImageID, ParamID, Attack)
	}
)
