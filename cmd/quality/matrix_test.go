package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/pairmark"
)

func TestLoadMatrix(t *testing.T) {
	m, err := loadMatrix("")
	require.NoError(t, err)
	assert.Equal(t, defaultMatrix(), m)
	assert.Len(t, m.params(), 6)
	assert.Len(t, m.attacks(), 9)

	path := filepath.Join(t.TempDir(), "matrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
thresholds: [8, 16]
ecc: [repetition-5]
jpeg: [75]
gaussian: []
resize: []
`), 0o644))
	m, err = loadMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, 512, m.Width)
	assert.Equal(t, []param{
		{blockSize: 8, threshold: 8, ecc: "repetition-5"},
		{blockSize: 8, threshold: 16, ecc: "repetition-5"},
	}, m.params())
	var names []string
	for _, a := range m.attacks() {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{"none", "jpeg-q75"}, names)

	_, err = loadMatrix(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParamOptions(t *testing.T) {
	test := []struct {
		ecc  string
		name string
	}{
		{"golay", "golay"},
		{"repetition-3", "repetition-3"},
		{"repetition-7", "repetition-7"},
	}
	for _, tt := range test {
		t.Run(tt.ecc, func(t *testing.T) {
			opts, err := param{blockSize: 8, threshold: 10, ecc: tt.ecc}.options(1)
			require.NoError(t, err)
			p, err := pairmark.New(opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.name, p.Scheme().Name())
		})
	}

	for _, bad := range []string{"hamming", "repetition-x", "repetition-"} {
		_, err := param{blockSize: 8, threshold: 10, ecc: bad}.options(1)
		assert.ErrorIs(t, err, pairmark.ErrInvalidConfig, bad)
	}
}

func TestFit(t *testing.T) {
	img := fit(synthetic(300, 200, 1), 64, 64)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}
