package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsert(t *testing.T) {
	db := openDB(t)

	imgID, err := db.InsertImage("synthetic:waves", 512, 512)
	require.NoError(t, err)
	again, err := db.InsertImage("synthetic:waves", 512, 512)
	require.NoError(t, err)
	assert.Equal(t, imgID, again)

	p := Param{BlockSize: 8, Threshold: 10, ECC: "repetition-3", UsageRatio: 1}
	paramID, err := db.InsertParam(p)
	require.NoError(t, err)
	again, err = db.InsertParam(p)
	require.NoError(t, err)
	assert.Equal(t, paramID, again)
	p.Threshold = 20
	other, err := db.InsertParam(p)
	require.NoError(t, err)
	assert.NotEqual(t, paramID, other)

	r := &Result{
		ImageID: imgID, ParamID: paramID, Attack: "none",
		PayloadBits: 1024, CodeBits: 3072, AppliedBits: 3072,
		BitErrors: 0, BER: 0, Match: true, PSNR: 44.5,
	}
	id, err := db.InsertResult(r)
	require.NoError(t, err)

	// same key updates in place
	r.BitErrors, r.BER, r.Match = 200, 200.0/1024, false
	updated, err := db.InsertResult(r)
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	count, err := db.CountResults()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	results, err := db.ListResults()
	require.NoError(t, err)
	require.Len(t, results, 1)
	r.ID = id
	assert.Equal(t, r, results[0])
}

func TestGetAttackStats(t *testing.T) {
	db := openDB(t)
	paramID, err := db.InsertParam(Param{BlockSize: 8, Threshold: 10, ECC: "repetition-3", UsageRatio: 1})
	require.NoError(t, err)

	for i, uri := range []string{"a.png", "b.png"} {
		imgID, err := db.InsertImage(uri, 64, 64)
		require.NoError(t, err)
		for _, r := range []Result{
			{Attack: "none", BER: 0, Match: true, PSNR: 40},
			{Attack: "jpeg-q50", BER: 0.05 + 0.1*float64(i), Match: i == 0, PSNR: 40},
		} {
			r.ImageID, r.ParamID = imgID, paramID
			_, err := db.InsertResult(&r)
			require.NoError(t, err)
		}
	}

	stats, err := db.GetAttackStats()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "jpeg-q50", stats[0].Attack)
	assert.Equal(t, 10.0, stats[0].Threshold)
	assert.Equal(t, 2, stats[0].TotalTests)
	assert.Equal(t, 1, stats[0].Matches)
	assert.InDelta(t, 0.5, stats[0].MatchRate, 1e-9)
	assert.InDelta(t, 0.1, stats[0].AvgBER, 1e-9)

	assert.Equal(t, "none", stats[1].Attack)
	assert.InDelta(t, 1, stats[1].MatchRate, 1e-9)
	assert.InDelta(t, 40, stats[1].AvgPSNR, 1e-9)
}
