package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/pairmark/internal/store"
)

func TestBERChart(t *testing.T) {
	stats := []*store.AttackStats{
		{Attack: "jpeg-q50", Threshold: 10, TotalTests: 2, AvgBER: 0.12, MatchRate: 0.5},
		{Attack: "none", Threshold: 10, TotalTests: 2, AvgBER: 0, MatchRate: 1},
		{Attack: "none", Threshold: 20, TotalTests: 2, AvgBER: 0, MatchRate: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, BERChart(&buf, stats))
	html := buf.String()
	assert.Contains(t, html, "Bit error rate by attack")
	assert.Contains(t, html, "jpeg-q50")
}

func TestBERChart_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BERChart(&buf, nil))
	assert.NotZero(t, buf.Len())
}
