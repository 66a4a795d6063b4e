package store

import "fmt"

// AttackStats summarises every result of one attack at one threshold.
type AttackStats struct {
	Attack     string
	Threshold  float64
	TotalTests int
	Matches    int
	MatchRate  float64
	AvgBER     float64
	AvgPSNR    float64
}

// GetAttackStats returns statistics grouped by attack and threshold,
// ordered by attack name then threshold.
func (d *DB) GetAttackStats() ([]*AttackStats, error) {
	rows, err := d.db.Query(`
		SELECT
			attack, threshold,
			COUNT(*) as total_tests,
			SUM(CASE WHEN matched THEN 1 ELSE 0 END) as matches,
			AVG(CASE WHEN matched THEN 1.0 ELSE 0.0 END) as match_rate,
			AVG(ber) as avg_ber,
			AVG(psnr) as avg_psnr
		FROM results_detailed
		GROUP BY attack, threshold
		ORDER BY attack, threshold
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query attack stats: %w", err)
	}
	defer rows.Close()

	var stats []*AttackStats
	for rows.Next() {
		var s AttackStats
		err := rows.Scan(
			&s.Attack, &s.Threshold,
			&s.TotalTests, &s.Matches, &s.MatchRate,
			&s.AvgBER, &s.AvgPSNR,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}
