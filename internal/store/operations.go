package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// InsertImage inserts or gets an existing image by URI
func (d *DB) InsertImage(uri string, width, height int) (int64, error) {
	var id int64
	err := d.db.QueryRow("SELECT id FROM images WHERE uri = ?", uri).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to query image: %w", err)
	}

	result, err := d.db.Exec("INSERT INTO images (uri, width, height) VALUES (?, ?, ?)", uri, width, height)
	if err != nil {
		return 0, fmt.Errorf("failed to insert image: %w", err)
	}
	return result.LastInsertId()
}

// InsertParam inserts or gets an existing parameter set
func (d *DB) InsertParam(p Param) (int64, error) {
	var id int64
	err := d.db.QueryRow(
		"SELECT id FROM params WHERE block_size = ? AND threshold = ? AND ecc = ? AND usage_ratio = ?",
		p.BlockSize, p.Threshold, p.ECC, p.UsageRatio,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to query param: %w", err)
	}

	result, err := d.db.Exec(
		"INSERT INTO params (block_size, threshold, ecc, usage_ratio) VALUES (?, ?, ?, ?)",
		p.BlockSize, p.Threshold, p.ECC, p.UsageRatio,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert param: %w", err)
	}
	return result.LastInsertId()
}

// InsertResult inserts a result (or updates if already exists)
func (d *DB) InsertResult(r *Result) (int64, error) {
	var existingID int64
	err := d.db.QueryRow(
		"SELECT id FROM results WHERE image_id = ? AND param_id = ? AND attack = ?",
		r.ImageID, r.ParamID, r.Attack,
	).Scan(&existingID)

	if err == nil {
		_, err = d.db.Exec(`
			UPDATE results SET
				payload_bits = ?,
				code_bits = ?,
				applied_bits = ?,
				bit_errors = ?,
				ber = ?,
				matched = ?,
				psnr = ?
			WHERE id = ?`,
			r.PayloadBits,
			r.CodeBits,
			r.AppliedBits,
			r.BitErrors,
			r.BER,
			r.Match,
			r.PSNR,
			existingID,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to update result: %w", err)
		}
		return existingID, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to query existing result: %w", err)
	}

	res, err := d.db.Exec(`
		INSERT INTO results (
			image_id, param_id, attack,
			payload_bits, code_bits, applied_bits,
			bit_errors, ber, matched, psnr
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ImageID,
		r.ParamID,
		r.Attack,
		r.PayloadBits,
		r.CodeBits,
		r.AppliedBits,
		r.BitErrors,
		r.BER,
		r.Match,
		r.PSNR,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert result: %w", err)
	}
	return res.LastInsertId()
}

// ListResults retrieves all results
func (d *DB) ListResults() ([]*Result, error) {
	rows, err := d.db.Query(`
		SELECT id, image_id, param_id, attack,
		       payload_bits, code_bits, applied_bits,
		       bit_errors, ber, matched, psnr
		FROM results
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		var r Result
		err := rows.Scan(
			&r.ID, &r.ImageID, &r.ParamID, &r.Attack,
			&r.PayloadBits, &r.CodeBits, &r.AppliedBits,
			&r.BitErrors, &r.BER, &r.Match, &r.PSNR,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}

// CountResults counts total results
func (d *DB) CountResults() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM results").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return count, nil
}
