package database

import (
	"database/sql"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"
)

func scanFeeHead(scanner interface {
	Scan(dest ...interface{}) error
}, fh *models.FeeHead) error {
	var applyTo string
	err := scanner.Scan(
		&fh.ID, &fh.Title, &fh.Amount, &applyTo,
		&fh.Filters.StreamID, &fh.Filters.CasteCategory,
		&fh.TotalCollected, &fh.CollectionCount, &fh.LastCollectionDate,
		&fh.IsActive, &fh.CreatedAt, &fh.UpdatedAt,
	)
	if err != nil {
		return err
	}
	fh.ApplyTo = models.ApplyTo(applyTo)
	return nil
}

const feeHeadColumns = `id, title, amount, apply_to, filter_stream_id, filter_caste_category,
		total_collected, collection_count, last_collection_date, is_active, created_at, updated_at`

func GetFeeHeadByID(db *sql.DB, feeHeadID string) (*models.FeeHead, error) {
	fh := &models.FeeHead{}
	query := `SELECT ` + feeHeadColumns + ` FROM fee_heads WHERE id = $1 AND deleted_at IS NULL`
	if err := scanFeeHead(db.QueryRow(query, feeHeadID), fh); err != nil {
		return nil, err
	}
	return fh, nil
}

// GetFeeHeads returns fee heads in creation order. When activeOnly is set,
// inactive heads are excluded (the applicability filter only ever sees active
// heads).
func GetFeeHeads(db *sql.DB, activeOnly bool) ([]*models.FeeHead, error) {
	query := `SELECT ` + feeHeadColumns + ` FROM fee_heads WHERE deleted_at IS NULL`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var heads []*models.FeeHead
	for rows.Next() {
		fh := &models.FeeHead{}
		if err := scanFeeHead(rows, fh); err != nil {
			continue
		}
		heads = append(heads, fh)
	}
	return heads, nil
}

func CreateFeeHead(db *sql.DB, fh *models.FeeHead) error {
	query := `INSERT INTO fee_heads (title, amount, apply_to, filter_stream_id, filter_caste_category, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, total_collected, collection_count, created_at, updated_at`

	return db.QueryRow(query,
		fh.Title, fh.Amount, string(fh.ApplyTo),
		fh.Filters.StreamID, fh.Filters.CasteCategory, fh.IsActive,
	).Scan(&fh.ID, &fh.TotalCollected, &fh.CollectionCount, &fh.CreatedAt, &fh.UpdatedAt)
}

func UpdateFeeHead(db *sql.DB, fh *models.FeeHead) error {
	query := `UPDATE fee_heads
			  SET title = $1, amount = $2, apply_to = $3, filter_stream_id = $4,
			      filter_caste_category = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		fh.Title, fh.Amount, string(fh.ApplyTo),
		fh.Filters.StreamID, fh.Filters.CasteCategory, fh.IsActive, fh.ID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return err
}

func DeleteFeeHead(db *sql.DB, feeHeadID string) error {
	result, err := db.Exec(`UPDATE fee_heads SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, feeHeadID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return err
}

// IncrementFeeHeadCollection bumps the head's cumulative cache in a single
// statement so concurrent payments never lose an increment.
func IncrementFeeHeadCollection(db *sql.DB, feeHeadID string, amount float64) error {
	result, err := db.Exec(`
		UPDATE fee_heads
		SET total_collected = total_collected + $1,
		    collection_count = collection_count + 1,
		    last_collection_date = NOW(),
		    updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`, amount, feeHeadID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return err
}

// RecomputeFeeHeadCaches rebuilds every head's cumulative cache from completed
// payments. The ledger is the source of truth; the caches only exist to keep
// list views cheap, so drift gets corrected here rather than blocking writes.
func RecomputeFeeHeadCaches(db *sql.DB) (int64, error) {
	result, err := db.Exec(`
		UPDATE fee_heads fh
		SET total_collected = COALESCE(agg.total, 0),
		    collection_count = COALESCE(agg.cnt, 0),
		    last_collection_date = agg.last_date,
		    updated_at = NOW()
		FROM (
			SELECT fee_head_id, SUM(amount) AS total, COUNT(*) AS cnt, MAX(payment_date) AS last_date
			FROM payments
			WHERE status = 'completed' AND fee_head_id IS NOT NULL
			GROUP BY fee_head_id
		) agg
		WHERE fh.id = agg.fee_head_id
		  AND (fh.total_collected <> COALESCE(agg.total, 0)
		       OR fh.collection_count <> COALESCE(agg.cnt, 0))
	`)
	if err != nil {
		return 0, err
	}

	corrected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	// Heads with a stale cache but no completed payments at all fall outside
	// the join above; zero them separately.
	zeroed, err := db.Exec(`
		UPDATE fee_heads fh
		SET total_collected = 0, collection_count = 0, last_collection_date = NULL, updated_at = NOW()
		WHERE fh.deleted_at IS NULL
		  AND (fh.total_collected <> 0 OR fh.collection_count <> 0)
		  AND NOT EXISTS (
			SELECT 1 FROM payments p
			WHERE p.fee_head_id = fh.id AND p.status = 'completed'
		  )
	`)
	if err != nil {
		return corrected, err
	}
	if n, err := zeroed.RowsAffected(); err == nil {
		corrected += n
	}
	return corrected, nil
}
