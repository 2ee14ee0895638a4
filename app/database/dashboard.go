package database

import (
	"database/sql"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"
)

// GetCollectionDashboard returns the collections overview for the admin
// dashboard. Figures come from the cached fee head counters plus a couple of
// cheap ledger aggregates; they may trail the most recent payment until the
// next cache increment or recompute.
func GetCollectionDashboard(db *sql.DB) (*models.CollectionDashboard, error) {
	dashboard := &models.CollectionDashboard{}

	err := db.QueryRow("SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL").
		Scan(&dashboard.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'completed'").
		Scan(&dashboard.TotalCollected)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'completed' AND payment_date::date = CURRENT_DATE
	`).Scan(&dashboard.PaymentsToday, &dashboard.CollectedToday)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, title, amount, total_collected, collection_count, last_collection_date
		FROM fee_heads
		WHERE deleted_at IS NULL AND is_active = true
		ORDER BY total_collected DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var head models.FeeHeadCollection
		err := rows.Scan(
			&head.FeeHeadID, &head.Title, &head.StandardAmount,
			&head.TotalCollected, &head.CollectionCount, &head.LastCollectionDate,
		)
		if err != nil {
			continue
		}
		dashboard.Heads = append(dashboard.Heads, head)
	}

	return dashboard, nil
}
