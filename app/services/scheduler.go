package services

import (
	"database/sql"
	"time"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"

	"github.com/sirupsen/logrus"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		logrus.Info("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 2:10 AM, outside collection hours
			if now.Hour() == 2 && now.Minute() == 10 {
				logrus.Info("Triggering scheduled tasks [02:10]...")

				// Reconcile fee head caches against the payment ledger
				if err := ReconcileCollectionCaches(db); err != nil {
					logrus.Errorf("Error reconciling collection caches: %v", err)
				}
			}
		}
	}()
}

// ReconcileCollectionCaches recomputes every fee head's cumulative collection
// cache from completed ledger rows. Payments recorded while a cache increment
// failed (degraded writes) get folded back in here.
func ReconcileCollectionCaches(db *sql.DB) error {
	corrected, err := database.RecomputeFeeHeadCaches(db)
	if err != nil {
		return err
	}

	if corrected > 0 {
		logrus.Warnf("Collection cache reconciliation corrected %d fee heads", corrected)
	} else {
		logrus.Info("Collection caches already consistent with the ledger")
	}
	return nil
}
