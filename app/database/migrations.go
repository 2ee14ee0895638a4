package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	logrus.Info("Running database migrations...")

	steps := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"fee head filter columns", addFeeHeadFilterColumns},
		{"fee head collection cache columns", addFeeHeadCacheColumns},
		{"student fee cache columns", addStudentCacheColumns},
		{"payment identifier unique indexes", addPaymentIdentifierIndexes},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			logrus.Errorf("Migration step %q failed: %v", step.name, err)
			return err
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func addFeeHeadFilterColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'fee_heads'
				AND column_name = 'filter_stream_id'
			) THEN
				ALTER TABLE fee_heads ADD COLUMN filter_stream_id UUID REFERENCES streams(id);
				ALTER TABLE fee_heads ADD COLUMN filter_caste_category VARCHAR(50);
				RAISE NOTICE 'Added filter columns to fee_heads';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	return err
}

func addFeeHeadCacheColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'fee_heads'
				AND column_name = 'total_collected'
			) THEN
				ALTER TABLE fee_heads ADD COLUMN total_collected NUMERIC NOT NULL DEFAULT 0;
				ALTER TABLE fee_heads ADD COLUMN collection_count BIGINT NOT NULL DEFAULT 0;
				ALTER TABLE fee_heads ADD COLUMN last_collection_date TIMESTAMPTZ;
				RAISE NOTICE 'Added collection cache columns to fee_heads';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	return err
}

func addStudentCacheColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'students'
				AND column_name = 'fees_paid'
			) THEN
				ALTER TABLE students ADD COLUMN fees_paid NUMERIC NOT NULL DEFAULT 0;
				ALTER TABLE students ADD COLUMN pending_amount NUMERIC NOT NULL DEFAULT 0;
				RAISE NOTICE 'Added fee cache columns to students';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	return err
}

// The whole identifier-retry design rests on these two indexes existing.
func addPaymentIdentifierIndexes(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_indexes
				WHERE tablename = 'payments' AND indexname = 'payments_payment_id_key'
			) THEN
				CREATE UNIQUE INDEX payments_payment_id_key ON payments (payment_id);
			END IF;
			IF NOT EXISTS (
				SELECT 1 FROM pg_indexes
				WHERE tablename = 'payments' AND indexname = 'payments_receipt_number_key'
			) THEN
				CREATE UNIQUE INDEX payments_receipt_number_key ON payments (receipt_number);
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	return err
}
