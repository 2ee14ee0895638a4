package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"

	"github.com/lib/pq"
)

// PaymentFilters represents filtering options for the payment ledger.
type PaymentFilters struct {
	StudentID string
	FeeHeadID string
	Semester  *int
	Status    models.PaymentStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (payment_id / receipt_number collisions during insert).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// InsertPayment persists a new payment row. payment_id and receipt_number carry
// unique indexes; the caller regenerates them and retries when the insert fails
// with a unique violation.
func InsertPayment(db *sql.DB, p *models.Payment) error {
	query := `INSERT INTO payments (payment_id, receipt_number, student_id, fee_head_id, amount,
			  payment_method, semester, utr, status, remarks, collected_by, payment_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
			  RETURNING id, payment_date, created_at, updated_at`

	return db.QueryRow(query,
		p.PaymentID, p.ReceiptNumber, p.StudentID, p.FeeHeadID, p.Amount,
		string(p.PaymentMethod), p.Semester, p.UTR, string(p.Status), p.Remarks, p.CollectedBy,
	).Scan(&p.ID, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt)
}

const paymentColumns = `id, payment_id, receipt_number, student_id, fee_head_id, amount,
		payment_method, semester, utr, status, remarks, collected_by, payment_date, created_at, updated_at`

func scanPayment(scanner interface {
	Scan(dest ...interface{}) error
}, p *models.Payment) error {
	var method, status string
	var remarks sql.NullString
	err := scanner.Scan(
		&p.ID, &p.PaymentID, &p.ReceiptNumber, &p.StudentID, &p.FeeHeadID, &p.Amount,
		&method, &p.Semester, &p.UTR, &status, &remarks, &p.CollectedBy,
		&p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	p.PaymentMethod = models.PaymentMethod(method)
	p.Status = models.PaymentStatus(status)
	p.Remarks = remarks.String
	return nil
}

func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	p := &models.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	if err := scanPayment(db.QueryRow(query, id), p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindPayments returns ledger rows matching the filters, newest first.
func FindPayments(db *sql.DB, filters PaymentFilters) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`

	var args []interface{}
	argIndex := 1

	addCondition := func(clause string, value interface{}) {
		query += fmt.Sprintf(" AND "+clause, argIndex)
		args = append(args, value)
		argIndex++
	}

	if filters.StudentID != "" {
		addCondition("student_id = $%d", filters.StudentID)
	}
	if filters.FeeHeadID != "" {
		addCondition("fee_head_id = $%d", filters.FeeHeadID)
	}
	if filters.Semester != nil {
		addCondition("semester = $%d", *filters.Semester)
	}
	if filters.Status != "" {
		addCondition("status = $%d", string(filters.Status))
	}
	if filters.DateFrom != nil {
		addCondition("payment_date >= $%d", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		addCondition("payment_date <= $%d", *filters.DateTo)
	}

	query += " ORDER BY payment_date DESC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := scanPayment(rows, p); err != nil {
			continue
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// UpdatePaymentStatus applies a staff correction. Payments are immutable after
// insert except for status and remarks.
func UpdatePaymentStatus(db *sql.DB, id string, status models.PaymentStatus, remarks string) error {
	result, err := db.Exec(`UPDATE payments SET status = $1, remarks = $2, updated_at = NOW() WHERE id = $3`,
		string(status), remarks, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return err
}

// PaidByHeadForStudent sums non-failed payments per fee head for one student,
// optionally scoped to a semester. Heads with no payments are absent from the
// returned map.
func PaidByHeadForStudent(db *sql.DB, studentID string, feeHeadIDs []string, semester *int) (map[string]float64, error) {
	paid := make(map[string]float64)
	if len(feeHeadIDs) == 0 {
		return paid, nil
	}

	query := `SELECT fee_head_id, COALESCE(SUM(amount), 0)
			  FROM payments
			  WHERE student_id = $1 AND status != 'failed' AND fee_head_id = ANY($2)`
	args := []interface{}{studentID, pq.Array(feeHeadIDs)}

	if semester != nil {
		query += ` AND semester = $3`
		args = append(args, *semester)
	}
	query += ` GROUP BY fee_head_id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var headID string
		var total float64
		if err := rows.Scan(&headID, &total); err != nil {
			continue
		}
		paid[headID] = total
	}
	return paid, rows.Err()
}

// RealtimeCollection recomputes a head's collection aggregate straight from the
// ledger, skipping failed payments. This is the authoritative figure; the
// cached columns on fee_heads may lag it.
func RealtimeCollection(db *sql.DB, feeHeadID string, from, to *time.Time) (total float64, count int64, last *time.Time, err error) {
	query := `SELECT COALESCE(SUM(amount), 0), COUNT(*), MAX(payment_date)
			  FROM payments
			  WHERE fee_head_id = $1 AND status != 'failed'`
	args := []interface{}{feeHeadID}
	argIndex := 2

	if from != nil {
		query += fmt.Sprintf(" AND payment_date >= $%d", argIndex)
		args = append(args, *from)
		argIndex++
	}
	if to != nil {
		query += fmt.Sprintf(" AND payment_date <= $%d", argIndex)
		args = append(args, *to)
	}

	err = db.QueryRow(query, args...).Scan(&total, &count, &last)
	return total, count, last, err
}
