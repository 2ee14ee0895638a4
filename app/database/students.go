package database

import (
	"database/sql"
	"fmt"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search   string
	StreamID string
	Limit    int
	Offset   int
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT s.id, s.enrollment_no, s.first_name, s.last_name, s.gender, s.stream_id,
			  s.caste_category, s.semester, s.fees_paid, s.pending_amount, s.is_active,
			  s.created_at, s.updated_at
			  FROM students s
			  WHERE s.id = $1 AND s.deleted_at IS NULL`

	var gender sql.NullString
	var caste sql.NullString
	err := db.QueryRow(query, studentID).Scan(
		&s.ID, &s.EnrollmentNo, &s.FirstName, &s.LastName, &gender, &s.StreamID,
		&caste, &s.Semester, &s.FeesPaid, &s.PendingAmount, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Gender = models.Gender(gender.String)
	s.CasteCategory = caste.String

	if s.StreamID != nil {
		stream := &models.Stream{}
		err = db.QueryRow(`SELECT id, name, is_active FROM streams WHERE id = $1`, *s.StreamID).
			Scan(&stream.ID, &stream.Name, &stream.IsActive)
		if err == nil {
			s.Stream = stream
		}
	}
	return s, nil
}

func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `SELECT s.id, s.enrollment_no, s.first_name, s.last_name, s.gender, s.stream_id,
			  s.caste_category, s.semester, s.fees_paid, s.pending_amount, s.is_active,
			  s.created_at, s.updated_at
			  FROM students s
			  WHERE s.is_active = true AND s.deleted_at IS NULL`

	var args []interface{}
	argIndex := 1

	if filters.StreamID != "" {
		query += fmt.Sprintf(" AND s.stream_id = $%d", argIndex)
		args = append(args, filters.StreamID)
		argIndex++
	}

	if filters.Search != "" {
		query += fmt.Sprintf(` AND (LOWER(s.enrollment_no) LIKE $%d
				 OR LOWER(s.first_name) LIKE $%d
				 OR LOWER(s.last_name) LIKE $%d)`, argIndex, argIndex+1, argIndex+2)
		pattern := "%" + filters.Search + "%"
		args = append(args, pattern, pattern, pattern)
		argIndex += 3
	}

	query += " ORDER BY s.first_name, s.last_name"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		var gender, caste sql.NullString
		err := rows.Scan(
			&s.ID, &s.EnrollmentNo, &s.FirstName, &s.LastName, &gender, &s.StreamID,
			&caste, &s.Semester, &s.FeesPaid, &s.PendingAmount, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			continue
		}
		s.Gender = models.Gender(gender.String)
		s.CasteCategory = caste.String
		students = append(students, s)
	}
	return students, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (enrollment_no, first_name, last_name, gender, stream_id,
			  caste_category, semester, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, true)
			  RETURNING id, fees_paid, pending_amount, created_at, updated_at`

	return db.QueryRow(query,
		s.EnrollmentNo, s.FirstName, s.LastName, string(s.Gender), s.StreamID,
		s.CasteCategory, s.Semester,
	).Scan(&s.ID, &s.FeesPaid, &s.PendingAmount, &s.CreatedAt, &s.UpdatedAt)
}

// ApplyPaymentToStudent bumps the student's cached totals in a single statement.
// Concurrent payments for the same student must not read-modify-write these
// columns in application code; the increment happens inside the UPDATE so the
// database serializes it. pending_amount never goes below zero.
func ApplyPaymentToStudent(db *sql.DB, studentID string, amount float64) error {
	result, err := db.Exec(`
		UPDATE students
		SET fees_paid = fees_paid + $1,
		    pending_amount = GREATEST(pending_amount - $1, 0),
		    updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`, amount, studentID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return err
}

// GetStreams lists active academic streams.
func GetStreams(db *sql.DB) ([]*models.Stream, error) {
	rows, err := db.Query(`SELECT id, name, is_active, created_at, updated_at
						   FROM streams WHERE deleted_at IS NULL AND is_active = true ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var streams []*models.Stream
	for rows.Next() {
		stream := &models.Stream{}
		if err := rows.Scan(&stream.ID, &stream.Name, &stream.IsActive, &stream.CreatedAt, &stream.UpdatedAt); err != nil {
			continue
		}
		streams = append(streams, stream)
	}
	return streams, nil
}
