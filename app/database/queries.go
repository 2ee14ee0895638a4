package database

import (
	"database/sql"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at 
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, userID)
	return err
}

// CreateUser inserts a staff user with the given role, hashing the password.
func CreateUser(db *sql.DB, email, password, firstName, lastName, roleName string) (string, error) {
	hashed, err := hashPassword(password)
	if err != nil {
		return "", err
	}

	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var userID string
	err = tx.QueryRow(`INSERT INTO users (email, password, first_name, last_name, is_active)
					   VALUES ($1, $2, $3, $4, true) RETURNING id`,
		email, hashed, firstName, lastName).Scan(&userID)
	if err != nil {
		return "", err
	}

	var roleID string
	err = tx.QueryRow(`SELECT id FROM roles WHERE name = $1`, roleName).Scan(&roleID)
	if err == sql.ErrNoRows {
		err = tx.QueryRow(`INSERT INTO roles (name, is_active) VALUES ($1, true) RETURNING id`, roleName).Scan(&roleID)
	}
	if err != nil {
		return "", err
	}

	if _, err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, roleID); err != nil {
		return "", err
	}

	return userID, tx.Commit()
}
