package models

import "time"

// Student represents an admitted student. The admissions subsystem owns the
// identity fields; fees_paid and pending_amount are running caches mutated only
// through payment recording.
type Student struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	EnrollmentNo  string     `json:"enrollment_no" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName     string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName      string     `json:"last_name" gorm:"not null" validate:"required"`
	Gender        Gender     `json:"gender,omitempty" gorm:"type:varchar(10)"`
	StreamID      *string    `json:"stream_id,omitempty" gorm:"index;type:uuid"`
	CasteCategory string     `json:"caste_category,omitempty" gorm:"type:varchar(50)"`
	Semester      *int       `json:"semester,omitempty"`
	FeesPaid      float64    `json:"fees_paid" gorm:"type:numeric;default:0"`
	PendingAmount float64    `json:"pending_amount" gorm:"type:numeric;default:0"`
	IsActive      bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Stream *Stream `json:"stream,omitempty" gorm:"foreignKey:StreamID;references:ID"`
}

// Stream represents an academic stream (MBA, MCA, BCA, ...).
type Stream struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
