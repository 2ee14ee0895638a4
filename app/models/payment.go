package models

import "time"

// Payment represents a single fee transaction recorded for a student.
// A payment may target a specific fee head or be a general credit.
// Rows are immutable after insert except for status/remarks corrections.
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	PaymentID     string        `json:"payment_id" gorm:"uniqueIndex;not null"`
	ReceiptNumber string        `json:"receipt_number" gorm:"uniqueIndex;not null"`
	StudentID     string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeHeadID     *string       `json:"fee_head_id,omitempty" gorm:"index;type:uuid"`
	Amount        float64       `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null;type:varchar(20)" validate:"required"`
	Semester      *int          `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`
	UTR           string        `json:"utr" gorm:"default:''"`
	Status        PaymentStatus `json:"status" gorm:"not null;default:'completed';index;type:varchar(20)" validate:"required"`
	Remarks       string        `json:"remarks,omitempty" gorm:"type:text"`
	CollectedBy   *string       `json:"collected_by,omitempty" gorm:"index;type:uuid"`
	PaymentDate   time.Time     `json:"payment_date" gorm:"not null;index"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	FeeHead *FeeHead `json:"fee_head,omitempty" gorm:"foreignKey:FeeHeadID;references:ID"`
}
