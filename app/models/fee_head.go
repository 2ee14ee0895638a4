package models

import "time"

// FeeHeadFilters narrows a filtered fee head to a stream and/or caste category.
// Both fields are optional; an absent field matches every student.
type FeeHeadFilters struct {
	StreamID      *string `json:"stream_id,omitempty" gorm:"column:filter_stream_id;index;type:uuid"`
	CasteCategory *string `json:"caste_category,omitempty" gorm:"column:filter_caste_category;type:varchar(50)"`
}

// FeeHead represents a fee obligation with a standard amount and an
// applicability rule. When ApplyTo is "all" the filters are ignored even if
// present. The collection fields are cumulative caches mutated only through
// payment recording; the payments table stays the source of truth.
type FeeHead struct {
	ID                 string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Title              string         `json:"title" gorm:"not null" validate:"required"`
	Amount             float64        `json:"amount" gorm:"not null;type:numeric" validate:"gte=0"`
	ApplyTo            ApplyTo        `json:"apply_to" gorm:"not null;default:'all';check:apply_to IN ('all','filtered')" validate:"required,oneof=all filtered"`
	Filters            FeeHeadFilters `json:"filters" gorm:"embedded"`
	TotalCollected     float64        `json:"total_collected" gorm:"type:numeric;default:0"`
	CollectionCount    int64          `json:"collection_count" gorm:"default:0"`
	LastCollectionDate *time.Time     `json:"last_collection_date,omitempty"`
	IsActive           bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt          time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt          *time.Time     `json:"deleted_at,omitempty" gorm:"index"`

	FilterStream *Stream `json:"filter_stream,omitempty" gorm:"-"`
}
