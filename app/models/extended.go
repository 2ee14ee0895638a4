package models

import "time"

// FeeHeadCollection is the per-head slice of the collections dashboard.
// Pending figures here are unclamped so overpayment shows up as negative.
type FeeHeadCollection struct {
	FeeHeadID          string     `json:"fee_head_id"`
	Title              string     `json:"title"`
	StandardAmount     float64    `json:"standard_amount"`
	TotalCollected     float64    `json:"total_collected"`
	CollectionCount    int64      `json:"collection_count"`
	LastCollectionDate *time.Time `json:"last_collection_date,omitempty"`
}

type CollectionDashboard struct {
	TotalStudents  int                 `json:"total_students"`
	TotalCollected float64             `json:"total_collected"`
	PaymentsToday  int                 `json:"payments_today"`
	CollectedToday float64             `json:"collected_today"`
	Heads          []FeeHeadCollection `json:"heads"`
}
