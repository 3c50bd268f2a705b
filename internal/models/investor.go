package models

import "time"

// Investor represents an institution that makes capital commitments.
// Name is the natural key used to deduplicate rows during the seed import.
type Investor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;index;not null" json:"name"`
	Type        string    `gorm:"size:100;not null" json:"type"`
	Country     string    `gorm:"size:100;not null" json:"country"`
	DateAdded   time.Time `gorm:"not null" json:"date_added"`
	LastUpdated time.Time `gorm:"not null" json:"last_updated"`

	Commitments []Commitment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
