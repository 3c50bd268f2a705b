package models

import "github.com/shopspring/decimal"

// Commitment is a single capital allocation by one investor to one asset class.
// Amount is stored at two decimal places in its original currency; totals are
// computed on read, never persisted.
type Commitment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	InvestorID uint            `gorm:"index;not null" json:"investor_id"`
	AssetClass string          `gorm:"size:100;not null" json:"asset_class"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Currency   string          `gorm:"size:10;not null" json:"currency"`
}
