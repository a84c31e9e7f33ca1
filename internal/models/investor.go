package models

import (
	"github.com/shopspring/decimal"
)

// Investor is an outside party holding a share in trip profits.
type Investor struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"size:255;not null" json:"name" validate:"required"`
	ContactNo *int64  `gorm:"column:contact_no" json:"contact_no"`
	Details   *string `gorm:"size:512" json:"details"`
}

func (Investor) TableName() string {
	return "investors"
}

// Investor1Account is a per-trip settlement line for the primary investor,
// tracking the TIR carnet buy/sell spread.
type Investor1Account struct {
	ID            int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InvestorID    *int64           `gorm:"column:investor_id" json:"investor_id"`
	TripID        *int64           `gorm:"column:trip_id" json:"trip_id"`
	FixedTIRPrice *decimal.Decimal `gorm:"column:fixed_tir_price;type:decimal(12,2)" json:"fixed_tir_price"`
	SoldTIRPrice  *decimal.Decimal `gorm:"column:sold_tir_price;type:decimal(12,2)" json:"sold_tir_price"`
	AmountDue     *decimal.Decimal `gorm:"column:amount_due;type:decimal(12,2)" json:"amount_due"`
	Paid          *bool            `gorm:"default:false" json:"paid"`
}

func (Investor1Account) TableName() string {
	return "investor1_accounts"
}

// Investor2Account is a per-trip settlement line for the secondary investor.
type Investor2Account struct {
	ID         int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InvestorID *int64           `gorm:"column:investor_id" json:"investor_id"`
	TripID     *int64           `gorm:"column:trip_id" json:"trip_id"`
	AmountDue  *decimal.Decimal `gorm:"column:amount_due;type:decimal(12,2)" json:"amount_due"`
	Paid       *bool            `gorm:"default:false" json:"paid"`
}

func (Investor2Account) TableName() string {
	return "investor2_accounts"
}
