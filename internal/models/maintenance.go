package models

import (
	"github.com/shopspring/decimal"

	"github.com/localnerve/truckerdb/internal/types"
)

// Maintenance is one truck workshop visit. Money columns are decimal to keep
// the total computation exact.
type Maintenance struct {
	ID                int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Date              types.Date       `gorm:"column:date;not null" json:"date" validate:"required"`
	DriverName        *string          `gorm:"column:driver_name;size:255" json:"driver_name"`
	TruckNumber       *string          `gorm:"column:truck_number;size:64" json:"truck_number"`
	VehicleUnder      *string          `gorm:"column:vehicle_under;size:255" json:"vehicle_under"`
	MaintenanceDetail *string          `gorm:"column:maintenance_detail;size:1024" json:"maintenance_detail"`
	CreditCard        *decimal.Decimal `gorm:"column:credit_card;type:decimal(12,2);not null" json:"credit_card" validate:"required"`
	Bank              *decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"bank" validate:"required"`
	Cash              *decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cash" validate:"required"`
	VAT               *decimal.Decimal `gorm:"column:vat;type:decimal(12,2);not null" json:"vat" validate:"required"`
	Total             *decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	Status            string           `gorm:"size:64;not null" json:"status" validate:"required"`
	Supplier          *string          `gorm:"size:255" json:"supplier"`
}

func (Maintenance) TableName() string {
	return "truckmaintenance"
}

// ComputeTotal overwrites Total with the exact sum of the four payment
// channels. Applied on update only; create stores the caller's total as
// supplied.
func (m *Maintenance) ComputeTotal() {
	total := decimal.Zero
	for _, part := range []*decimal.Decimal{m.CreditCard, m.Bank, m.Cash, m.VAT} {
		if part != nil {
			total = total.Add(*part)
		}
	}
	m.Total = &total
}
