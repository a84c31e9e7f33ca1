package models

import (
	"github.com/shopspring/decimal"

	"github.com/localnerve/truckerdb/internal/types"
)

// Fine is a traffic or customs fine, optionally attributable to a driver.
type Fine struct {
	ID            int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TripID        *int64           `gorm:"column:trip_id" json:"trip_id"`
	Reason        *string          `gorm:"size:512" json:"reason"`
	TruckNumber   *string          `gorm:"column:truck_number;size:64" json:"truck_number"`
	DriverName    *string          `gorm:"column:driver_name;size:255" json:"driver_name"`
	DriverFault   *bool            `gorm:"column:driver_fault" json:"driver_fault"`
	FineDate      *types.Date      `gorm:"column:fine_date" json:"fine_date"`
	Amount        *decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount" validate:"required"`
	PaymentStatus string           `gorm:"column:payment_status;size:32;not null" json:"payment_status" validate:"required"`
}

func (Fine) TableName() string {
	return "fines"
}
