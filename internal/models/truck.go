package models

import (
	"github.com/localnerve/truckerdb/internal/types"
)

// Truck is a company-owned tractor unit, keyed by plate number.
type Truck struct {
	TruckNumber  string      `gorm:"column:truck_number;primaryKey;size:64" json:"truck_number" validate:"required"`
	Driver       *string     `gorm:"size:255" json:"driver"`
	Year         *int        `gorm:"column:year" json:"year"`
	VehicleUnder string      `gorm:"column:vehicle_under;size:255;not null" json:"vehicle_under" validate:"required"`
	TrailerNo    *string     `gorm:"column:trailer_no;size:64" json:"trailer_no"`
	Country      string      `gorm:"size:64;not null" json:"country" validate:"required"`
	MulkiyaExp   *types.Date `gorm:"column:mulkiya_exp" json:"mulkiya_exp"`
	InsExp       *types.Date `gorm:"column:ins_exp" json:"ins_exp"`
	TruckValue   *int64      `gorm:"column:truck_value" json:"truck_value"`
}

func (Truck) TableName() string {
	return "trucks"
}

// OtherTruck is an outside-owner tractor unit operated under the company.
type OtherTruck struct {
	TruckNumber  string      `gorm:"column:truck_number;primaryKey;size:64" json:"truck_number" validate:"required"`
	Owner        string      `gorm:"size:255;not null" json:"owner" validate:"required"`
	Driver       *string     `gorm:"size:255" json:"driver"`
	Year         *int        `gorm:"column:year" json:"year"`
	VehicleUnder string      `gorm:"column:vehicle_under;size:255;not null" json:"vehicle_under" validate:"required"`
	TrailerNo    *string     `gorm:"column:trailer_no;size:64" json:"trailer_no"`
	Country      string      `gorm:"size:64;not null" json:"country" validate:"required"`
	MulkiyaExp   *types.Date `gorm:"column:mulkiya_exp" json:"mulkiya_exp"`
	InsExp       *types.Date `gorm:"column:ins_exp" json:"ins_exp"`
}

func (OtherTruck) TableName() string {
	return "other_trucks"
}
