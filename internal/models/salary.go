package models

import (
	"github.com/shopspring/decimal"

	"github.com/localnerve/truckerdb/internal/types"
)

// Salary is one month's payroll line for an employee.
type Salary struct {
	ID               int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Employee         *string          `gorm:"size:255;index" json:"employee"`
	MonthYear        *string          `gorm:"column:month_year;size:7;index" json:"month_year"` // YYYY-MM
	BaseSalary       *decimal.Decimal `gorm:"column:base_salary;type:decimal(12,2)" json:"base_salary"`
	WorkingDays      *int             `gorm:"column:working_days" json:"working_days"`
	TripAllowance    *decimal.Decimal `gorm:"column:trip_allowance;type:decimal(12,2)" json:"trip_allowance"`
	VisaDeduction    *decimal.Decimal `gorm:"column:visa_deduction;type:decimal(12,2)" json:"visa_deduction"`
	FineDeduction    *decimal.Decimal `gorm:"column:fine_deduction;type:decimal(12,2)" json:"fine_deduction"`
	AdvanceDeduction *decimal.Decimal `gorm:"column:advance_deduction;type:decimal(12,2)" json:"advance_deduction"`
	NetSalary        *decimal.Decimal `gorm:"column:net_salary;type:decimal(12,2)" json:"net_salary"`
	GeneratedAt      *types.Date      `gorm:"column:generated_at;autoCreateTime:false" json:"generated_at"`
}

func (Salary) TableName() string {
	return "salary"
}
