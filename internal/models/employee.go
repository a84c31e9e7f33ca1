package models

import (
	"github.com/localnerve/truckerdb/internal/types"
)

// Employee is a company driver or staff member, keyed by name.
type Employee struct {
	Name            string      `gorm:"column:employee;primaryKey;size:255" json:"employee" validate:"required"`
	ReferedAs       *string     `gorm:"column:refered_as;size:255" json:"refered_as"`
	Designation     *string     `gorm:"size:255" json:"designation"`
	ContactNo       *int64      `gorm:"column:contact_no" json:"contact_no"`
	WhatsappNo      *int64      `gorm:"column:whatsapp_no" json:"whatsapp_no"`
	Salary          *int64      `gorm:"not null" json:"salary" validate:"required"`
	VisaOutstanding *int64      `gorm:"column:visa_outstanding;not null" json:"visa_outstanding" validate:"required"`
	AdvanceAvl      *int64      `gorm:"column:advance_avl;not null" json:"advance_avl" validate:"required"`
	VisaUnder       string      `gorm:"column:visa_under;size:255;not null" json:"visa_under" validate:"required"`
	VisaExp         *types.Date `gorm:"column:visa_exp" json:"visa_exp"`
	Nationality     string      `gorm:"size:255;not null" json:"nationality" validate:"required"`
	EID             *int64      `gorm:"column:eid" json:"eid"`
	HealthInsExp    *types.Date `gorm:"column:health_ins_exp" json:"health_ins_exp"`
	EmpInsExp       *types.Date `gorm:"column:emp_ins_exp" json:"emp_ins_exp"`
	LicenseExp      *types.Date `gorm:"column:license_exp" json:"license_exp"`
}

func (Employee) TableName() string {
	return "employees"
}

// OtherEmployee is a driver employed by an outside owner whose vehicles run
// under the company. Same shape as Employee minus the payroll columns.
type OtherEmployee struct {
	Name         string      `gorm:"column:employee;primaryKey;size:255" json:"employee" validate:"required"`
	Owner        string      `gorm:"size:255;not null" json:"owner" validate:"required"`
	ReferedAs    *string     `gorm:"column:refered_as;size:255" json:"refered_as"`
	Designation  *string     `gorm:"size:255" json:"designation"`
	ContactNo    *int64      `gorm:"column:contact_no" json:"contact_no"`
	WhatsappNo   *int64      `gorm:"column:whatsapp_no" json:"whatsapp_no"`
	VisaUnder    string      `gorm:"column:visa_under;size:255;not null" json:"visa_under" validate:"required"`
	VisaExp      *types.Date `gorm:"column:visa_exp" json:"visa_exp"`
	Nationality  string      `gorm:"size:255;not null" json:"nationality" validate:"required"`
	EID          *int64      `gorm:"column:eid" json:"eid"`
	HealthInsExp *types.Date `gorm:"column:health_ins_exp" json:"health_ins_exp"`
	EmpInsExp    *types.Date `gorm:"column:emp_ins_exp" json:"emp_ins_exp"`
	LicenseExp   *types.Date `gorm:"column:license_exp" json:"license_exp"`
}

func (OtherEmployee) TableName() string {
	return "other_employees"
}
