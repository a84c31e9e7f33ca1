package models

// Client is a freight customer, keyed by business name.
type Client struct {
	Name          string  `gorm:"primaryKey;size:255" json:"name" validate:"required"`
	Address       *string `gorm:"size:512" json:"address"`
	TelNo         *int64  `gorm:"column:tel_no" json:"tel_no"`
	POBox         *int64  `gorm:"column:po_box" json:"po_box"`
	TRNNo         *int64  `gorm:"column:trn_no" json:"trn_no"`
	ContactPerson *string `gorm:"column:contact_person;size:255" json:"contact_person"`
	PersonNumber  *int64  `gorm:"column:person_number" json:"person_number"`
}

func (Client) TableName() string {
	return "clients"
}

// Supplier is a parts or service vendor, keyed by business name.
type Supplier struct {
	Name          string  `gorm:"primaryKey;size:255" json:"name" validate:"required"`
	TelNo         *int64  `gorm:"column:tel_no" json:"tel_no"`
	ContactPerson *string `gorm:"column:contact_person;size:255" json:"contact_person"`
	PhoneNo       *int64  `gorm:"column:phone_no" json:"phone_no"`
	About         *string `gorm:"size:512" json:"about"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// OtherOwner is an outside owner whose trucks and drivers run under the
// company umbrella.
type OtherOwner struct {
	Name    string  `gorm:"primaryKey;size:255" json:"name" validate:"required"`
	Contact *int64  `gorm:"column:contact" json:"contact"`
	Remarks *string `gorm:"size:512" json:"remarks"`
	EID     *int64  `gorm:"column:eid" json:"eid"`
}

func (OtherOwner) TableName() string {
	return "other_owner"
}

// Company is a sponsoring company name trucks and visas can be registered
// under.
type Company struct {
	Name string `gorm:"column:Name;primaryKey;size:255" json:"name" validate:"required"`
}

func (Company) TableName() string {
	return "company"
}
