package models

// InventoryItem is a spare part or consumable held in the workshop store.
type InventoryItem struct {
	ID              int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string  `gorm:"size:255;not null" json:"name" validate:"required"`
	Supplier        string  `gorm:"size:255;not null" json:"supplier" validate:"required"`
	SupplierContact *int64  `gorm:"column:supplier_contact;not null" json:"supplier_contact" validate:"required"`
	Remarks         *string `gorm:"size:512" json:"remarks"`
	Quantity        *int    `gorm:"not null" json:"quantity" validate:"required"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
