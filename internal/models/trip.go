package models

import (
	"github.com/shopspring/decimal"

	"github.com/localnerve/truckerdb/internal/types"
)

// Trip is one haulage job. The column manifest mirrors the settlement sheet
// the office works from, so most fields are optional free-form entries.
// Truck, driver and client are referenced by bare name/number with no foreign
// keys; deleting those rows does not touch trips.
type Trip struct {
	TripID                     int64            `gorm:"column:trip_id;primaryKey;autoIncrement" json:"trip_id"`
	ReturnLoad                 *bool            `gorm:"column:return_load" json:"return_load"`
	Date                       *types.Date      `gorm:"column:date" json:"date"`
	DestinationCountry         string           `gorm:"column:destination_country;size:64;not null" json:"destination_country" validate:"required"`
	ServiceProvider            string           `gorm:"column:service_provider;size:255;not null" json:"service_provider" validate:"required"`
	Client                     string           `gorm:"size:255;not null" json:"client" validate:"required"`
	TripDescription            *string          `gorm:"column:trip_description;size:1024" json:"trip_description"`
	TruckNo                    *string          `gorm:"column:truck_no;size:64" json:"truck_no"`
	Driver                     *string          `gorm:"size:255" json:"driver"`
	OtherTruckNo               *string          `gorm:"column:other_truck_no;size:64" json:"other_truck_no"`
	OtherDriver                *string          `gorm:"column:other_driver;size:255" json:"other_driver"`
	OtherDriverContact         *int64           `gorm:"column:other_driver_contact" json:"other_driver_contact"`
	CompanyRate                *int64           `gorm:"column:company_rate;not null" json:"company_rate" validate:"required"`
	DriverRate                 *int64           `gorm:"column:driver_rate;not null" json:"driver_rate" validate:"required"`
	Diesel                     *int64           `gorm:"not null" json:"diesel" validate:"required"`
	DieselSold                 *int64           `gorm:"column:diesel_sold" json:"diesel_sold"`
	Advance                    *int64           `gorm:"default:0" json:"advance"`
	AdvanceUsageDetails        *string          `gorm:"column:advance_usage_details;size:1024" json:"advance_usage_details"`
	AdvanceExpense             *decimal.Decimal `gorm:"column:advance_expense;type:decimal(12,2)" json:"advance_expense"`
	TripRate                   *int64           `gorm:"column:trip_rate" json:"trip_rate"`
	UAEBorder                  *int64           `gorm:"column:uae_border;default:0" json:"uae_border"`
	UAEBorderDetails           *string          `gorm:"column:uae_border_details;size:1024" json:"uae_border_details"`
	InternationalBorder        *int64           `gorm:"column:international_border;default:0" json:"international_border"`
	InternationalBorderDetails *string          `gorm:"column:international_border_details;size:1024" json:"international_border_details"`
	ExtraDelivery              *int64           `gorm:"column:extra_delivery;default:0" json:"extra_delivery"`
	ExtraDeliveryDetails       *string          `gorm:"column:extra_delivery_details;size:1024" json:"extra_delivery_details"`
	DriverExtraRate            *int64           `gorm:"column:driver_extra_rate" json:"driver_extra_rate"`
	ExtraCharges               *decimal.Decimal `gorm:"column:extra_charges;type:decimal(12,2);default:0" json:"extra_charges"`
	ExtraChargesDetails        *string          `gorm:"column:extra_charges_details;size:1024" json:"extra_charges_details"`
	LPONo                      *string          `gorm:"column:lpo_no;size:64" json:"lpo_no"`
	DIONo                      *string          `gorm:"column:dio_no;size:64" json:"dio_no"`
	TIRNo                      *string          `gorm:"column:tir_no;size:64" json:"tir_no"`
	TIRPrice                   *int64           `gorm:"column:tir_price" json:"tir_price"`
	Investor1Share             *int64           `gorm:"column:investor1_share" json:"investor1_share"`
	Investor2Share             *int64           `gorm:"column:investor2_share" json:"investor2_share"`
	Investor3Share             *int64           `gorm:"column:investor3_share" json:"investor3_share"`
	Investor4Share             *int64           `gorm:"column:investor4_share" json:"investor4_share"`
	Investor5Share             *int64           `gorm:"column:investor5_share" json:"investor5_share"`
	Custom                     *decimal.Decimal `gorm:"type:decimal(12,2)" json:"custom"`
	PaidByClient               *decimal.Decimal `gorm:"column:paid_by_client;type:decimal(12,2)" json:"paid_by_client"`
	PaidByClientDetails        *string          `gorm:"column:paid_by_client_details;size:1024" json:"paid_by_client_details"`
	ReceivableClient           *int64           `gorm:"column:receivable_client" json:"receivable_client"`
	ReceivableStatus           *string          `gorm:"column:receivable_status;size:32;default:UNPAID" json:"receivable_status"`
	OutsourcePayment           *int64           `gorm:"column:outsource_payment" json:"outsource_payment"`
	PayableStatus              *string          `gorm:"column:payable_status;size:32;default:UNPAID" json:"payable_status"`
	TruckProfit                *decimal.Decimal `gorm:"column:truck_profit;type:decimal(12,2)" json:"truck_profit"`
	CompanyProfit              *decimal.Decimal `gorm:"column:company_profit;type:decimal(12,2)" json:"company_profit"`
	OtherOwner                 *string          `gorm:"column:other_owner;size:255" json:"other_owner"`
	OtherOwnerNumber           *string          `gorm:"column:other_owner_number;size:64" json:"other_owner_number"`
}

func (Trip) TableName() string {
	return "trips"
}
