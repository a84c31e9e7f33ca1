package models

import (
	"github.com/localnerve/truckerdb/internal/types"
)

// Trailer is a company-owned trailer, keyed by trailer number.
type Trailer struct {
	TrailerNo    string      `gorm:"column:trailer_no;primaryKey;size:64" json:"trailer_no" validate:"required"`
	CompanyUnder string      `gorm:"column:company_under;size:255;not null" json:"company_under" validate:"required"`
	MulkiyaExp   *types.Date `gorm:"column:mulkiya_exp" json:"mulkiya_exp"`
	OmanInsExp   *types.Date `gorm:"column:oman_ins_exp" json:"oman_ins_exp"`
	AssetValue   *int64      `gorm:"column:asset_value" json:"asset_value"`
}

func (Trailer) TableName() string {
	return "trailers"
}

// OtherTrailer is an outside-owner trailer operated under the company.
type OtherTrailer struct {
	TrailerNo    string      `gorm:"column:trailer_no;primaryKey;size:64" json:"trailer_no" validate:"required"`
	Owner        string      `gorm:"size:255;not null" json:"owner" validate:"required"`
	CompanyUnder string      `gorm:"column:company_under;size:255;not null" json:"company_under" validate:"required"`
	MulkiyaExp   *types.Date `gorm:"column:mulkiya_exp" json:"mulkiya_exp"`
	OmanInsExp   *types.Date `gorm:"column:oman_ins_exp" json:"oman_ins_exp"`
}

func (OtherTrailer) TableName() string {
	return "other_trailer"
}
