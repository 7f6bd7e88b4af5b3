// internal/models/fleet.go
package models

import "time"

// Fleet groups routes under a company, optionally led by a captain.
type Fleet struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      *string   `gorm:"column:name" json:"name"`
	CompanyID *uint     `gorm:"column:companyId;index" json:"companyId"`
	CaptainID *uint     `gorm:"column:captainId;index" json:"captainId"`
	CreatedAt time.Time `gorm:"column:createdAt;index" json:"createdAt"`
}

func (Fleet) TableName() string {
	return "fleets"
}

type FleetInput struct {
	Name      *string   `json:"name"`
	CompanyID *uint     `json:"companyId"`
	CaptainID *uint     `json:"captainId"`
	CreatedAt time.Time `json:"createdAt"`
}
