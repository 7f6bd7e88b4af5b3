// internal/models/company.go
package models

import "time"

// Company is the operator that owns one or more fleets.
type Company struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Place     *string   `gorm:"column:place" json:"place"`
	CreatedAt time.Time `gorm:"column:createdAt;index" json:"createdAt"`
}

func (Company) TableName() string {
	return "companies"
}

// CompanyInput carries the editable fields of a Company.
// A zero CreatedAt is stamped with the current time on create and update.
type CompanyInput struct {
	Name      string    `json:"name" binding:"required"`
	Place     *string   `json:"place"`
	CreatedAt time.Time `json:"createdAt"`
}
