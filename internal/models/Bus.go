// internal/models/bus.go
package models

// Bus is identified by its plate number.
type Bus struct {
	Number      string `gorm:"column:number;primaryKey" json:"number"`
	RouteID     *uint  `gorm:"column:routeId;index" json:"routeId"`
	Capacity    int    `gorm:"column:capacity" json:"capacity"`
	Brand       string `gorm:"column:brand" json:"brand"`
	FactoryYear int    `gorm:"column:factoryYear" json:"factoryYear"`
}

func (Bus) TableName() string {
	return "buses"
}

// BusInput may carry a new Number; the update still targets the old one.
type BusInput struct {
	Number      string `json:"number" binding:"required"`
	RouteID     *uint  `json:"routeId"`
	Capacity    int    `json:"capacity"`
	Brand       string `json:"brand"`
	FactoryYear int    `json:"factoryYear"`
}
