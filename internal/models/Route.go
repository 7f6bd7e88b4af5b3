// internal/models/route.go
package models

import "time"

// Route is a transit line operated by a fleet.
// Its stops are ordered through StopRoute rows.
type Route struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	FleetID   *uint     `gorm:"column:fleetId;index" json:"fleetId"`
	CaptainID *uint     `gorm:"column:captainId;index" json:"captainId"`
	CreatedAt time.Time `gorm:"column:createdAt;index" json:"createdAt"`
}

func (Route) TableName() string {
	return "routes"
}

type RouteInput struct {
	FleetID   *uint     `json:"fleetId"`
	CaptainID *uint     `json:"captainId"`
	CreatedAt time.Time `json:"createdAt"`
}
