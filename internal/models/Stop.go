// internal/models/stop.go
package models

// Stop is a named stopping point shared between routes.
type Stop struct {
	Name     string `gorm:"column:name;primaryKey" json:"name"`
	Location string `gorm:"column:location" json:"location"`
}

func (Stop) TableName() string {
	return "stops"
}

type StopInput struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// StopRoute binds a stop to a route at a 1-based ordinal position.
type StopRoute struct {
	RouteID  uint   `gorm:"column:routeId;primaryKey;autoIncrement:false" json:"routeId"`
	ID       int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	StopName string `gorm:"column:stopName;not null;index" json:"stopName"`
}

func (StopRoute) TableName() string {
	return "stop_routes"
}
