// internal/models/violation.go
package models

import "time"

// Violation is a lookup entry naming an infraction type.
type Violation struct {
	Name    string  `gorm:"column:name;primaryKey" json:"name"`
	Penalty *string `gorm:"column:penalty" json:"penalty"`
}

func (Violation) TableName() string {
	return "violations"
}

type ViolationInput struct {
	Name    string  `json:"name" binding:"required"`
	Penalty *string `json:"penalty"`
}

// ViolationRecord is one logged infraction by a driver.
type ViolationRecord struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	DriverID      uint      `gorm:"column:driverId;not null;index" json:"driverId"`
	BusNumber     *string   `gorm:"column:busNumber" json:"busNumber"`
	FleetID       *uint     `gorm:"column:fleetId;index" json:"fleetId"`
	RouteID       *uint     `gorm:"column:routeId" json:"routeId"`
	Location      string    `gorm:"column:location" json:"location"`
	ViolationName string    `gorm:"column:violationName;not null;index" json:"violationName"`
	RecorderID    *uint     `gorm:"column:recorderId" json:"recorderId"`
	Time          time.Time `gorm:"column:time;index" json:"time"`
}

func (ViolationRecord) TableName() string {
	return "violation_records"
}

// ViolationRecordInput leaves RouteID and FleetID unset to have them
// derived from the driver's current route.
type ViolationRecordInput struct {
	DriverID      uint        `json:"driverId" binding:"required"`
	BusNumber     *string     `json:"busNumber"`
	FleetID       Field[uint] `json:"fleetId"`
	RouteID       Field[uint] `json:"routeId"`
	Location      string      `json:"location" binding:"required"`
	ViolationName string      `json:"violationName" binding:"required"`
	RecorderID    *uint       `json:"recorderId"`
	Time          time.Time   `json:"time"`
}

// ViolationStat is one row of the per-fleet aggregation.
type ViolationStat struct {
	ViolationName string `gorm:"column:violationName" json:"violationName"`
	Count         int64  `gorm:"column:count" json:"count"`
}
