// internal/models/member.go
package models

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// JobDriver is assigned to members created without an explicit job.
const JobDriver = "driver"

// Member is a staff record. Drivers are members whose Job is JobDriver.
type Member struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Gender    Gender    `gorm:"column:gender;not null;check:gender IN ('male','female')" json:"gender"`
	BirthYear int       `gorm:"column:birthYear" json:"birthYear"`
	Origin    string    `gorm:"column:origin" json:"origin"`
	JoinedAt  time.Time `gorm:"column:joinedAt;index" json:"joinedAt"`
	Phone     string    `gorm:"column:phone" json:"phone"`
	IDNumber  string    `gorm:"column:idNumber" json:"idNumber"`
	Job       string    `gorm:"column:job;not null" json:"job"`
	RouteID   *uint     `gorm:"column:routeId;index" json:"routeId"`
}

func (Member) TableName() string {
	return "members"
}

// MemberInput carries the editable fields of a Member. Job is only
// honoured on create; updates never rewrite it.
type MemberInput struct {
	Name      string    `json:"name" binding:"required"`
	Gender    Gender    `json:"gender" binding:"required,oneof=male female"`
	BirthYear int       `json:"birthYear"`
	Origin    string    `json:"origin"`
	JoinedAt  time.Time `json:"joinedAt"`
	Phone     string    `json:"phone"`
	IDNumber  string    `json:"idNumber"`
	Job       string    `json:"job"`
	RouteID   *uint     `json:"routeId"`
}
