package models

import "time"

// ReliefCenter is a physical site victims, donations, supplies and alerts are routed to.
type ReliefCenter struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Location string `gorm:"size:255" json:"location"`
	Capacity int    `json:"capacity"`
	Contact  string `gorm:"size:100" json:"contact"`
}

func (ReliefCenter) TableName() string { return "reliefcenters" }

type Volunteer struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Phone        string `gorm:"size:50" json:"phone"`
	Skills       string `gorm:"size:255" json:"skills"`
	Availability string `gorm:"size:100" json:"availability"`
}

func (Volunteer) TableName() string { return "volunteers" }

type Victim struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"size:255;not null" json:"name"`
	Age              int    `json:"age"`
	Needs            string `gorm:"size:500" json:"needs"`
	AssignedCenterID *uint  `gorm:"index" json:"assigned_center_id"`
}

func (Victim) TableName() string { return "victims" }

type Supply struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ItemName string `gorm:"size:255;not null" json:"item_name"`
	Quantity int    `json:"quantity"`
	CenterID *uint  `gorm:"index" json:"center_id"`
}

func (Supply) TableName() string { return "supplies" }

// AlertSeverity is a free-form severity label; the constants are the ones the UI suggests.
type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "LOW"
	AlertSeverityModerate AlertSeverity = "MODERATE"
	AlertSeverityHigh     AlertSeverity = "HIGH"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

type Alert struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Message   string        `gorm:"size:1000;not null" json:"message"`
	Severity  AlertSeverity `gorm:"size:20" json:"severity"`
	CenterID  *uint         `gorm:"index" json:"center_id"`
	CreatedAt time.Time     `json:"created_at"`
}

func (Alert) TableName() string { return "alerts" }
