package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	OwnerID     string         `gorm:"index;not null"`
	Name        string         `gorm:"not null"`
	Destination string         `gorm:"not null"`
	RequestID   string         `gorm:"column:request_id"`
	Interests   pq.StringArray `gorm:"type:text[]"`
	Request     datatypes.JSON `gorm:"type:jsonb;not null"`
	Itinerary   datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (Trip) TableName() string {
	return "trips"
}
