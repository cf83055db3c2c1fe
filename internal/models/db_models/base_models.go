package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripwise/pkg/utils"
)

// BaseModel carries the primary key and a millisecond creation stamp.
// Trips are never updated in place, so there is no UpdatedAt.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"autoCreateTime:milli;index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = utils.NowUnixMillis()
	}
	return nil
}
