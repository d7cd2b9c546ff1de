package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the surrogate key, timestamps and optimistic-lock version
// carried by every row. None of these fields leave the persistence layer.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version   int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns a new surrogate key to rows that have none
func (m *BaseModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
