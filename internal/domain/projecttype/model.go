package projecttype

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectType is a category of work; it decides which report templates apply
// to a project.
type ProjectType struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ProjectType) TableName() string {
	return "project_types"
}

func (p *ProjectType) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
