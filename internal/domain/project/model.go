package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is the unit of work reports are filed against. Agent and customer
// are opaque party references owned by the account system.
type Project struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string     `json:"name" gorm:"size:255;not null"`
	Description   string     `json:"description,omitempty" gorm:"type:text"`
	ProjectTypeID *uuid.UUID `json:"project_type_id,omitempty" gorm:"type:uuid;index"`
	AgentID       string     `json:"agent_id,omitempty" gorm:"size:64;index"`
	CustomerID    string     `json:"customer_id,omitempty" gorm:"size:64;index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
