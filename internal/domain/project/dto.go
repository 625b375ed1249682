package project

import "github.com/google/uuid"

type CreateProjectDTO struct {
	Name          string     `json:"name" yaml:"name" binding:"required"`
	Description   string     `json:"description" yaml:"description"`
	ProjectTypeID *uuid.UUID `json:"project_type_id,omitempty" yaml:"-"`
	AgentID       string     `json:"agent_id" yaml:"agent_id"`
	CustomerID    string     `json:"customer_id" yaml:"customer_id"`
}
