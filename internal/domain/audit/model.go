package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one change made to a resource, with the state before and
// after it.
type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Actor        string         `json:"actor" gorm:"size:64;index"`
	Action       string         `json:"action" gorm:"size:50;not null;index"`
	ResourceType string         `json:"resource_type" gorm:"size:50;not null;index:idx_audit_resource"`
	ResourceID   string         `json:"resource_id" gorm:"size:64;not null;index:idx_audit_resource"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `json:"ip_address,omitempty" gorm:"size:64"`
	UserAgent    string         `json:"user_agent,omitempty" gorm:"type:text"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

const (
	ResourceProjectType = "project_type"
	ResourceTemplate    = "report_template"
	ResourceSubmission  = "report_submission"
)

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionSubmit  = "submit"
	ActionApprove = "approve"
	ActionReject  = "reject"
)
