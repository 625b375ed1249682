package submission

import "github.com/google/uuid"

type CreateSubmissionDTO struct {
	ProjectID        uuid.UUID  `json:"project_id" binding:"required"`
	ReportTemplateID uuid.UUID  `json:"report_template_id" binding:"required"`
	ReportData       ReportData `json:"report_data" binding:"omitempty,dive"`
	Status           *Status    `json:"status,omitempty" binding:"omitempty,report_status"`
}

type UpdateSubmissionDTO struct {
	ReportData *ReportData `json:"report_data,omitempty" binding:"omitempty,dive"`
	Status     *Status     `json:"status,omitempty" binding:"omitempty,report_status"`
}

type DecisionDTO struct {
	Comments *string `json:"comments,omitempty"`
}

type ListQuery struct {
	ProjectID *uuid.UUID
	Status    *Status
	Page      int
	PageSize  int
}
