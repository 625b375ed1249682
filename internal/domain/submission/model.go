package submission

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/form"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FieldValue is one captured answer. Value is stored as an arbitrary JSON
// document.
type FieldValue struct {
	ID    string         `json:"id" binding:"required"`
	Name  string         `json:"name"`
	Value form.Value     `json:"value"`
	Type  form.FieldType `json:"type" binding:"omitempty,field_type"`
}

// Section is a free-form snapshot of a template section with its answers.
type Section struct {
	ID          string       `json:"id" binding:"required"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Data        []FieldValue `json:"data" binding:"dive"`
}

type ReportData []Section

type ReportSubmission struct {
	ID                uuid.UUID                      `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID         uuid.UUID                      `json:"project_id" gorm:"type:uuid;not null;index:idx_submission_project_template"`
	ReportTemplateID  uuid.UUID                      `json:"report_template_id" gorm:"type:uuid;not null;index:idx_submission_project_template"`
	Status            Status                         `json:"status" gorm:"size:16;not null;default:'DRAFT';index"`
	ReportData        datatypes.JSONType[ReportData] `json:"report_data" gorm:"not null"`
	ApprovalComments  *string                        `json:"approval_comments,omitempty" gorm:"type:text"`
	RejectionComments *string                        `json:"rejection_comments,omitempty" gorm:"type:text"`
	ApprovedAt        *time.Time                     `json:"approved_at,omitempty"`
	RejectedAt        *time.Time                     `json:"rejected_at,omitempty"`
	CreatedBy         string                         `json:"created_by,omitempty" gorm:"size:64"`
	CreatedAt         time.Time                      `json:"created_at" gorm:"index"`
	UpdatedAt         time.Time                      `json:"updated_at"`
}

func (ReportSubmission) TableName() string {
	return "report_submissions"
}

func (s *ReportSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = StatusDraft
	}
	return nil
}

func (s *ReportSubmission) Data() ReportData {
	return s.ReportData.Data()
}

func (s *ReportSubmission) SetData(d ReportData) {
	if d == nil {
		d = ReportData{}
	}
	s.ReportData = datatypes.NewJSONType(d)
}

// Section returns the captured section with the given id.
func (d ReportData) Section(id string) (Section, bool) {
	for _, sec := range d {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// Lookup returns the answer for field in section.
func (d ReportData) Lookup(sectionID, fieldID string) (FieldValue, bool) {
	sec, ok := d.Section(sectionID)
	if !ok {
		return FieldValue{}, false
	}
	for _, fv := range sec.Data {
		if fv.ID == fieldID {
			return fv, true
		}
	}
	return FieldValue{}, false
}
