package reporttemplate

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/form"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportTemplate is an admin-defined schema bound to one project type.
// (name, project_type_id) is unique.
type ReportTemplate struct {
	ID                  uuid.UUID                         `json:"id" gorm:"type:uuid;primaryKey"`
	Name                string                            `json:"name" gorm:"size:255;not null;uniqueIndex:idx_template_name_type"`
	Description         string                            `json:"description,omitempty" gorm:"type:text"`
	ProjectTypeID       uuid.UUID                         `json:"project_type_id" gorm:"type:uuid;not null;uniqueIndex:idx_template_name_type;index"`
	NumberOfSubmissions *int                              `json:"number_of_submissions,omitempty"`
	Sections            datatypes.JSONType[form.Sections] `json:"sections" gorm:"not null"`
	CreatedAt           time.Time                         `json:"created_at" gorm:"index"`
	UpdatedAt           time.Time                         `json:"updated_at"`
}

func (ReportTemplate) TableName() string {
	return "report_templates"
}

func (t *ReportTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Schema returns the decoded sections.
func (t *ReportTemplate) Schema() form.Sections {
	return t.Sections.Data()
}

func (t *ReportTemplate) SetSchema(s form.Sections) {
	t.Sections = datatypes.NewJSONType(s)
}

// CapReached reports whether count existing submissions exhaust the cap.
func (t *ReportTemplate) CapReached(count int64) bool {
	return t.NumberOfSubmissions != nil && count >= int64(*t.NumberOfSubmissions)
}
