package application

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Reports"

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

type ExportService struct {
	Repos *repository.Repos
}

func NewExportService(repos *repository.Repos) *ExportService {
	return &ExportService{Repos: repos}
}

// ExportTemplate renders every report filed against a template as a
// spreadsheet, one row per report and one column per schema field.
func (s *ExportService) ExportTemplate(ctx context.Context, templateID uuid.UUID) (*bytes.Buffer, string, error) {
	t, err := s.Repos.Template.GetByID(ctx, templateID)
	if err != nil {
		return nil, "", translate(err, "report template", templateID)
	}
	subs, err := s.Repos.Submission.ListByTemplate(ctx, templateID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, "", err
	}

	type column struct{ sectionID, fieldID string }
	header := []interface{}{"Report ID", "Project ID", "Status", "Created At", "Decided At", "Comments"}
	var columns []column
	for _, sec := range t.Schema() {
		for _, field := range sec.Fields {
			header = append(header, fmt.Sprintf("%s / %s", sec.Name, field.Label))
			columns = append(columns, column{sec.ID, field.ID})
		}
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}
	lastCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, "", err
	}
	if err := f.SetCellStyle(exportSheet, "A1", lastCell, headerStyle); err != nil {
		return nil, "", err
	}

	for i, sub := range subs {
		data := sub.Data()
		decidedAt, comments := decision(&sub)
		row := []interface{}{
			sub.ID.String(),
			sub.ProjectID.String(),
			string(sub.Status),
			sub.CreatedAt.Format(time.RFC3339),
			decidedAt,
			comments,
		}
		for _, col := range columns {
			text := ""
			if fv, ok := data.Lookup(col.sectionID, col.fieldID); ok {
				text = fv.Value.Text()
			}
			row = append(row, text)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s_%s.xlsx", unsafeFilename.ReplaceAllString(t.Name, "_"), time.Now().Format("20060102_150405"))
	return buf, filename, nil
}

func decision(sub *submission.ReportSubmission) (string, string) {
	switch {
	case sub.ApprovedAt != nil:
		return sub.ApprovedAt.Format(time.RFC3339), deref(sub.ApprovalComments)
	case sub.RejectedAt != nil:
		return sub.RejectedAt.Format(time.RFC3339), deref(sub.RejectionComments)
	}
	return "", ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
