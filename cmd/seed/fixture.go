package main

import (
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/form"
	"github.com/linskybing/report-hub/internal/domain/project"
	"github.com/linskybing/report-hub/internal/domain/projecttype"
	"github.com/linskybing/report-hub/internal/domain/reporttemplate"
	"gopkg.in/yaml.v2"
)

type fixture struct {
	ProjectTypes []projectTypeFixture `yaml:"project_types"`
	Templates    []templateFixture    `yaml:"templates"`
	Projects     []projectFixture     `yaml:"projects"`
}

type projectTypeFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func (f projectTypeFixture) dto() projecttype.CreateProjectTypeDTO {
	return projecttype.CreateProjectTypeDTO{Name: f.Name, Description: f.Description}
}

type templateFixture struct {
	Name                string           `yaml:"name"`
	Description         string           `yaml:"description"`
	ProjectType         string           `yaml:"project_type"`
	NumberOfSubmissions *int             `yaml:"number_of_submissions"`
	Sections            []sectionFixture `yaml:"sections"`
}

type sectionFixture struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Order       int            `yaml:"order"`
	Fields      []fieldFixture `yaml:"fields"`
}

type fieldFixture struct {
	ID          string   `yaml:"id"`
	Type        string   `yaml:"type"`
	Label       string   `yaml:"label"`
	Required    bool     `yaml:"required"`
	Placeholder string   `yaml:"placeholder"`
	Options     []string `yaml:"options"`
	Order       int      `yaml:"order"`
	CategoryID  string   `yaml:"category_id"`
}

func (f templateFixture) dto(projectTypeID uuid.UUID) (reporttemplate.CreateTemplateDTO, error) {
	sections := make(form.Sections, 0, len(f.Sections))
	for _, s := range f.Sections {
		sec := form.FormSection{ID: s.ID, Name: s.Name, Description: s.Description, Order: s.Order}
		for _, fl := range s.Fields {
			spec, _, err := form.NewSpec(form.FieldType(strings.ToLower(fl.Type)), fl.Placeholder, fl.Options)
			if err != nil {
				return reporttemplate.CreateTemplateDTO{}, err
			}
			sec.Fields = append(sec.Fields, form.FormField{
				ID:         fl.ID,
				Label:      fl.Label,
				Required:   fl.Required,
				Order:      fl.Order,
				CategoryID: fl.CategoryID,
				Spec:       spec,
			})
		}
		sections = append(sections, sec)
	}
	return reporttemplate.CreateTemplateDTO{
		Name:                f.Name,
		Description:         f.Description,
		ProjectTypeID:       projectTypeID,
		NumberOfSubmissions: f.NumberOfSubmissions,
		Sections:            sections,
	}, nil
}

type projectFixture struct {
	project.CreateProjectDTO `yaml:",inline"`
	ProjectType              string `yaml:"project_type"`
}

func parseFixture(raw []byte) (*fixture, error) {
	var fx fixture
	if err := yaml.UnmarshalStrict(raw, &fx); err != nil {
		return nil, err
	}
	return &fx, nil
}
