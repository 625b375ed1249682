package submission

import (
	"fmt"
	"strings"

	"github.com/linskybing/report-hub/internal/domain/form"
)

// ConformanceError lists the places where report data disagrees with the
// template schema it answers.
type ConformanceError struct {
	Problems []string
}

func (e *ConformanceError) Error() string {
	return "report data does not match template: " + strings.Join(e.Problems, "; ")
}

func (e *ConformanceError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// Conform checks d against schema. Every section and field in d must exist in
// schema with a matching type, and dropdown answers must be one of the
// options. With requireAll set, every required field must also have a
// non-empty answer.
func (d ReportData) Conform(schema form.Sections, requireAll bool) error {
	errs := &ConformanceError{}

	for _, sec := range d {
		schemaSec, ok := schema.Section(sec.ID)
		if !ok {
			errs.add("unknown section %q", sec.ID)
			continue
		}
		for _, fv := range sec.Data {
			field, ok := schemaSec.Field(fv.ID)
			if !ok {
				errs.add("section %q: unknown field %q", sec.ID, fv.ID)
				continue
			}
			if fv.Type != "" && fv.Type != field.Type() {
				errs.add("field %q: type %s does not match %s", fv.ID, fv.Type, field.Type())
			}
			if opts := field.Options(); opts != nil && !fv.Value.Empty() {
				s, isString := fv.Value.AsString()
				if !isString || !contains(opts, s) {
					errs.add("field %q: %q is not one of the options", fv.ID, fv.Value.Text())
				}
			}
		}
	}

	if requireAll {
		for _, sec := range schema {
			for _, field := range sec.Fields {
				if !field.Required {
					continue
				}
				fv, ok := d.Lookup(sec.ID, field.ID)
				if !ok || fv.Value.Empty() {
					errs.add("field %q (%s) is required", field.ID, field.Label)
				}
			}
		}
	}

	if len(errs.Problems) > 0 {
		return errs
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
