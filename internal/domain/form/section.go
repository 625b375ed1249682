package form

import (
	"fmt"
	"sort"
	"strings"
)

type FormSection struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Order       int         `json:"order"`
	Fields      []FormField `json:"fields"`
}

// Sections is the ordered schema of a report template.
type Sections []FormSection

// SchemaError lists every structural problem found in a schema.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "invalid form schema: " + strings.Join(e.Problems, "; ")
}

func (e *SchemaError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// Validate checks the structure of the schema. With strict set, options
// supplied on non-dropdown fields are reported instead of ignored.
func (s Sections) Validate(strict bool) error {
	errs := &SchemaError{}
	sectionIDs := make(map[string]struct{}, len(s))

	for i, sec := range s {
		if sec.ID == "" {
			errs.add("section %d: id is required", i)
		} else if _, dup := sectionIDs[sec.ID]; dup {
			errs.add("section %q: duplicate id", sec.ID)
		} else {
			sectionIDs[sec.ID] = struct{}{}
		}
		if strings.TrimSpace(sec.Name) == "" {
			errs.add("section %q: name is required", sec.ID)
		}

		fieldIDs := make(map[string]struct{}, len(sec.Fields))
		for j, f := range sec.Fields {
			switch {
			case f.ID == "":
				errs.add("section %q field %d: id is required", sec.ID, j)
			default:
				if _, dup := fieldIDs[f.ID]; dup {
					errs.add("section %q field %q: duplicate id", sec.ID, f.ID)
				}
				fieldIDs[f.ID] = struct{}{}
			}
			if strings.TrimSpace(f.Label) == "" {
				errs.add("field %q: label is required", f.ID)
			}
			if f.Spec == nil || !f.Type().Valid() {
				errs.add("field %q: unknown type %q (want one of %v)", f.ID, f.Type(), FieldTypes())
				continue
			}
			if d, ok := f.Spec.(DropdownField); ok && len(d.Options) == 0 {
				errs.add("field %q: dropdown requires at least one option", f.ID)
			}
			if strict && f.strayOptions {
				errs.add("field %q: options are only allowed on dropdown fields", f.ID)
			}
		}
	}

	if len(errs.Problems) > 0 {
		return errs
	}
	return nil
}

// Normalize sorts the fields of every section by order. Section order is
// kept as supplied.
func (s Sections) Normalize() Sections {
	out := make(Sections, len(s))
	for i, sec := range s {
		fields := make([]FormField, len(sec.Fields))
		copy(fields, sec.Fields)
		sort.SliceStable(fields, func(a, b int) bool { return fields[a].Order < fields[b].Order })
		sec.Fields = fields
		out[i] = sec
	}
	return out
}

func (s Sections) Section(id string) (FormSection, bool) {
	for _, sec := range s {
		if sec.ID == id {
			return sec, true
		}
	}
	return FormSection{}, false
}

func (sec FormSection) Field(id string) (FormField, bool) {
	for _, f := range sec.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FormField{}, false
}
