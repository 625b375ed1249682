package form

import (
	"encoding/json"
	"fmt"
	"log"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldTextarea FieldType = "textarea"
	FieldBoolean  FieldType = "boolean"
	FieldCheckbox FieldType = "checkbox"
	FieldDropdown FieldType = "dropdown"
	FieldImage    FieldType = "image"
	FieldDate     FieldType = "date"
)

var fieldTypes = []FieldType{
	FieldText, FieldNumber, FieldTextarea, FieldBoolean,
	FieldCheckbox, FieldDropdown, FieldImage, FieldDate,
}

// FieldTypes returns every supported field type in declaration order.
func FieldTypes() []FieldType {
	out := make([]FieldType, len(fieldTypes))
	copy(out, fieldTypes)
	return out
}

func (t FieldType) Valid() bool {
	for _, ft := range fieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// FieldSpec is the type-specific part of a FormField. Each variant carries
// only the attributes that mean something for its type.
type FieldSpec interface {
	Type() FieldType
	isFieldSpec()
}

type TextField struct{ Placeholder string }
type NumberField struct{ Placeholder string }
type TextareaField struct{ Placeholder string }
type DateField struct{ Placeholder string }
type BooleanField struct{}
type CheckboxField struct{}
type ImageField struct{}

type DropdownField struct {
	Placeholder string
	Options     []string
}

func (TextField) Type() FieldType     { return FieldText }
func (NumberField) Type() FieldType   { return FieldNumber }
func (TextareaField) Type() FieldType { return FieldTextarea }
func (DateField) Type() FieldType     { return FieldDate }
func (BooleanField) Type() FieldType  { return FieldBoolean }
func (CheckboxField) Type() FieldType { return FieldCheckbox }
func (ImageField) Type() FieldType    { return FieldImage }
func (DropdownField) Type() FieldType { return FieldDropdown }

func (TextField) isFieldSpec()     {}
func (NumberField) isFieldSpec()   {}
func (TextareaField) isFieldSpec() {}
func (DateField) isFieldSpec()     {}
func (BooleanField) isFieldSpec()  {}
func (CheckboxField) isFieldSpec() {}
func (ImageField) isFieldSpec()    {}
func (DropdownField) isFieldSpec() {}

// Placeholder returns the placeholder of specs that have one.
func Placeholder(s FieldSpec) string {
	switch v := s.(type) {
	case TextField:
		return v.Placeholder
	case NumberField:
		return v.Placeholder
	case TextareaField:
		return v.Placeholder
	case DateField:
		return v.Placeholder
	case DropdownField:
		return v.Placeholder
	}
	return ""
}

// NewSpec builds the variant for t. Options are kept only for dropdowns;
// the returned bool reports whether options were supplied and dropped.
func NewSpec(t FieldType, placeholder string, options []string) (FieldSpec, bool, error) {
	stray := len(options) > 0 && t != FieldDropdown
	switch t {
	case FieldText:
		return TextField{Placeholder: placeholder}, stray, nil
	case FieldNumber:
		return NumberField{Placeholder: placeholder}, stray, nil
	case FieldTextarea:
		return TextareaField{Placeholder: placeholder}, stray, nil
	case FieldDate:
		return DateField{Placeholder: placeholder}, stray, nil
	case FieldBoolean:
		return BooleanField{}, stray, nil
	case FieldCheckbox:
		return CheckboxField{}, stray, nil
	case FieldImage:
		return ImageField{}, stray, nil
	case FieldDropdown:
		opts := make([]string, len(options))
		copy(opts, options)
		return DropdownField{Placeholder: placeholder, Options: opts}, false, nil
	}
	return nil, false, fmt.Errorf("unknown field type %q", t)
}

type FormField struct {
	ID         string
	Label      string
	Required   bool
	Order      int
	CategoryID string
	Spec       FieldSpec

	// strayOptions records options that were supplied for a non-dropdown
	// field and dropped while decoding.
	strayOptions bool
}

func (f FormField) Type() FieldType {
	if f.Spec == nil {
		return ""
	}
	return f.Spec.Type()
}

// Options returns the dropdown options, nil for every other type.
func (f FormField) Options() []string {
	if d, ok := f.Spec.(DropdownField); ok {
		return d.Options
	}
	return nil
}

type fieldWire struct {
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Order       int       `json:"order"`
	CategoryID  string    `json:"category_id"`
}

func (f FormField) MarshalJSON() ([]byte, error) {
	w := fieldWire{
		ID:         f.ID,
		Type:       f.Type(),
		Label:      f.Label,
		Required:   f.Required,
		Order:      f.Order,
		CategoryID: f.CategoryID,
	}
	if f.Spec != nil {
		w.Placeholder = Placeholder(f.Spec)
		w.Options = f.Options()
	}
	return json.Marshal(w)
}

func (f *FormField) UnmarshalJSON(data []byte) error {
	var w fieldWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	spec, stray, err := NewSpec(w.Type, w.Placeholder, w.Options)
	if err != nil {
		return fmt.Errorf("field %q: %w", w.ID, err)
	}
	if stray {
		log.Printf("[form] field %q: options ignored for type %s", w.ID, w.Type)
	}
	*f = FormField{
		ID:           w.ID,
		Label:        w.Label,
		Required:     w.Required,
		Order:        w.Order,
		CategoryID:   w.CategoryID,
		Spec:         spec,
		strayOptions: stray,
	}
	return nil
}
