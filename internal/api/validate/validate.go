// Package validate registers the binding tags used by the request DTOs.
package validate

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/report-hub/internal/domain/form"
	"github.com/linskybing/report-hub/internal/domain/submission"
)

// Register adds field_type and report_status to gin's validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("field_type", fieldType); err != nil {
		return err
	}
	return v.RegisterValidation("report_status", reportStatus)
}

func fieldType(fl validator.FieldLevel) bool {
	return form.FieldType(fl.Field().String()).Valid()
}

func reportStatus(fl validator.FieldLevel) bool {
	return submission.Status(fl.Field().String()).Valid()
}
