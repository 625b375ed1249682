package validate

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/linskybing/report-hub/internal/domain/form"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredTags(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterOn(v))

	ok := submission.StatusSubmitted
	bad := submission.Status("ARCHIVED")
	assert.NoError(t, v.Struct(submission.UpdateSubmissionDTO{Status: &ok}))
	assert.Error(t, v.Struct(submission.UpdateSubmissionDTO{Status: &bad}))

	assert.NoError(t, v.Struct(submission.FieldValue{ID: "f1", Type: form.FieldDate}))
	assert.NoError(t, v.Struct(submission.FieldValue{ID: "f1"}))
	assert.Error(t, v.Struct(submission.FieldValue{ID: "f1", Type: "slider"}))
}
