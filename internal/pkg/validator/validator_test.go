package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alojamento/internal/pkg/apperror"
)

type sample struct {
	Name  string `validate:"notblank"`
	Count int    `validate:"gt=0"`
}

func TestValidate_OK(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "x", Count: 1}))
	assert.NoError(t, Check("sample", sample{Name: "x", Count: 1}))
}

func TestValidate_FieldErrors(t *testing.T) {
	fields := Validate(sample{Name: "   ", Count: 0})

	assert.Equal(t, map[string]string{"Name": "notblank", "Count": "gt"}, fields)
}

func TestCheck_InvalidArgument(t *testing.T) {
	err := Check("sample", sample{Name: "", Count: -1})

	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	assert.Equal(t, "INVALID_ARGUMENT: invalid sample: Count (gt), Name (notblank)", err.Error())
}
