package schema_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard/pkg/validator"
	"github.com/formguard/formguard/schema"
)

func validValues() schema.FormValues {
	return schema.FormValues{
		FullName: "Jane Doe",
		Address: schema.Address{
			Street: "421 Main St",
			City:   "Salt Lake City",
			State:  "UT",
			Zip:    "84101",
		},
		SSN:            "123-45-6789",
		PhoneNumber:    "801-555-1234",
		DOB:            "1990-01-15",
		DriversLicense: "D1234567",
		Consent:        true,
	}
}

func TestParseValidForm(t *testing.T) {
	t.Parallel()

	out, err := schema.Parse(validValues())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", out.FullName)
	assert.Equal(t, "123-45-6789", out.SSN.String())
	assert.Equal(t, "***-**-6789", out.SSN.Masked())
	assert.Equal(t, "801-555-1234", out.PhoneNumber)
	assert.Equal(t, "1990-01-15", out.DOB.String())
	assert.Equal(t, time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC), out.DOB.Time())
	assert.Equal(t, "D1234567", out.DriversLicense.String())
	assert.False(t, out.SSN.IsZero())
	assert.False(t, out.DOB.IsZero())
	assert.False(t, out.DriversLicense.IsZero())
}

func TestParseEmptyFormReportsEveryField(t *testing.T) {
	t.Parallel()

	out, err := schema.Parse(schema.FormValues{})
	require.Error(t, err)
	assert.True(t, out.SSN.IsZero(), "failed parse must not produce branded values")

	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)

	// Every one of the ten fields reports a distinct error, in form order.
	assert.Equal(t, schema.FormOrder, verrs.Fields())
}

func TestParseFieldRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*schema.FormValues)
		field  string
	}{
		{
			name:   "full name too long",
			mutate: func(v *schema.FormValues) { v.FullName = strings.Repeat("a", 101) },
			field:  schema.FieldFullName,
		},
		{
			name:   "markup-only name strips to empty and reports required",
			mutate: func(v *schema.FormValues) { v.FullName = "<script>alert(1)</script>" },
			field:  schema.FieldFullName,
		},
		{
			name:   "state must be two characters",
			mutate: func(v *schema.FormValues) { v.Address.State = "Utah" },
			field:  schema.FieldState,
		},
		{
			name:   "zip rejects four digits",
			mutate: func(v *schema.FormValues) { v.Address.Zip = "8410" },
			field:  schema.FieldZip,
		},
		{
			name:   "ssn rejects ungrouped digits",
			mutate: func(v *schema.FormValues) { v.SSN = "123456789" },
			field:  schema.FieldSSN,
		},
		{
			name:   "ssn rejects partial value",
			mutate: func(v *schema.FormValues) { v.SSN = "123-45" },
			field:  schema.FieldSSN,
		},
		{
			name:   "phone rejects wrong grouping",
			mutate: func(v *schema.FormValues) { v.PhoneNumber = "80-1555-1234" },
			field:  schema.FieldPhone,
		},
		{
			name:   "dob rejects impossible date",
			mutate: func(v *schema.FormValues) { v.DOB = "1990-02-30" },
			field:  schema.FieldDOB,
		},
		{
			name:   "license shorter than four characters",
			mutate: func(v *schema.FormValues) { v.DriversLicense = "D1" },
			field:  schema.FieldLicense,
		},
		{
			name:   "consent must be literally true",
			mutate: func(v *schema.FormValues) { v.Consent = false },
			field:  schema.FieldConsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values := validValues()
			tt.mutate(&values)

			_, err := schema.Parse(values)
			require.Error(t, err)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, []string{tt.field}, verrs.Fields(), "only the mutated field should fail")
		})
	}
}

func TestParseAcceptsAllZeroSSN(t *testing.T) {
	t.Parallel()

	values := validValues()
	values.SSN = "000-00-0000"

	out, err := schema.Parse(values)
	require.NoError(t, err)
	assert.Equal(t, "000-00-0000", out.SSN.String())
}

func TestParseNormalizesTextFields(t *testing.T) {
	t.Parallel()

	values := validValues()
	values.FullName = "  <b>Jane</b> Doe "
	values.Address.State = " ut "
	values.Address.Zip = " 841011234 "

	out, err := schema.Parse(values)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out.FullName)
	assert.Equal(t, "UT", out.Address.State)
	assert.Equal(t, "84101-1234", out.Address.Zip)
}

func TestValidateFieldSingleRule(t *testing.T) {
	t.Parallel()

	values := validValues()
	values.SSN = "123-45"
	values.FullName = "" // also invalid, but not the field under validation

	err := schema.ValidateField(values, schema.FieldSSN)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{schema.FieldSSN}, verrs.Fields())

	assert.NoError(t, schema.ValidateField(values, schema.FieldCity))
}

func TestValidateFieldUnknown(t *testing.T) {
	t.Parallel()

	err := schema.ValidateField(validValues(), "nope")
	assert.ErrorIs(t, err, schema.ErrUnknownField)
}

func TestBrandedTypesZeroByDefault(t *testing.T) {
	t.Parallel()

	// Outside Parse, only zero values are constructible.
	var s schema.SSN
	var d schema.DateOfBirth
	var l schema.DriversLicense
	assert.True(t, s.IsZero())
	assert.True(t, d.IsZero())
	assert.True(t, l.IsZero())
	assert.Equal(t, "", s.String())
}
