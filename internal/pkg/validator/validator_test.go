package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.co.uk",
		"user+tag@example.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0123456789"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
	assert.False(t, IsNumeric("-1"))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("15-01-2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)

	_, ok = IsValidDate("2023-02-29")
	assert.False(t, ok)

	_, ok = IsValidDate("not-a-date")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "startDate", Message: "startDate must be a valid date"},
	}

	assert.Equal(t, "email: email is required; startDate: startDate must be a valid date", errs.Error())

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "email is required", m["email"])
}
