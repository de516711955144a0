package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.com"))
	assert.True(t, ValidEmail("first.last+tag@example.co.uk"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@domain"))
	assert.False(t, ValidEmail(""))
}

func TestValidURL(t *testing.T) {
	assert.True(t, ValidURL("https://example.com/page", ""))
	assert.False(t, ValidURL("not a url", ""))
	assert.False(t, ValidURL("", ""))
}

func TestValidURL_DomainContainment(t *testing.T) {
	assert.True(t, ValidURL("https://www.linkedin.com/in/someone", "linkedin.com"))
	assert.True(t, ValidURL("https://github.com/someone", "github.com"))
	assert.False(t, ValidURL("https://example.com/someone", "linkedin.com"))
}

func TestCheckDetails(t *testing.T) {
	violations := CheckDetails(Details{
		Email:    "bad",
		Website:  "https://ok.dev",
		LinkedIn: "https://example.com/in/x",
		GitHub:   "https://github.com/x",
	})

	require.Len(t, violations, 2)
	assert.Equal(t, "email", violations[0].Field)
	assert.Equal(t, "linkedin", violations[1].Field)
}

func TestCheckDetails_EmptyFieldsAreSkipped(t *testing.T) {
	assert.Empty(t, CheckDetails(Details{}))
}
