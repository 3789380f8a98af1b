package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlug(t *testing.T) {
	valid := []string{"seo", "seo-optimization", "web-design-2026"}
	for _, s := range valid {
		assert.True(t, ValidateSlug(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "Seo", "seo_optimization", "-leading", "trailing-", "two--dashes", "spa ce"}
	for _, s := range invalid {
		assert.False(t, ValidateSlug(s), "expected %q to be invalid", s)
	}
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+1 555 013 7729"))
	assert.True(t, ValidatePhone("(555) 013-7729"))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("0"))
}
