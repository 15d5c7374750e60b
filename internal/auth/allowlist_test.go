package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/samadhan-service/internal/auth"
)

func TestParseAllowlistNormalizesEntries(t *testing.T) {
	list := auth.ParseAllowlist(" Admin@Gov.In , ,collector@district.gov.in,")

	assert.Len(t, list, 2)
	assert.True(t, list.Allows("admin@gov.in"))
	assert.True(t, list.Allows("ADMIN@GOV.IN"))
	assert.True(t, list.Allows("  collector@district.gov.in "))
	assert.False(t, list.Allows(""))
	assert.False(t, list.Allows("citizen@example.com"))
}

func TestParseAllowlistEmpty(t *testing.T) {
	list := auth.ParseAllowlist("")

	assert.Empty(t, list)
	assert.False(t, list.Allows("anyone@example.com"))
}
