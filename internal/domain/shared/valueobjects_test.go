package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail_IsValid(t *testing.T) {
	assert.True(t, Email("maria.lopez@example.com").IsValid())
	assert.True(t, Email("a+b@sub.domain.co").IsValid())

	assert.False(t, Email("").IsValid())
	assert.False(t, Email("not-an-email").IsValid())
	assert.False(t, Email("missing@tld").IsValid())
	assert.False(t, Email("@example.com").IsValid())

	long := Email(strings.Repeat("a", 120) + "@example.com")
	assert.False(t, long.IsValid())
}

func TestEmail_Normalize(t *testing.T) {
	assert.Equal(t, Email("maria@example.com"), Email("  Maria@Example.COM  ").Normalize())
}

func TestGradeLevel_IsValid(t *testing.T) {
	assert.True(t, GradeLevel("parvulos").IsValid())
	assert.True(t, GradeLevel("transicion").IsValid())

	assert.False(t, GradeLevel("").IsValid())
	assert.False(t, GradeLevel(strings.Repeat("x", 51)).IsValid())
}

func TestPeriod_IsValid(t *testing.T) {
	assert.True(t, Period(1).IsValid())
	assert.True(t, Period(4).IsValid())

	assert.False(t, Period(0).IsValid())
	assert.False(t, Period(-2).IsValid())
}

func TestID_IsValid(t *testing.T) {
	assert.True(t, ID("7ed99bd0-87b2-4dbb-a97b-596c3f29c49b").IsValid())
	assert.False(t, ID("").IsValid())
}
