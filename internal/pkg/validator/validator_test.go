package validator

import (
	"testing"

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
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("user.name+tag@sub.example.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidNIK(t *testing.T) {
	assert.True(t, IsValidNIK("3173051234567890"))
	assert.False(t, IsValidNIK("317305123456789"))   // 15 digits
	assert.False(t, IsValidNIK("31730512345678901")) // 17 digits
	assert.False(t, IsValidNIK("31730512345678xx"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-01-31")
	assert.True(t, ok)
	_, ok = IsValidDate("31-01-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("081234567890"))
	assert.True(t, IsValidPhoneNumber("+6281234567890"))
	assert.True(t, IsValidPhoneNumber("6281234567890"))
	assert.True(t, IsValidPhoneNumber("0812-3456-7890"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("0912345678901234"))
	assert.False(t, IsValidPhoneNumber("+62812abc67890"))
}

func TestIsInSlice(t *testing.T) {
	opts := []string{"halfday", "fullday", "none"}
	assert.True(t, IsInSlice("halfday", opts))
	assert.False(t, IsInSlice("quarterday", opts))
}
