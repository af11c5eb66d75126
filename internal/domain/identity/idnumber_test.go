package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "simsure/internal/domain/errors"
)

func TestValidateIDNumber_Valid(t *testing.T) {
	for _, id := range []string{
		"8001015009087",
		"9001015800088",
		"0000000000000",
	} {
		t.Run(id, func(t *testing.T) {
			require.NoError(t, ValidateIDNumber(id))
		})
	}
}

func TestValidateIDNumber_BadCheckDigit(t *testing.T) {
	err := ValidateIDNumber("8001015009086")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ID_NUMBER", appErr.ErrorCode())
}

func TestValidateIDNumber_Malformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "too short", id: "800101500908"},
		{name: "too long", id: "80010150090877"},
		{name: "non numeric", id: "80010150O9087"},
		{name: "whitespace", id: "8001015009 87"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateIDNumber(tt.id))
		})
	}
}

// Exhaustively flip each check digit to confirm exactly one value passes.
func TestValidateIDNumber_SingleCheckDigitAccepted(t *testing.T) {
	base := "800101500908"
	accepted := 0
	for d := 0; d <= 9; d++ {
		if ValidateIDNumber(base+string(rune('0'+d))) == nil {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
}

func TestValidMobileNumber(t *testing.T) {
	assert.True(t, ValidMobileNumber("0821234567"))
	assert.True(t, ValidMobileNumber("0612345678"))
	assert.True(t, ValidMobileNumber("+27821234567"))

	assert.False(t, ValidMobileNumber(""))
	assert.False(t, ValidMobileNumber("082123456"))    // too short
	assert.False(t, ValidMobileNumber("08212345678"))  // too long
	assert.False(t, ValidMobileNumber("0121234567"))   // landline prefix
	assert.False(t, ValidMobileNumber("27821234567"))  // missing plus
	assert.False(t, ValidMobileNumber("082 123 4567")) // spaces
}
