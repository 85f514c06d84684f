package valueobjects

import (
	"testing"

	"imoveis_xpto/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber_BrazilianMobile(t *testing.T) {
	phone, err := NewPhoneNumber("11 91234-5678", "BR")
	require.NoError(t, err)
	assert.Equal(t, "+5511912345678", phone.E164)
	assert.Equal(t, "BR", phone.Region)
	assert.NotEmpty(t, phone.Formatted)
}

func TestNewPhoneNumber_DetectsCountryFromPrefix(t *testing.T) {
	phone, err := NewPhoneNumber("+44 20 7183 8750", "BR")
	require.NoError(t, err)
	assert.Equal(t, "+442071838750", phone.E164)
	assert.Equal(t, "GB", phone.Region)
}

func TestNewPhoneNumber_DefaultsToBrazil(t *testing.T) {
	phone, err := NewPhoneNumber("+55 11 91234-5678", "")
	require.NoError(t, err)
	assert.Equal(t, "+5511912345678", phone.E164)
}

func TestNewPhoneNumber_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "123"} {
		_, err := NewPhoneNumber(raw, "BR")
		require.Error(t, err, raw)
		assert.True(t, pkg.IsValidation(err))
	}
}
