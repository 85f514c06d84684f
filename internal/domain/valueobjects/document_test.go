package valueobjects

import (
	"testing"

	"imoveis_xpto/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_CPF(t *testing.T) {
	doc, err := NewDocument("11144477735")
	require.NoError(t, err)
	assert.Equal(t, DocumentTypeCPF, doc.Type)
	assert.Equal(t, "11144477735", doc.Value)
	assert.Equal(t, "111.444.777-35", doc.Formatted)
}

func TestNewDocument_CPF_AcceptsFormattedInput(t *testing.T) {
	doc, err := NewDocument("111.444.777-35")
	require.NoError(t, err)
	assert.Equal(t, DocumentTypeCPF, doc.Type)
	assert.Equal(t, "11144477735", doc.Value)
}

func TestNewDocument_CPF_RejectsCorruptedCheckDigits(t *testing.T) {
	for _, raw := range []string{"11144477745", "11144477736"} {
		_, err := NewDocument(raw)
		require.Error(t, err, raw)
		assert.True(t, pkg.IsValidation(err))
	}
}

func TestNewDocument_CPF_RejectsRepeatedDigits(t *testing.T) {
	for _, raw := range []string{"00000000000", "11111111111", "99999999999"} {
		_, err := NewDocument(raw)
		require.Error(t, err, raw)
		assert.True(t, pkg.IsValidation(err))
	}
}

func TestNewDocument_CNPJ(t *testing.T) {
	doc, err := NewDocument("11222333000181")
	require.NoError(t, err)
	assert.Equal(t, DocumentTypeCNPJ, doc.Type)
	assert.Equal(t, "11.222.333/0001-81", doc.Formatted)
}

func TestNewDocument_CNPJ_RejectsCorruptedCheckDigits(t *testing.T) {
	for _, raw := range []string{"11222333000191", "11222333000182"} {
		_, err := NewDocument(raw)
		require.Error(t, err, raw)
	}
}

func TestNewDocument_CNPJ_RejectsRepeatedDigits(t *testing.T) {
	_, err := NewDocument("11111111111111")
	require.Error(t, err)
}

func TestNewDocument_EmptyIsNone(t *testing.T) {
	doc, err := NewDocument("")
	require.NoError(t, err)
	assert.Equal(t, DocumentTypeNone, doc.Type)
	assert.True(t, doc.IsZero())
}

func TestNewDocument_WrongLength(t *testing.T) {
	_, err := NewDocument("12345")
	require.Error(t, err)
	assert.True(t, pkg.IsValidation(err))
}

func TestNewDocumentWithType_MismatchedLength(t *testing.T) {
	_, err := NewDocumentWithType("11144477735", DocumentTypeCNPJ)
	require.Error(t, err)
}
