package valueobjects

import (
	"fmt"
	"strings"

	"imoveis_xpto/pkg"
)

// DocumentType discriminates the Brazilian taxpayer document union.

type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "cpf"
	DocumentTypeCNPJ DocumentType = "cnpj"
	DocumentTypeNone DocumentType = "none"
)

// Document is a checksum-validated CPF or CNPJ. A document is optional
// almost everywhere it appears, so empty input yields the NONE value
// instead of an error.

type Document struct {
	Type      DocumentType `json:"type"`
	Value     string       `json:"value"`
	Formatted string       `json:"formatted"`
}

// NewDocument strips non-digits and auto-detects the type by length:
// 11 digits is a CPF, 14 a CNPJ, anything else non-empty is invalid.
func NewDocument(raw string) (Document, error) {
	digits := onlyDigits(raw)
	switch len(digits) {
	case 0:
		return Document{Type: DocumentTypeNone}, nil
	case 11:
		return NewDocumentWithType(raw, DocumentTypeCPF)
	case 14:
		return NewDocumentWithType(raw, DocumentTypeCNPJ)
	default:
		return Document{}, pkg.NewValidationError(fmt.Sprintf("document: %d digits is neither a CPF nor a CNPJ", len(digits)))
	}
}

// NewDocumentWithType validates raw as an explicitly requested type.
func NewDocumentWithType(raw string, docType DocumentType) (Document, error) {
	digits := onlyDigits(raw)
	if len(digits) == 0 && docType == DocumentTypeNone {
		return Document{Type: DocumentTypeNone}, nil
	}

	switch docType {
	case DocumentTypeCPF:
		if !validCPF(digits) {
			return Document{}, pkg.NewValidationError("document: invalid CPF")
		}
		return Document{Type: DocumentTypeCPF, Value: digits, Formatted: formatCPF(digits)}, nil
	case DocumentTypeCNPJ:
		if !validCNPJ(digits) {
			return Document{}, pkg.NewValidationError("document: invalid CNPJ")
		}
		return Document{Type: DocumentTypeCNPJ, Value: digits, Formatted: formatCNPJ(digits)}, nil
	default:
		return Document{}, pkg.NewValidationError("document: unknown type " + string(docType))
	}
}

func (d Document) IsZero() bool {
	return d.Type == DocumentTypeNone || d.Type == ""
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// checkDigit computes one mod-11 check digit over digits using the given
// weight table. Remainder below 2 yields 0, otherwise 11-remainder.
func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

var (
	cpfWeights1 = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2 = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func validCPF(digits string) bool {
	if len(digits) != 11 || allSameDigit(digits) {
		return false
	}
	if checkDigit(digits, cpfWeights1) != int(digits[9]-'0') {
		return false
	}
	return checkDigit(digits, cpfWeights2) == int(digits[10]-'0')
}

func validCNPJ(digits string) bool {
	if len(digits) != 14 || allSameDigit(digits) {
		return false
	}
	if checkDigit(digits, cnpjWeights1) != int(digits[12]-'0') {
		return false
	}
	return checkDigit(digits, cnpjWeights2) == int(digits[13]-'0')
}

func formatCPF(digits string) string {
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

func formatCNPJ(digits string) string {
	return fmt.Sprintf("%s.%s.%s/%s-%s", digits[0:2], digits[2:5], digits[5:8], digits[8:12], digits[12:14])
}
