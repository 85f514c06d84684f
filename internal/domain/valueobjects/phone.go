package valueobjects

import (
	"strings"

	"imoveis_xpto/pkg"

	"github.com/nyaruka/phonenumbers"
)

const DefaultPhoneRegion = "BR"

// PhoneNumber is the normalized identity of a tenant/contact.
//
// E164 is the canonical form used in storage keys; Formatted is the
// human-facing international form; Region is the detected country code.

type PhoneNumber struct {
	E164      string `json:"e164"`
	Formatted string `json:"formatted"`
	Region    string `json:"region"`
}

// NewPhoneNumber parses raw against defaultRegion (falls back to BR).
// Numbers that parse but are not valid for their region are rejected.
func NewPhoneNumber(raw, defaultRegion string) (PhoneNumber, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PhoneNumber{}, pkg.NewValidationError("phone: cannot be empty")
	}
	if defaultRegion == "" {
		defaultRegion = DefaultPhoneRegion
	}

	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return PhoneNumber{}, pkg.NewValidationError("phone: cannot parse " + raw)
	}
	if !phonenumbers.IsValidNumber(num) {
		return PhoneNumber{}, pkg.NewValidationError("phone: not a valid number for region " + defaultRegion)
	}

	return PhoneNumber{
		E164:      phonenumbers.Format(num, phonenumbers.E164),
		Formatted: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		Region:    phonenumbers.GetRegionCodeForNumber(num),
	}, nil
}

func (p PhoneNumber) IsZero() bool {
	return p.E164 == ""
}

func (p PhoneNumber) String() string {
	return p.E164
}
