package ingest

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// DefaultRegion is the region assumed for numbers written without a country code.
const DefaultRegion = "IN"

// NormalizeMobile returns the E.164 form of a mobile number, or "" when the
// value is not a valid number for DefaultRegion.
func NormalizeMobile(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	p, err := libphonenumber.Parse(raw, DefaultRegion)
	if err != nil {
		return ""
	}
	if !libphonenumber.IsValidNumber(p) {
		return ""
	}
	return libphonenumber.Format(p, libphonenumber.E164)
}
