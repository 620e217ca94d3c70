package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"billrecon/internal/domain"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// checkCustomer returns format warnings for one normalized customer. Values
// still holding their "not provided" sentinel are not checked.
func checkCustomer(row int, c domain.CustomerData) []domain.ParseWarning {
	var warnings []domain.ParseWarning

	gstin := strings.ToUpper(c.GSTIN)
	if c.GSTIN != domain.GSTINNotProvided && !gstinPattern.MatchString(gstin) {
		warnings = append(warnings, warn(row, fieldGSTIN, c.GSTIN, "GSTIN does not match the 15-character GSTIN format"))
	}

	pan := strings.ToUpper(c.PAN)
	if c.PAN != domain.PANNotProvided && !panPattern.MatchString(pan) {
		warnings = append(warnings, warn(row, fieldPAN, c.PAN, "PAN does not match the 10-character PAN format"))
	}

	// A GSTIN embeds the holder's PAN at positions 3-12.
	if gstinPattern.MatchString(gstin) && panPattern.MatchString(pan) && gstin[2:12] != pan {
		warnings = append(warnings, warn(row, fieldPAN, c.PAN,
			fmt.Sprintf("PAN does not match the PAN embedded in GSTIN %s", gstin)))
	}

	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		warnings = append(warnings, warn(row, fieldEmail, c.Email, "email address is not valid"))
	}

	if c.Mobile != "" && c.MobileE164 == "" {
		warnings = append(warnings, warn(row, fieldMobile, c.Mobile, "mobile number is not a valid Indian number"))
	}

	return warnings
}

func warn(row int, field, value, msg string) domain.ParseWarning {
	return domain.ParseWarning{Row: row, Field: field, Value: value, Message: msg}
}
