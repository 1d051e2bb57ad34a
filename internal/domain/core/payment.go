package core

import (
	"errors"
	"strings"
)

// ValidatePaymentDetails applies the conditional rules the schema does not
// express: pix payouts need a key, deposits need bank routing data.
func ValidatePaymentDetails(p PaymentDetails) error {
	switch p.PaymentType {
	case "pix":
		if strings.TrimSpace(p.PixKey) == "" {
			return errors.New("pix_key is required for pix payment type")
		}
	case "deposit":
		if strings.TrimSpace(p.BankName) == "" || strings.TrimSpace(p.AccountNumber) == "" || strings.TrimSpace(p.AgencyNumber) == "" {
			return errors.New("bank_name, account_number and agency_number are required for deposit payment type")
		}
	case "cash", "other":
	default:
		return errors.New("invalid payment type")
	}
	return nil
}
