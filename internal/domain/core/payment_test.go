package core

import "testing"

func TestValidatePaymentDetails(t *testing.T) {
	tests := []struct {
		name    string
		details PaymentDetails
		wantErr bool
	}{
		{
			name:    "pix with key",
			details: PaymentDetails{PaymentType: "pix", PixKey: "12345678900"},
		},
		{
			name:    "pix without key",
			details: PaymentDetails{PaymentType: "pix"},
			wantErr: true,
		},
		{
			name: "deposit with bank data",
			details: PaymentDetails{
				PaymentType:   "deposit",
				BankName:      "Banco do Brasil",
				AccountNumber: "12345-6",
				AgencyNumber:  "0001",
			},
		},
		{
			name:    "deposit missing agency",
			details: PaymentDetails{PaymentType: "deposit", BankName: "Banco do Brasil", AccountNumber: "12345-6"},
			wantErr: true,
		},
		{
			name:    "cash needs nothing",
			details: PaymentDetails{PaymentType: "cash"},
		},
		{
			name:    "unknown type",
			details: PaymentDetails{PaymentType: "check"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePaymentDetails(tc.details)
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
