package core

import "context"

func (s *Store) UpsertPaymentDetails(ctx context.Context, details PaymentDetails) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payment_details (employee_id, payment_type, pix_key, bank_name, account_number, agency_number)
    VALUES ($1,$2,$3,$4,$5,$6)
    ON CONFLICT (employee_id) DO UPDATE
    SET payment_type = EXCLUDED.payment_type,
        pix_key = EXCLUDED.pix_key,
        bank_name = EXCLUDED.bank_name,
        account_number = EXCLUDED.account_number,
        agency_number = EXCLUDED.agency_number
    RETURNING id
  `, details.EmployeeID, details.PaymentType, nullIfEmpty(details.PixKey), nullIfEmpty(details.BankName),
		nullIfEmpty(details.AccountNumber), nullIfEmpty(details.AgencyNumber)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetPaymentDetails(ctx context.Context, employeeID string) (*PaymentDetails, error) {
	var details PaymentDetails
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, payment_type,
           COALESCE(pix_key, ''),
           COALESCE(bank_name, ''),
           COALESCE(account_number, ''),
           COALESCE(agency_number, '')
    FROM payment_details
    WHERE employee_id = $1
  `, employeeID).Scan(&details.ID, &details.EmployeeID, &details.PaymentType, &details.PixKey,
		&details.BankName, &details.AccountNumber, &details.AgencyNumber)
	if err != nil {
		return nil, err
	}
	return &details, nil
}
