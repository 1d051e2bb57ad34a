package core

import "context"

func (s *Store) CreateAddress(ctx context.Context, addr Address) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO addresses (street, number, complement, neighborhood, city, state, country, postal_code)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, addr.Street, addr.Number, nullIfEmpty(addr.Complement), addr.Neighborhood, addr.City, addr.State, addr.Country, addr.PostalCode).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) AttachAddress(ctx context.Context, employeeID, addressID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employee_addresses (employee_id, address_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING
  `, employeeID, addressID)
	return err
}

func (s *Store) DetachAddress(ctx context.Context, employeeID, addressID string) error {
	_, err := s.DB.Exec(ctx, `
    DELETE FROM employee_addresses
    WHERE employee_id = $1 AND address_id = $2
  `, employeeID, addressID)
	return err
}

func (s *Store) ListAddressesForEmployee(ctx context.Context, employeeID string) ([]Address, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.street, a.number, COALESCE(a.complement, ''), a.neighborhood, a.city, a.state, a.country, a.postal_code
    FROM addresses a
    JOIN employee_addresses ea ON ea.address_id = a.id
    WHERE ea.employee_id = $1
    ORDER BY a.city, a.street
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Address
	for rows.Next() {
		var addr Address
		if err := rows.Scan(&addr.ID, &addr.Street, &addr.Number, &addr.Complement, &addr.Neighborhood, &addr.City, &addr.State, &addr.Country, &addr.PostalCode); err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, rows.Err()
}
