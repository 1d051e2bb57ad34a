package core

import "time"

// DiffEmployees lists the tracked field changes between two versions of an
// employee record, ready to append to the change history.
func DiffEmployees(employeeID string, before, after Employee) []DataChange {
	var changes []DataChange
	record := func(field, oldValue, newValue string) {
		if oldValue == newValue {
			return
		}
		changes = append(changes, DataChange{
			EmployeeID: employeeID,
			FieldName:  field,
			OldValue:   oldValue,
			NewValue:   newValue,
		})
	}

	record("cpf", before.CPF, after.CPF)
	record("rg", before.RG, after.RG)
	record("phone", before.Phone, after.Phone)
	record("start_time", normalizeClock(before.StartTime), normalizeClock(after.StartTime))
	record("end_time", normalizeClock(before.EndTime), normalizeClock(after.EndTime))
	record("employment_status", before.Status, after.Status)
	record("contract_type", before.ContractType, after.ContractType)
	record("payment_method", before.PaymentMethod, after.PaymentMethod)
	record("role_id", before.RoleID, after.RoleID)
	record("termination_date", formatOptionalDate(before.TerminationDate), formatOptionalDate(after.TerminationDate))

	return changes
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format("2006-01-02")
}

// normalizeClock brings clock strings to HH:MM:SS. Stored TIME columns read
// back with seconds while clients usually send HH:MM; without a canonical
// form the diff would flag every resubmitted record.
func normalizeClock(value string) string {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("15:04:05")
		}
	}
	return value
}
