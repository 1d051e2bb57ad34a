package payroll

import "time"

// Salary is a versioned pay record. A nil EndDate marks the record currently
// in effect; the service keeps at most one such record per employee.
type Salary struct {
	ID               string     `json:"id"`
	EmployeeID       string     `json:"employeeId"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	GrossSalary      float64    `json:"grossSalary"`
	NetSalary        float64    `json:"netSalary"`
	Benefits         *float64   `json:"benefits,omitempty"`
	Bonus            *float64   `json:"bonus,omitempty"`
	INSSDiscount     float64    `json:"inssDiscount"`
	IRRFDiscount     float64    `json:"irrfDiscount"`
	TransportVoucher *float64   `json:"transportVoucher,omitempty"`
}

func (Salary) Kind() string { return "Salary" }

func (s Salary) EmployeeRef() string { return s.EmployeeID }

type SalaryDiscount struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	DiscountType string    `json:"discountType"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Observation  string    `json:"observation,omitempty"`
}

func (SalaryDiscount) Kind() string { return "SalaryDiscount" }

func (d SalaryDiscount) EmployeeRef() string { return d.EmployeeID }

type Advance struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

func (Advance) Kind() string { return "Advance" }

func (a Advance) EmployeeRef() string { return a.EmployeeID }
