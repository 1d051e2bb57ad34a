package leave

import "time"

const (
	StatusApproved = "approved"
	StatusPending  = "pending"

	AbsenceExcused   = "excused"
	AbsenceUnexcused = "unexcused"
)

var (
	RequestStatuses = []string{StatusApproved, StatusPending}
	AbsenceStatuses = []string{AbsenceExcused, AbsenceUnexcused}
	LeaveTypes      = []string{"sick", "personal"}
)

type Vacation struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	DaysTaken  int       `json:"daysTaken"`
	Status     string    `json:"status"`
}

func (Vacation) Kind() string { return "Vacation" }

func (v Vacation) EmployeeRef() string { return v.EmployeeID }

type Leave struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	LeaveType  string    `json:"leaveType"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Status     string    `json:"status"`
}

func (Leave) Kind() string { return "Leave" }

func (l Leave) EmployeeRef() string { return l.EmployeeID }

type Absence struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	AbsenceDate time.Time `json:"absenceDate"`
	Reason      string    `json:"reason,omitempty"`
	Status      string    `json:"status"`
}

func (Absence) Kind() string { return "Absence" }

func (a Absence) EmployeeRef() string { return a.EmployeeID }
