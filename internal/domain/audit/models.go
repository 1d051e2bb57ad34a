package audit

import "time"

type ActionLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	EmployeeID string    `json:"employeeId,omitempty"`
	ActionText string    `json:"actionText"`
	ActionDate time.Time `json:"actionDate"`
}
