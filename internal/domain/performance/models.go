package performance

import (
	"errors"
	"time"
)

type Review struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	ReviewDate time.Time `json:"reviewDate"`
	Score      int       `json:"score"`
	Comments   string    `json:"comments,omitempty"`
}

func (Review) Kind() string { return "PerformanceReview" }

func (r Review) EmployeeRef() string { return r.EmployeeID }

// Validate checks the ordinal score range (1 worst .. 5 best).
func (r Review) Validate() error {
	if r.Score < 1 || r.Score > 5 {
		return errors.New("score must be between 1 and 5")
	}
	return nil
}
