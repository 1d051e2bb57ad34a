// Package audit appends action-log entries as a side effect of entity writes.
package audit

import (
	"context"
	"fmt"
)

// Record is any persisted entity that can be tagged in the action log.
// Kind must return the concrete entity name, e.g. "Salary".
type Record interface {
	Kind() string
}

// HasEmployee is implemented by records that belong to an employee.
type HasEmployee interface {
	EmployeeRef() string
}

type Store interface {
	Insert(ctx context.Context, userID, employeeID, actionText string) error
	List(ctx context.Context, limit, offset int) ([]ActionLog, error)
}

type Service struct {
	Store Store
}

func New(store Store) *Service {
	return &Service{Store: store}
}

// PersistWithLog runs persist, then appends an action-log entry when both an
// actor and an action description were supplied. Missing actor or description
// skips the log entry silently; the primary write still counts. The two writes
// are not wrapped in a shared transaction, so a log failure after a successful
// persist surfaces as an error with the primary write already committed.
func (s *Service) PersistWithLog(ctx context.Context, rec Record, actorID, action string, persist func(context.Context) error) error {
	if err := persist(ctx); err != nil {
		return err
	}
	if actorID == "" || action == "" {
		return nil
	}

	employeeID := ""
	if owned, ok := rec.(HasEmployee); ok {
		employeeID = owned.EmployeeRef()
	}
	return s.Store.Insert(ctx, actorID, employeeID, fmt.Sprintf("%s - [%s]", action, rec.Kind()))
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]ActionLog, error) {
	return s.Store.List(ctx, limit, offset)
}
