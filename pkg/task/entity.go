package task

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status is the task lifecycle state. Tasks always start as OPEN.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// ParseStatus validates a caller-supplied status value.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusDone:
		return Status(s), true
	}
	return "", false
}

// Task is owned by exactly one user; the owner is set at creation and
// never reassigned.
type Task struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter describes optional query constraints. Dimensions combine with
// AND; the search term matches title OR description, case-insensitively.
type Filter struct {
	Status *Status
	Search string
}

// Repository is the port for task persistence. Every operation is
// conjoined with the owner id, so a task owned by another user is
// indistinguishable from a nonexistent one.
type Repository interface {
	Create(ctx context.Context, t Task) error
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, f Filter, limit, offset int) ([]Task, error)
	Save(ctx context.Context, t Task) error
	// DeleteForOwner reports how many rows were removed; the use case
	// interprets zero as not-found.
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (int64, error)
}
