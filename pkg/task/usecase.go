package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("task not found")
	ErrInternal = errors.New("internal error")
)

// ErrValidation is returned for malformed caller input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Cache is an optional read-through cache over single-task lookups.
// Implementations must treat lookup misses as (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	DeletePattern(ctx context.Context, pattern string) error
}

// UseCase encapsulates owner-scoped task operations.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, title, description string) (Task, error)
	List(ctx context.Context, ownerID uuid.UUID, f Filter, limit, offset int) ([]Task, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status Status) (Task, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache Cache
}

// NewService returns the default UseCase. cache may be nil, in which
// case every read goes straight to the repository.
func NewService(repo Repository, cache Cache) UseCase {
	return &service{repo: repo, cache: cache}
}

// Create stores a new task for ownerID. Status is always OPEN at
// creation; any caller-supplied status is ignored by design.
func (s *service) Create(ctx context.Context, ownerID uuid.UUID, title, description string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrValidation("title is required")
	}
	now := time.Now().UTC()
	t := Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, ErrInternal
	}
	s.invalidate(ctx, ownerID)
	return t, nil
}

// List never treats an empty result as an error.
func (s *service) List(ctx context.Context, ownerID uuid.UUID, f Filter, limit, offset int) ([]Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID, f, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (Task, error) {
	key := cacheKey(ownerID, id)
	if s.cache != nil {
		var cached Task
		// cache errors degrade to misses; Postgres stays authoritative
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}
	t, err := s.repo.GetByIDForOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, ErrInternal
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, t)
	}
	return t, nil
}

// UpdateStatus fetches the task, mutates the status and persists it.
// Transitions are unconstrained; a concurrent delete may legitimately
// surface as not-found.
func (s *service) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status Status) (Task, error) {
	t, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return Task{}, err
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, t); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, ErrInternal
	}
	s.invalidate(ctx, ownerID)
	return t, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	affected, err := s.repo.DeleteForOwner(ctx, ownerID, id)
	if err != nil {
		return ErrInternal
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *service) invalidate(ctx context.Context, ownerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeletePattern(ctx, fmt.Sprintf("%s:*", ownerID))
}

// cacheKey is relative to the cache's own prefix, so the full Redis
// key reads tasks:<owner>:<id>.
func cacheKey(ownerID, id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", ownerID, id)
}
