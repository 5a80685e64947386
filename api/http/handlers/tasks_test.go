package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardossantis/nestTasksManager/pkg/task"
)

type stubTaskUseCase struct {
	createRes task.Task
	createErr error
	listRes   []task.Task
	listErr   error
	getRes    task.Task
	getErr    error
	updateRes task.Task
	updateErr error
	deleteErr error

	lastOwner  uuid.UUID
	lastFilter task.Filter
}

func (s *stubTaskUseCase) Create(ctx context.Context, ownerID uuid.UUID, title, description string) (task.Task, error) {
	s.lastOwner = ownerID
	return s.createRes, s.createErr
}

func (s *stubTaskUseCase) List(ctx context.Context, ownerID uuid.UUID, f task.Filter, limit, offset int) ([]task.Task, error) {
	s.lastOwner = ownerID
	s.lastFilter = f
	return s.listRes, s.listErr
}

func (s *stubTaskUseCase) GetByID(ctx context.Context, ownerID, id uuid.UUID) (task.Task, error) {
	s.lastOwner = ownerID
	return s.getRes, s.getErr
}

func (s *stubTaskUseCase) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status task.Status) (task.Task, error) {
	s.lastOwner = ownerID
	return s.updateRes, s.updateErr
}

func (s *stubTaskUseCase) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	s.lastOwner = ownerID
	return s.deleteErr
}

// newTaskApp mounts the handler behind a stand-in for the JWT
// middleware that injects the owner id.
func newTaskApp(uc task.UseCase, owner uuid.UUID) *fiber.App {
	app := fiber.New()
	h := NewTaskHandler(uc)
	group := app.Group("/tasks", func(c *fiber.Ctx) error {
		c.Locals("userId", owner.String())
		return c.Next()
	})
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.GetByID)
	group.Patch("/:id/status", h.UpdateStatus)
	group.Delete("/:id", h.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCreateTaskReturnsOpenStatus(t *testing.T) {
	owner := uuid.New()
	stub := &stubTaskUseCase{createRes: task.Task{
		ID: uuid.New(), OwnerID: owner, Title: "Fix Bug", Description: "urgent", Status: task.StatusOpen,
	}}
	app := newTaskApp(stub, owner)

	resp, raw := doJSON(t, app, http.MethodPost, "/tasks/", fiber.Map{"title": "Fix Bug", "description": "urgent"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body taskResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "OPEN", body.Status)
	assert.Equal(t, owner, stub.lastOwner, "owner resolved from the token, not the payload")
}

func TestCreateTaskValidation(t *testing.T) {
	stub := &stubTaskUseCase{createErr: task.ErrValidation("title is required")}
	app := newTaskApp(stub, uuid.New())

	resp, _ := doJSON(t, app, http.MethodPost, "/tasks/", fiber.Map{"title": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListTasksEmptyBody(t *testing.T) {
	stub := &stubTaskUseCase{listRes: []task.Task{}}
	app := newTaskApp(stub, uuid.New())

	resp, raw := doJSON(t, app, http.MethodGet, "/tasks/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(raw), "empty result is a valid outcome")
}

func TestListTasksParsesFilter(t *testing.T) {
	stub := &stubTaskUseCase{}
	app := newTaskApp(stub, uuid.New())

	resp, _ := doJSON(t, app, http.MethodGet, "/tasks/?status=OPEN&search=bug", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, stub.lastFilter.Status)
	assert.Equal(t, task.StatusOpen, *stub.lastFilter.Status)
	assert.Equal(t, "bug", stub.lastFilter.Search)
}

func TestListTasksRejectsUnknownStatus(t *testing.T) {
	app := newTaskApp(&stubTaskUseCase{}, uuid.New())

	resp, _ := doJSON(t, app, http.MethodGet, "/tasks/?status=BOGUS", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTaskNotFound(t *testing.T) {
	stub := &stubTaskUseCase{getErr: task.ErrNotFound}
	app := newTaskApp(stub, uuid.New())

	resp, _ := doJSON(t, app, http.MethodGet, "/tasks/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetTaskInvalidID(t *testing.T) {
	app := newTaskApp(&stubTaskUseCase{}, uuid.New())

	resp, _ := doJSON(t, app, http.MethodGet, "/tasks/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateStatusRoundTrip(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	stub := &stubTaskUseCase{updateRes: task.Task{ID: id, OwnerID: owner, Title: "Fix Bug", Status: task.StatusDone}}
	app := newTaskApp(stub, owner)

	resp, raw := doJSON(t, app, http.MethodPatch, "/tasks/"+id.String()+"/status", fiber.Map{"status": "DONE"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body taskResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "DONE", body.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	app := newTaskApp(&stubTaskUseCase{}, uuid.New())

	resp, _ := doJSON(t, app, http.MethodPatch, "/tasks/"+uuid.NewString()+"/status", fiber.Map{"status": "ARCHIVED"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteTask(t *testing.T) {
	app := newTaskApp(&stubTaskUseCase{}, uuid.New())
	resp, _ := doJSON(t, app, http.MethodDelete, "/tasks/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	app = newTaskApp(&stubTaskUseCase{deleteErr: task.ErrNotFound}, uuid.New())
	resp, _ = doJSON(t, app, http.MethodDelete, "/tasks/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
