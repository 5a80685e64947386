package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ricardossantis/nestTasksManager/api/http/presenter"
	"github.com/ricardossantis/nestTasksManager/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUp handles user registration. Registration does not log the user
// in; the response carries no token.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	user, err := h.useCase.SignUp(c.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case err == auth.ErrValidation:
			return presenter.Error(c, http.StatusBadRequest, "username and password are required")
		case err == auth.ErrUserAlreadyExists:
			return presenter.Error(c, http.StatusConflict, "user already exists")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":        user.ID.String(),
		"username":  user.Username,
		"createdAt": user.CreatedAt,
	})
}

// SignIn handles user login. Unknown username and wrong password
// produce the same response.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	// No field pre-checks here: empty or unknown credentials all flow
	// through the use case's uniform invalid-credentials answer.
	result, err := h.useCase.SignIn(c.Context(), req.Username, req.Password)
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":       result.User.ID.String(),
		"username": result.User.Username,
		"token":    result.Token,
	})
}
