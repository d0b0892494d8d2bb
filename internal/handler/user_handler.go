package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"disasterhub/internal/errors"
	"disasterhub/internal/model"
	"disasterhub/internal/service"
)

// Plain-text bodies of the registration and login endpoints.
const (
	MsgUserCreated        = "User created successfully."
	MsgEmailInUse         = "Email already in use."
	MsgLoginSuccessful    = "Login successful."
	MsgInvalidCredentials = "Invalid email or password."
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	Role     model.Role `json:"role"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce plain
// @Param request body CreateUserRequest true "User payload"
// @Success 200 {string} string "User created successfully."
// @Failure 400 {string} string "Email already in use."
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/create [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	_, err := h.svc.CreateUser(c.Request().Context(), req.Email, req.Password, req.Name, req.Role)
	if stderrors.Is(err, errors.ErrEmailInUse) {
		return c.String(http.StatusBadRequest, MsgEmailInUse)
	}
	if err != nil {
		return serviceError(err)
	}
	return c.String(http.StatusOK, MsgUserCreated)
}

// Login godoc
// @Summary Check a user's credentials
// @Tags users
// @Accept json
// @Produce plain
// @Param request body LoginRequest true "Credentials"
// @Success 200 {string} string "Login successful."
// @Failure 401 {string} string "Invalid email or password."
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	_, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if stderrors.Is(err, errors.ErrInvalidCredentials) {
		return c.String(http.StatusUnauthorized, MsgInvalidCredentials)
	}
	if err != nil {
		return serviceError(err)
	}
	return c.String(http.StatusOK, MsgLoginSuccessful)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, users)
}
