package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"disasterhub/internal/model"
	"disasterhub/internal/service"
)

// VolunteerHandler handles volunteer profile endpoints.
type VolunteerHandler struct {
	svc service.VolunteerService
}

// NewVolunteerHandler creates a new volunteer handler.
func NewVolunteerHandler(svc service.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{svc: svc}
}

// CreateProfileRequest registers a user as a volunteer.
type CreateProfileRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Skills string `json:"skills"`
}

// UpdateAvailabilityRequest sets a volunteer's availability.
type UpdateAvailabilityRequest struct {
	Availability model.AvailabilityStatus `json:"availability_status" validate:"required,availability_status"`
}

// CreateProfile godoc
// @Summary Create a volunteer profile
// @Tags volunteers
// @Accept json
// @Produce json
// @Param request body CreateProfileRequest true "Profile data"
// @Success 201 {object} model.VolunteerProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /volunteers [post]
func (h *VolunteerHandler) CreateProfile(c echo.Context) error {
	var req CreateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.svc.CreateProfile(c.Request().Context(), req.UserID, req.Skills)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// GetProfile godoc
// @Summary Get a user's volunteer profile
// @Tags volunteers
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} model.VolunteerProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /volunteers/{userId} [get]
func (h *VolunteerHandler) GetProfile(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	profile, err := h.svc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ListProfiles godoc
// @Summary List volunteer profiles
// @Tags volunteers
// @Produce json
// @Param availability query string false "Filter by availability"
// @Success 200 {array} model.VolunteerProfile
// @Failure 400 {object} errors.ErrorResponse
// @Router /volunteers [get]
func (h *VolunteerHandler) ListProfiles(c echo.Context) error {
	availability := model.AvailabilityStatus(c.QueryParam("availability"))
	if availability != "" && !availability.Valid() {
		return invalidQuery("availability", string(availability))
	}

	profiles, err := h.svc.ListProfiles(c.Request().Context(), availability)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// UpdateAvailability godoc
// @Summary Set a volunteer's availability
// @Tags volunteers
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body UpdateAvailabilityRequest true "Availability"
// @Success 200 {object} model.VolunteerProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /volunteers/{userId}/availability [patch]
func (h *VolunteerHandler) UpdateAvailability(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	var req UpdateAvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.svc.UpdateAvailability(c.Request().Context(), userID, req.Availability)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// CompleteTask godoc
// @Summary Record one completed task for a volunteer
// @Tags volunteers
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} model.VolunteerProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /volunteers/{userId}/tasks/complete [post]
func (h *VolunteerHandler) CompleteTask(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	profile, err := h.svc.IncrementCompletedTasks(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
