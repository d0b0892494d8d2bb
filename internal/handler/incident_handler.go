package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"disasterhub/internal/model"
	"disasterhub/internal/repository"
	"disasterhub/internal/service"
)

// IncidentHandler handles incident endpoints.
type IncidentHandler struct {
	svc service.IncidentService
}

// NewIncidentHandler creates a new incident handler.
func NewIncidentHandler(svc service.IncidentService) *IncidentHandler {
	return &IncidentHandler{svc: svc}
}

// ReportIncidentRequest represents an incident report.
// Any status sent by the client is ignored.
type ReportIncidentRequest struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Type        model.IncidentType `json:"type" validate:"required,incident_type"`
	Latitude    float64            `json:"latitude" validate:"latitude"`
	Longitude   float64            `json:"longitude" validate:"longitude"`
	MediaURL    string             `json:"media_url"`
	ReportedBy  uint               `json:"reported_by" validate:"required"`
}

// LogUpdateRequest appends a note to an incident's history.
type LogUpdateRequest struct {
	UpdatedBy  uint   `json:"updated_by" validate:"required"`
	UpdateNote string `json:"update_note"`
}

// UpdateStatusRequest moves an incident to a new status.
type UpdateStatusRequest struct {
	Status    model.IncidentStatus `json:"status" validate:"required,incident_status"`
	UpdatedBy uint                 `json:"updated_by" validate:"required"`
	Note      string               `json:"note"`
}

// ReportIncident godoc
// @Summary Report an incident
// @Tags incidents
// @Accept json
// @Produce json
// @Param request body ReportIncidentRequest true "Incident data"
// @Success 201 {object} model.Incident
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /incidents [post]
func (h *IncidentHandler) ReportIncident(c echo.Context) error {
	var req ReportIncidentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	incident, err := h.svc.ReportIncident(c.Request().Context(), service.ReportIncidentInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		MediaURL:    req.MediaURL,
		ReporterID:  req.ReportedBy,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, incident)
}

// ListIncidents godoc
// @Summary List incidents
// @Tags incidents
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param reported_by query int false "Filter by reporter user ID"
// @Success 200 {array} model.Incident
// @Failure 400 {object} errors.ErrorResponse
// @Router /incidents [get]
func (h *IncidentHandler) ListIncidents(c echo.Context) error {
	var filter repository.IncidentFilter

	if v := c.QueryParam("status"); v != "" {
		filter.Status = model.IncidentStatus(v)
		if !filter.Status.Valid() {
			return invalidQuery("status", v)
		}
	}
	if v := c.QueryParam("type"); v != "" {
		filter.Type = model.IncidentType(v)
		if !filter.Type.Valid() {
			return invalidQuery("type", v)
		}
	}
	if v := c.QueryParam("reported_by"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return invalidQuery("reported_by", v)
		}
		filter.ReportedByID = uint(id)
	}

	incidents, err := h.svc.ListIncidents(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, incidents)
}

// GetIncident godoc
// @Summary Get incident by id
// @Tags incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} model.Incident
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /incidents/{id} [get]
func (h *IncidentHandler) GetIncident(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	incident, err := h.svc.GetIncident(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, incident)
}

// UpdateStatus godoc
// @Summary Change an incident's status
// @Description Allowed: REPORTED to ACCEPTED or DECLINED, ACCEPTED to RESOLVED. The change is recorded in the history.
// @Tags incidents
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} model.Incident
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /incidents/{id}/status [patch]
func (h *IncidentHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	incident, err := h.svc.UpdateStatus(c.Request().Context(), id, req.UpdatedBy, req.Status, req.Note)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, incident)
}

// LogUpdate godoc
// @Summary Append a note to an incident's history
// @Tags incidents
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Param request body LogUpdateRequest true "Note"
// @Success 201 {object} model.IncidentHistoryLog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /incidents/{id}/logs [post]
func (h *IncidentHandler) LogUpdate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req LogUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.svc.LogUpdate(c.Request().Context(), id, req.UpdatedBy, req.UpdateNote)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// History godoc
// @Summary List an incident's history, oldest first
// @Tags incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {array} model.IncidentHistoryLog
// @Failure 404 {object} errors.ErrorResponse
// @Router /incidents/{id}/logs [get]
func (h *IncidentHandler) History(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	entries, err := h.svc.History(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, entries)
}
