package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"disasterhub/internal/model"
	"disasterhub/internal/repository"
	"disasterhub/internal/service"
)

// ResourceHandler handles resource inventory endpoints.
type ResourceHandler struct {
	svc service.ResourceService
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(svc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// AddResourceRequest registers a new resource. New resources are always AVAILABLE.
type AddResourceRequest struct {
	Name     string                 `json:"name" validate:"required"`
	Category model.ResourceCategory `json:"category" validate:"required,resource_category"`
	Quantity int                    `json:"quantity"`
	Location string                 `json:"location"`
	AddedBy  uint                   `json:"added_by" validate:"required"`
}

// UpdateResourceRequest changes only the fields present in the body.
type UpdateResourceRequest struct {
	Name     *string                 `json:"name"`
	Category *model.ResourceCategory `json:"category" validate:"omitempty,resource_category"`
	Quantity *int                    `json:"quantity"`
	Location *string                 `json:"location"`
	Status   *model.ResourceStatus   `json:"status" validate:"omitempty,resource_status"`
}

// AddResource godoc
// @Summary Add a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param request body AddResourceRequest true "Resource data"
// @Success 201 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources [post]
func (h *ResourceHandler) AddResource(c echo.Context) error {
	var req AddResourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resource, err := h.svc.AddResource(c.Request().Context(), service.AddResourceInput{
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Location:  req.Location,
		AddedByID: req.AddedBy,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, resource)
}

// UpdateResource godoc
// @Summary Update a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param id path int true "Resource ID"
// @Param request body UpdateResourceRequest true "Fields to change"
// @Success 200 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id} [patch]
func (h *ResourceHandler) UpdateResource(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateResourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resource, err := h.svc.UpdateResource(c.Request().Context(), id, service.UpdateResourceInput{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Location: req.Location,
		Status:   req.Status,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, resource)
}

// GetResource godoc
// @Summary Get resource by id
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} model.Resource
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resource, err := h.svc.GetResource(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, resource)
}

// ListResources godoc
// @Summary List resources
// @Tags resources
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Success 200 {array} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c echo.Context) error {
	var filter repository.ResourceFilter
	if v := c.QueryParam("category"); v != "" {
		filter.Category = model.ResourceCategory(v)
		if !filter.Category.Valid() {
			return invalidQuery("category", v)
		}
	}
	if v := c.QueryParam("status"); v != "" {
		filter.Status = model.ResourceStatus(v)
		if !filter.Status.Valid() {
			return invalidQuery("status", v)
		}
	}

	resources, err := h.svc.ListResources(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, resources)
}
