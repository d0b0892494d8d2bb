package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	apperrors "disasterhub/internal/errors"
	"disasterhub/internal/metrics"
	"disasterhub/internal/model"
	"disasterhub/internal/repository"
)

// AddResourceInput carries the fields of a new inventory item.
type AddResourceInput struct {
	Name      string
	Category  model.ResourceCategory
	Quantity  int
	Location  string
	AddedByID uint
}

// UpdateResourceInput holds optional changes. Nil fields are left as they are.
type UpdateResourceInput struct {
	Name     *string
	Category *model.ResourceCategory
	Quantity *int
	Location *string
	Status   *model.ResourceStatus
}

// ResourceService manages the relief resource inventory.
type ResourceService interface {
	AddResource(ctx context.Context, in AddResourceInput) (*model.Resource, error)
	UpdateResource(ctx context.Context, id uint, in UpdateResourceInput) (*model.Resource, error)
	GetResource(ctx context.Context, id uint) (*model.Resource, error)
	ListResources(ctx context.Context, filter repository.ResourceFilter) ([]model.Resource, error)
}

type resourceService struct {
	resources repository.ResourceRepository
	users     repository.UserRepository
	log       logrus.FieldLogger
	now       Clock
}

// NewResourceService creates a new resource service.
func NewResourceService(resources repository.ResourceRepository, users repository.UserRepository, log logrus.FieldLogger) ResourceService {
	return &resourceService{
		resources: resources,
		users:     users,
		log:       log,
		now:       utcNow,
	}
}

// AddResource stores a new item as AVAILABLE. Quantity is stored as given.
func (s *resourceService) AddResource(ctx context.Context, in AddResourceInput) (*model.Resource, error) {
	if err := requireUser(ctx, s.users, in.AddedByID); err != nil {
		return nil, err
	}

	resource := &model.Resource{
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Location:    in.Location,
		Status:      model.ResourceStatusAvailable,
		AddedByID:   in.AddedByID,
		LastUpdated: s.now(),
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	metrics.ResourceAdded(string(resource.Category))
	methodLogger(s.log, "resource", "AddResource").
		WithField("resource_id", resource.ID).
		Info("resource added")
	return resource, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, id uint, in UpdateResourceInput) (*model.Resource, error) {
	resource, err := s.GetResource(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		resource.Name = *in.Name
	}
	if in.Category != nil {
		resource.Category = *in.Category
	}
	if in.Quantity != nil {
		resource.Quantity = *in.Quantity
	}
	if in.Location != nil {
		resource.Location = *in.Location
	}
	if in.Status != nil {
		resource.Status = *in.Status
	}
	resource.LastUpdated = s.now()

	if err := s.resources.Update(ctx, resource); err != nil {
		return nil, fmt.Errorf("update resource %d: %w", id, err)
	}
	return resource, nil
}

func (s *resourceService) GetResource(ctx context.Context, id uint) (*model.Resource, error) {
	resource, err := s.resources.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find resource %d: %w", id, err)
	}
	return resource, nil
}

func (s *resourceService) ListResources(ctx context.Context, filter repository.ResourceFilter) ([]model.Resource, error) {
	resources, err := s.resources.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}
