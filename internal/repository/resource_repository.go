package repository

import (
	"context"

	"gorm.io/gorm"

	"disasterhub/internal/model"
)

// ResourceFilter narrows List results. Zero fields are ignored.
type ResourceFilter struct {
	Category model.ResourceCategory
	Status   model.ResourceStatus
}

// ResourceRepository defines resource persistence operations.
type ResourceRepository interface {
	Create(ctx context.Context, resource *model.Resource) error
	Update(ctx context.Context, resource *model.Resource) error
	FindByID(ctx context.Context, id uint) (*model.Resource, error)
	List(ctx context.Context, filter ResourceFilter) ([]model.Resource, error)
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

// Update writes every column of resource.
func (r *resourceRepository) Update(ctx context.Context, resource *model.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, id uint) (*model.Resource, error) {
	var resource model.Resource
	if err := r.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) List(ctx context.Context, filter ResourceFilter) ([]model.Resource, error) {
	q := r.db.WithContext(ctx).Model(&model.Resource{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var resources []model.Resource
	if err := q.Order("id").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
