package model

import "time"

// ResourceCategory classifies relief supplies.
type ResourceCategory string

const (
	ResourceCategoryFood      ResourceCategory = "FOOD"
	ResourceCategoryWater     ResourceCategory = "WATER"
	ResourceCategoryMedical   ResourceCategory = "MEDICAL"
	ResourceCategoryShelter   ResourceCategory = "SHELTER"
	ResourceCategoryClothing  ResourceCategory = "CLOTHING"
	ResourceCategoryEquipment ResourceCategory = "EQUIPMENT"
	ResourceCategoryOther     ResourceCategory = "OTHER"
)

// Valid reports whether c is a known category.
func (c ResourceCategory) Valid() bool {
	switch c {
	case ResourceCategoryFood, ResourceCategoryWater, ResourceCategoryMedical, ResourceCategoryShelter,
		ResourceCategoryClothing, ResourceCategoryEquipment, ResourceCategoryOther:
		return true
	}
	return false
}

// ResourceStatus represents whether a resource can still be handed out.
type ResourceStatus string

const (
	ResourceStatusAvailable ResourceStatus = "AVAILABLE"
	ResourceStatusAllocated ResourceStatus = "ALLOCATED"
	ResourceStatusDepleted  ResourceStatus = "DEPLETED"
)

// Valid reports whether s is a known resource status.
func (s ResourceStatus) Valid() bool {
	switch s {
	case ResourceStatusAvailable, ResourceStatusAllocated, ResourceStatusDepleted:
		return true
	}
	return false
}

// Resource is an inventory item of relief supplies.
type Resource struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Name        string           `json:"name" gorm:"size:255;not null"`
	Category    ResourceCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	Quantity    int              `json:"quantity"`
	Location    string           `json:"location" gorm:"size:255"`
	Status      ResourceStatus   `json:"status" gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	AddedByID   uint             `json:"added_by" gorm:"not null;index"`
	LastUpdated time.Time        `json:"last_updated" gorm:"not null"`

	// Relations
	AddedBy User `json:"-" gorm:"foreignKey:AddedByID"`
}
