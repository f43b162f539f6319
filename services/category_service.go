package services

import (
	"errors"

	"github.com/jsersan/tatooback/models"

	"gorm.io/gorm"
)

// CategoryService owns the self-referential category table. Roots are
// stored with parent_id == id; mutations keep the parent graph acyclic
// apart from that self-loop.
type CategoryService struct {
	DB *gorm.DB
}

// List returns all categories ordered by name.
func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, storage(err)
	}
	return categories, nil
}

// Get returns a category with its direct children and the number of
// products referencing it. The root self-loop is not listed as a child.
func (s *CategoryService) Get(id uint) (*models.CategoryDetail, error) {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("category %d not found", id)
		}
		return nil, storage(err)
	}

	children := []models.CategorySummary{}
	if err := s.DB.Model(&models.Category{}).
		Select("id", "name").
		Where("parent_id = ? AND id <> ?", id, id).
		Order("name ASC").
		Find(&children).Error; err != nil {
		return nil, storage(err)
	}

	var productsCount int64
	if err := s.DB.Model(&models.Product{}).
		Where("category_id = ?", id).
		Count(&productsCount).Error; err != nil {
		return nil, storage(err)
	}

	return &models.CategoryDetail{
		Category:      category,
		Children:      children,
		ProductsCount: productsCount,
	}, nil
}

// Create inserts a category under the given parent. A "none" parent makes
// the category a root: the row is inserted first and its parent patched to
// the freshly assigned id, since the id is not known before the insert.
// A brand-new node cannot be anyone's ancestor, so no cycle check is needed.
func (s *CategoryService) Create(name string, parent models.ParentRef) (*models.Category, error) {
	if name == "" {
		return nil, invalid("category name must not be empty")
	}

	if !parent.None {
		if err := s.DB.First(&models.Category{}, parent.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound("parent category %d not found", parent.ID)
			}
			return nil, storage(err)
		}
	}

	category := models.Category{Name: name, ParentID: parent.ID}
	if err := s.DB.Create(&category).Error; err != nil {
		return nil, storage(err)
	}

	if parent.None {
		if err := s.DB.Model(&category).Update("parent_id", category.ID).Error; err != nil {
			return nil, storage(err)
		}
		category.ParentID = category.ID
	}

	return &category, nil
}

// Update renames and/or reparents a category. A "none" parent resolves to
// the category's own id (make it a root). When the new parent is another
// category, it must exist and must not be one of the category's direct
// children. The check is deliberately shallow: deeper descendants are not
// walked.
func (s *CategoryService) Update(id uint, name string, parent models.ParentRef) (*models.Category, error) {
	if name == "" {
		return nil, invalid("category name must not be empty")
	}

	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("category %d not found", id)
		}
		return nil, storage(err)
	}

	newParent := parent.ID
	if parent.None {
		newParent = id
	}

	if newParent != id {
		if err := s.DB.First(&models.Category{}, newParent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound("parent category %d not found", newParent)
			}
			return nil, storage(err)
		}

		var children []models.Category
		if err := s.DB.Where("parent_id = ?", id).Find(&children).Error; err != nil {
			return nil, storage(err)
		}
		for _, child := range children {
			if child.ID == newParent {
				return nil, cycle("category %d cannot become a child of its own subcategory %d", id, newParent)
			}
		}
	}

	// Single UPDATE so name and parent change together or not at all.
	if err := s.DB.Model(&category).Updates(map[string]interface{}{
		"name":      name,
		"parent_id": newParent,
	}).Error; err != nil {
		return nil, storage(err)
	}

	category.Name = name
	category.ParentID = newParent
	return &category, nil
}

// Delete removes a category. It refuses while the category still has real
// children (the root self-loop does not count) or referencing products;
// nothing is cascaded.
func (s *CategoryService) Delete(id uint) error {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("category %d not found", id)
		}
		return storage(err)
	}

	var childCount int64
	if err := s.DB.Model(&models.Category{}).
		Where("parent_id = ? AND id <> ?", id, id).
		Count(&childCount).Error; err != nil {
		return storage(err)
	}
	if childCount > 0 {
		return conflict("category %d still has %d subcategories", id, childCount)
	}

	var productCount int64
	if err := s.DB.Model(&models.Product{}).
		Where("category_id = ?", id).
		Count(&productCount).Error; err != nil {
		return storage(err)
	}
	if productCount > 0 {
		return conflict("category %d is still referenced by %d products", id, productCount)
	}

	if err := s.DB.Delete(&models.Category{}, id).Error; err != nil {
		return storage(err)
	}
	return nil
}
