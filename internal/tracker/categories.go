package tracker

import (
	"fmt"
	"strings"

	"timekeep/internal/db"
	"timekeep/internal/models"
)

// CreateCategory creates a new category. Empty or whitespace-only names
// are rejected with a ValidationError; callers at the command boundary
// treat that as a no-op.
func (s *Service) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Reason: "category name is empty"}
	}

	category := &models.Category{Name: name}
	if err := s.store.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// RenameCategory updates a category's display name
func (s *Service) RenameCategory(id uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Reason: "category name is empty"}
	}

	var category *models.Category
	err := s.store.Transaction(func(tx *db.Store) error {
		found, err := tx.GetCategory(id)
		if err != nil {
			if db.IsNotFound(err) {
				return &NotFoundError{Reason: fmt.Sprintf("category #%d not found", id)}
			}
			return err
		}
		found.Name = name
		category = found
		return tx.SaveCategory(found)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Fails with ConflictError while any
// completed session still references it; a running session does not
// block deletion.
func (s *Service) DeleteCategory(id uint) error {
	return s.store.Transaction(func(tx *db.Store) error {
		sessions, err := tx.SessionsByCategory(id)
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			return &ConflictError{Reason: "cannot delete category with existing sessions"}
		}

		if _, err := tx.GetCategory(id); err != nil {
			if db.IsNotFound(err) {
				return &NotFoundError{Reason: fmt.Sprintf("category #%d not found", id)}
			}
			return err
		}
		return tx.DeleteCategory(id)
	})
}

// ListCategories returns all categories
func (s *Service) ListCategories() ([]models.Category, error) {
	return s.store.ListCategories()
}
