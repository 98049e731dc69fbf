package db

import (
	"errors"

	"gorm.io/gorm"

	"timekeep/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// IsNotFound reports whether err means a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// --- Categories ---

// CreateCategory inserts a new category
func (s *Store) CreateCategory(category *models.Category) error {
	return s.db.Create(category).Error
}

// GetCategory retrieves a category by ID
func (s *Store) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns all categories ordered by creation
func (s *Store) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// SaveCategory persists changes to an existing category
func (s *Store) SaveCategory(category *models.Category) error {
	return s.db.Save(category).Error
}

// DeleteCategory removes a category by ID
func (s *Store) DeleteCategory(id uint) error {
	return s.db.Delete(&models.Category{}, id).Error
}

// --- Sessions ---

// CreateSession inserts a completed session
func (s *Store) CreateSession(session *models.Session) error {
	return s.db.Create(session).Error
}

// GetSession retrieves a session by ID with its category loaded
func (s *Store) GetSession(id uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.Preload("Category").First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions returns all completed sessions, newest first
func (s *Store) ListSessions() ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Preload("Category").
		Order("started_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SaveSession persists changes to an existing session
func (s *Store) SaveSession(session *models.Session) error {
	return s.db.Save(session).Error
}

// DeleteSession removes a session by ID. Returns ErrNotFound when no row
// was deleted.
func (s *Store) DeleteSession(id uint) error {
	res := s.db.Delete(&models.Session{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SessionsByCategory returns completed sessions referencing the category.
// Used by the category deletion guard.
func (s *Store) SessionsByCategory(categoryID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Where("category_id = ?", categoryID).Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// --- Active session singleton ---

// GetActiveSession returns the active session, or nil when none is running
func (s *Store) GetActiveSession() (*models.ActiveSession, error) {
	var active models.ActiveSession
	err := s.db.Preload("Category").First(&active).Error
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &active, nil
}

// CreateActiveSession inserts the active session row
func (s *Store) CreateActiveSession(active *models.ActiveSession) error {
	return s.db.Create(active).Error
}

// DeleteActiveSession removes the active session row
func (s *Store) DeleteActiveSession(id uint) error {
	return s.db.Delete(&models.ActiveSession{}, id).Error
}
