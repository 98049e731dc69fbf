// Package tracker implements the session lifecycle state machine and the
// category registry on top of the store. All mutations run inside a single
// store transaction so readers never observe a half-applied transition.
package tracker

import (
	"fmt"
	"math"
	"time"

	"timekeep/internal/db"
	"timekeep/internal/models"
)

// Service exposes the tracking operations to the presentation layer
type Service struct {
	store *db.Store
	now   func() time.Time
}

// New creates a tracker service over the given store
func New(store *db.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Start begins tracking time. categoryID may be nil for "no category".
// Fails with ConflictError when a session is already running.
func (s *Service) Start(categoryID *uint) (*models.ActiveSession, error) {
	err := s.store.Transaction(func(tx *db.Store) error {
		existing, err := tx.GetActiveSession()
		if err != nil {
			return err
		}
		if existing != nil {
			return &ConflictError{Reason: "session already running"}
		}

		if categoryID != nil {
			if _, err := tx.GetCategory(*categoryID); err != nil {
				if db.IsNotFound(err) {
					return &NotFoundError{Reason: fmt.Sprintf("category #%d not found", *categoryID)}
				}
				return err
			}
		}

		return tx.CreateActiveSession(&models.ActiveSession{
			CategoryID: categoryID,
			StartedAt:  s.now(),
		})
	})
	if err != nil {
		return nil, err
	}

	// Reload so the category relationship is populated
	return s.store.GetActiveSession()
}

// Stop finishes the running session and converts it into exactly one
// completed session record. The creation and the removal of the active
// session commit as one transaction. Fails with NotFoundError when
// nothing is running.
func (s *Service) Stop() (*models.Session, error) {
	var session *models.Session

	err := s.store.Transaction(func(tx *db.Store) error {
		active, err := tx.GetActiveSession()
		if err != nil {
			return err
		}
		if active == nil {
			return &NotFoundError{Reason: "no active session"}
		}

		now := s.now()
		durationSec := int(now.Sub(active.StartedAt).Milliseconds() / 1000)
		if durationSec < 0 {
			durationSec = 0
		}

		session = &models.Session{
			CategoryID:      active.CategoryID,
			StartedAt:       active.StartedAt,
			EndedAt:         now,
			DurationSeconds: durationSec,
		}
		if err := tx.CreateSession(session); err != nil {
			return err
		}
		return tx.DeleteActiveSession(active.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.store.GetSession(session.ID)
}

// Status returns the running session and its elapsed time, or nil when
// nothing is being tracked
func (s *Service) Status() (*models.ActiveSession, time.Duration, error) {
	active, err := s.store.GetActiveSession()
	if err != nil {
		return nil, 0, err
	}
	if active == nil {
		return nil, 0, nil
	}
	return active, s.now().Sub(active.StartedAt), nil
}

// OptionalCategory carries a category edit. Set distinguishes "leave the
// category unchanged" from "set it", where a nil ID means "no category".
type OptionalCategory struct {
	Set bool
	ID  *uint
}

// EditSessionRequest holds the editable session fields. Nil pointers mean
// the field keeps its current value.
type EditSessionRequest struct {
	DurationMinutes *float64
	Category        OptionalCategory
	StartedAt       *time.Time
}

// EditSession updates a completed session. The end time is always
// re-derived as start + duration, so shifting the start moves the end by
// the same amount and changing the duration only moves the end.
func (s *Service) EditSession(id uint, req EditSessionRequest) (*models.Session, error) {
	if req.DurationMinutes != nil && *req.DurationMinutes < 0 {
		return nil, &ValidationError{Reason: "duration must not be negative"}
	}

	err := s.store.Transaction(func(tx *db.Store) error {
		session, err := tx.GetSession(id)
		if err != nil {
			if db.IsNotFound(err) {
				return &NotFoundError{Reason: fmt.Sprintf("session #%d not found", id)}
			}
			return err
		}

		if req.DurationMinutes != nil {
			session.DurationSeconds = int(math.Round(*req.DurationMinutes * 60))
		}
		if req.StartedAt != nil {
			session.StartedAt = *req.StartedAt
		}
		if req.Category.Set {
			if req.Category.ID != nil {
				if _, err := tx.GetCategory(*req.Category.ID); err != nil {
					if db.IsNotFound(err) {
						return &NotFoundError{Reason: fmt.Sprintf("category #%d not found", *req.Category.ID)}
					}
					return err
				}
			}
			session.CategoryID = req.Category.ID
		}
		session.EndedAt = session.StartedAt.Add(time.Duration(session.DurationSeconds) * time.Second)

		// Drop the preloaded relationship so Save only writes the row
		session.Category = nil
		return tx.SaveSession(session)
	})
	if err != nil {
		return nil, err
	}

	return s.store.GetSession(id)
}

// DeleteSession removes a completed session unconditionally
func (s *Service) DeleteSession(id uint) error {
	err := s.store.DeleteSession(id)
	if db.IsNotFound(err) {
		return &NotFoundError{Reason: fmt.Sprintf("session #%d not found", id)}
	}
	return err
}

// ListSessions returns the full session history, newest first
func (s *Service) ListSessions() ([]models.Session, error) {
	return s.store.ListSessions()
}
