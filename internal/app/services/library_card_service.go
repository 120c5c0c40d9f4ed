package services

import (
	"context"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/validation"
)

// LibraryCardService defines the interface for library card operations
type LibraryCardService interface {
	CreateLibraryCard(ctx context.Context, cardNumber string, studentID int64) (*models.LibraryCard, error)
	GetLibraryCardByID(ctx context.Context, id int64) (*models.LibraryCard, error)
	GetAllLibraryCards(ctx context.Context) ([]*models.LibraryCard, error)
	UpdateLibraryCard(ctx context.Context, id int64, params UpdateLibraryCardParams) (*models.LibraryCard, error)
	DeleteLibraryCard(ctx context.Context, id int64) error
}

// UpdateLibraryCardParams carries the optional fields of a library card
// patch.
type UpdateLibraryCardParams struct {
	CardNumber *string
	StudentID  *int64
}

// libraryCardServiceImpl implements the LibraryCardService interface
type libraryCardServiceImpl struct {
	cardStore    LibraryCardStore
	studentStore StudentStore
}

// NewLibraryCardService creates a new library card service instance
func NewLibraryCardService(cardStore LibraryCardStore, studentStore StudentStore) LibraryCardService {
	return &libraryCardServiceImpl{
		cardStore:    cardStore,
		studentStore: studentStore,
	}
}

func validateCardNumber(cardNumber string) error {
	ok := validation.NewStringValidation(cardNumber).
		WithMinLength(validation.CardNumberMinLength).
		WithMaxLength(validation.CardNumberMaxLength).
		WithPattern(validation.CompiledPatterns.CardNumber).
		Validate()
	if !ok {
		return apperrors.NewValidation(apperrors.FieldError{
			Field:   "cardNumber",
			Message: "Card number must be 4 to 20 digits",
		})
	}
	return nil
}

// CreateLibraryCard issues a card to a student. The duplicate-number check
// runs before the student lookup; a student may hold at most one card.
func (s *libraryCardServiceImpl) CreateLibraryCard(ctx context.Context, cardNumber string, studentID int64) (*models.LibraryCard, error) {
	if err := validateCardNumber(cardNumber); err != nil {
		return nil, err
	}

	taken, err := s.cardStore.CardNumberExists(ctx, cardNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflict("Library card with card number %s already exist", cardNumber)
	}

	exists, err := s.studentStore.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("student with id %d was not found", studentID)
	}

	hasCard, err := s.cardStore.StudentHasCard(ctx, studentID, 0)
	if err != nil {
		return nil, err
	}
	if hasCard {
		return nil, apperrors.NewConflict("Student with id %d already has a library card", studentID)
	}

	card := &models.LibraryCard{CardNumber: cardNumber, StudentID: studentID}
	if err := s.cardStore.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// GetLibraryCardByID retrieves a library card by ID
func (s *libraryCardServiceImpl) GetLibraryCardByID(ctx context.Context, id int64) (*models.LibraryCard, error) {
	return s.cardStore.GetByID(ctx, id)
}

// GetAllLibraryCards retrieves all library cards
func (s *libraryCardServiceImpl) GetAllLibraryCards(ctx context.Context) ([]*models.LibraryCard, error) {
	return s.cardStore.GetAll(ctx)
}

// UpdateLibraryCard applies a sparse patch. Reassigning the card to another
// student re-checks both that the student exists and that they do not
// already hold a card.
func (s *libraryCardServiceImpl) UpdateLibraryCard(ctx context.Context, id int64, params UpdateLibraryCardParams) (*models.LibraryCard, error) {
	card, err := s.cardStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false

	if params.CardNumber != nil && *params.CardNumber != card.CardNumber {
		if err := validateCardNumber(*params.CardNumber); err != nil {
			return nil, err
		}
		taken, err := s.cardStore.CardNumberExists(ctx, *params.CardNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflict("Library card with card number %s already exist", *params.CardNumber)
		}
		card.CardNumber = *params.CardNumber
		changed = true
	}

	if params.StudentID != nil && *params.StudentID != card.StudentID {
		exists, err := s.studentStore.ExistsByID(ctx, *params.StudentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFound("student with id %d was not found", *params.StudentID)
		}
		hasCard, err := s.cardStore.StudentHasCard(ctx, *params.StudentID, id)
		if err != nil {
			return nil, err
		}
		if hasCard {
			return nil, apperrors.NewConflict("Student with id %d already has a library card", *params.StudentID)
		}
		card.StudentID = *params.StudentID
		changed = true
	}

	if changed {
		if err := s.cardStore.Update(ctx, card); err != nil {
			return nil, err
		}
	}

	return card, nil
}

// DeleteLibraryCard removes a library card. Cards have no dependents, so
// there is no cascade.
func (s *libraryCardServiceImpl) DeleteLibraryCard(ctx context.Context, id int64) error {
	return s.cardStore.Delete(ctx, id)
}
