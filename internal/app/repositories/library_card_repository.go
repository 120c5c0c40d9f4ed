package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/dberrors"
	"github.com/caprinak/StudentManagement/internal/pkg/logger"
)

// LibraryCardRepository handles library card database operations
type LibraryCardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLibraryCardRepository creates a new LibraryCardRepository
func NewLibraryCardRepository(db *pgxpool.Pool) *LibraryCardRepository {
	return &LibraryCardRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a new library card and fills in its generated id. The
// card_number and student_id unique constraints both surface as Conflict.
func (r *LibraryCardRepository) Create(ctx context.Context, card *models.LibraryCard) error {
	sql, args, err := r.sb.Insert("library_card").
		Columns("card_number", "student_id").
		Values(card.CardNumber, card.StudentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create library card query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&card.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		logger.Error().Err(err).Msg("Error executing create library card query")
		return fmt.Errorf("error creating library card: %w", err)
	}

	return nil
}

// GetByID retrieves a library card by id.
func (r *LibraryCardRepository) GetByID(ctx context.Context, id int64) (*models.LibraryCard, error) {
	sql, args, err := r.sb.Select("id", "card_number", "student_id").
		From("library_card").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get library card query: %w", err)
	}

	card := &models.LibraryCard{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&card.ID, &card.CardNumber, &card.StudentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("library card with id %d was not found", id)
		}
		logger.Error().Err(err).Int64("cardID", id).Msg("Error scanning library card row")
		return nil, fmt.Errorf("error getting library card by id: %w", err)
	}

	return card, nil
}

// GetByStudentID retrieves the card owned by a student, if any.
func (r *LibraryCardRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.LibraryCard, error) {
	sql, args, err := r.sb.Select("id", "card_number", "student_id").
		From("library_card").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get library card by student query: %w", err)
	}

	card := &models.LibraryCard{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&card.ID, &card.CardNumber, &card.StudentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("library card for student %d was not found", studentID)
		}
		return nil, fmt.Errorf("error getting library card by student: %w", err)
	}

	return card, nil
}

// GetAll retrieves all library cards.
func (r *LibraryCardRepository) GetAll(ctx context.Context) ([]*models.LibraryCard, error) {
	sql, args, err := r.sb.Select("id", "card_number", "student_id").
		From("library_card").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list library cards query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing library cards: %w", err)
	}
	defer rows.Close()

	var cards []*models.LibraryCard
	for rows.Next() {
		card := &models.LibraryCard{}
		if err := rows.Scan(&card.ID, &card.CardNumber, &card.StudentID); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// CardNumberExists checks whether another card already uses the number.
func (r *LibraryCardRepository) CardNumberExists(ctx context.Context, cardNumber string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM library_card WHERE card_number = $1 AND id != $2)`,
		cardNumber, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking card number: %w", err)
	}
	return exists, nil
}

// StudentHasCard checks whether a student already owns a card other than the
// excluded one.
func (r *LibraryCardRepository) StudentHasCard(ctx context.Context, studentID, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM library_card WHERE student_id = $1 AND id != $2)`,
		studentID, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student card ownership: %w", err)
	}
	return exists, nil
}

// Update persists changed library card fields.
func (r *LibraryCardRepository) Update(ctx context.Context, card *models.LibraryCard) error {
	sql, args, err := r.sb.Update("library_card").
		Set("card_number", card.CardNumber).
		Set("student_id", card.StudentID).
		Where(squirrel.Eq{"id": card.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update library card query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		return fmt.Errorf("error updating library card: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("library card with id %d was not found", card.ID)
	}

	return nil
}

// Delete removes a library card row.
func (r *LibraryCardRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM library_card WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting library card: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("library card with id %d was not found", id)
	}

	return nil
}

// DeleteByStudentID removes a student's card if one exists. Deleting zero
// rows is not an error: a student without a card is a valid state.
func (r *LibraryCardRepository) DeleteByStudentID(ctx context.Context, studentID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM library_card WHERE student_id = $1`, studentID); err != nil {
		return fmt.Errorf("error deleting library card by student: %w", err)
	}
	return nil
}
