package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
)

func cardFixture(t *testing.T) (*fixture, int64, int64) {
	t.Helper()
	f := newFixture()
	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)
	alex := f.mustStudent(t, "Alex Johnson", "alex@example.com", cohort.ID)
	maria := f.mustStudent(t, "Maria Petrova", "maria@example.com", cohort.ID)
	return f, alex.ID, maria.ID
}

func TestCreateLibraryCard(t *testing.T) {
	f, alexID, _ := cardFixture(t)

	card := f.mustCard(t, "1001", alexID)
	if card.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if card.StudentID != alexID {
		t.Fatalf("expected owner %d, got %d", alexID, card.StudentID)
	}
}

func TestCreateLibraryCardDuplicateNumberWinsOverMissingStudent(t *testing.T) {
	f, alexID, _ := cardFixture(t)
	f.mustCard(t, "1001", alexID)

	_, err := f.cardService.CreateLibraryCard(context.Background(), "1001", 999)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "already exist") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestCreateLibraryCardMissingStudent(t *testing.T) {
	f, _, _ := cardFixture(t)

	_, err := f.cardService.CreateLibraryCard(context.Background(), "1001", 999)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCreateLibraryCardSecondCardForStudent(t *testing.T) {
	f, alexID, _ := cardFixture(t)
	f.mustCard(t, "1001", alexID)

	_, err := f.cardService.CreateLibraryCard(context.Background(), "1002", alexID)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected Conflict for a second card, got %v", err)
	}
}

func TestCreateLibraryCardNumberShape(t *testing.T) {
	f, alexID, _ := cardFixture(t)

	for _, number := range []string{"123", "12ab", strings.Repeat("9", 21), ""} {
		_, err := f.cardService.CreateLibraryCard(context.Background(), number, alexID)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("number %q: expected ValidationFailed, got %v", number, err)
		}
	}

	// 4 and 20 digits are the inclusive bounds.
	f.mustCard(t, "1234", alexID)
}

func TestUpdateLibraryCardReassignToCardHolder(t *testing.T) {
	f, alexID, mariaID := cardFixture(t)
	card := f.mustCard(t, "1001", alexID)
	f.mustCard(t, "1002", mariaID)

	_, err := f.cardService.UpdateLibraryCard(context.Background(), card.ID, UpdateLibraryCardParams{StudentID: &mariaID})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected Conflict when the target already holds a card, got %v", err)
	}
}

func TestUpdateLibraryCardSparsePatch(t *testing.T) {
	f, alexID, mariaID := cardFixture(t)
	card := f.mustCard(t, "1001", alexID)

	updated, err := f.cardService.UpdateLibraryCard(context.Background(), card.ID, UpdateLibraryCardParams{StudentID: &mariaID})
	if err != nil {
		t.Fatalf("UpdateLibraryCard failed: %v", err)
	}
	if updated.CardNumber != "1001" {
		t.Fatalf("omitted card number changed: %q", updated.CardNumber)
	}
	if updated.StudentID != mariaID {
		t.Fatalf("expected owner %d, got %d", mariaID, updated.StudentID)
	}
}

func TestDeleteLibraryCard(t *testing.T) {
	f, alexID, _ := cardFixture(t)
	card := f.mustCard(t, "1001", alexID)

	if err := f.cardService.DeleteLibraryCard(context.Background(), card.ID); err != nil {
		t.Fatalf("DeleteLibraryCard failed: %v", err)
	}
	if _, err := f.cardService.GetLibraryCardByID(context.Background(), card.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected deleted card to be gone, got %v", err)
	}
}
