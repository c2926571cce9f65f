package repository

import (
	"context"

	"github.com/vytor/studybananas/internal/models"
)

// Every repository stores one whole collection. Save replaces the stored
// snapshot atomically; Load returns it in insertion order.

// ContactRepository handles address book data access
type ContactRepository interface {
	Load(ctx context.Context) ([]models.Contact, error)
	Save(ctx context.Context, contacts []models.Contact) error
}

// TaskRepository handles schedule data access
type TaskRepository interface {
	Load(ctx context.Context) ([]models.Task, error)
	Save(ctx context.Context, tasks []models.Task) error
}

// FlashcardRepository handles flashcard bank data access
type FlashcardRepository interface {
	Load(ctx context.Context) ([]*models.FlashcardSet, error)
	Save(ctx context.Context, sets []*models.FlashcardSet) error
}
