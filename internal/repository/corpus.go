package repository

import (
	"context"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// CorpusRepository exposes the read-only vocabulary list.
type CorpusRepository interface {
	All(ctx context.Context) ([]entity.VocabularyItem, error)
	// Get returns entity.ErrItemNotFound for unknown ids.
	Get(ctx context.Context, id string) (*entity.VocabularyItem, error)
}

// ListItemsQuery holds parameters for listing corpus items with their progress.
type ListItemsQuery struct {
	Pagination
	FilterOrder
}
