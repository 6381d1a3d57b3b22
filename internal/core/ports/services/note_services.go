package services

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// NoteSvcFacade orchestrates note CRUD. A block list supplied on update
// replaces the stored list wholesale; partial block edits are not supported.
type NoteSvcFacade interface {
	ListNotes(ctx context.Context, ownerID string, params dto.ListNotesParams) ([]domain.Note, error)
	CreateNote(ctx context.Context, ownerID string, req dto.CreateNoteRequest) (*domain.Note, error)
	UpdateNote(ctx context.Context, ownerID string, req dto.UpdateNoteRequest) (*domain.Note, error)
	DeleteNote(ctx context.Context, ownerID string, noteID string) error
}
