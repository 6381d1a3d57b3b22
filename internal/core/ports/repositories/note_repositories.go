package repositories

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// NoteRepository persists notes and their ordered blocks. Single-row lookups
// are constrained to (note_id, owner_id); block order is persisted via the
// position column and reads return blocks sorted by it.
type NoteRepository interface {
	// SaveNote inserts the note and its blocks in one transaction.
	SaveNote(ctx context.Context, note domain.Note) error
	FindNoteByID(ctx context.Context, noteID string, ownerID string) (*domain.Note, error)
	// ListNotes returns the owner's notes with blocks, most recently updated first.
	ListNotes(ctx context.Context, ownerID string, status *domain.NoteStatus) ([]domain.Note, error)
	// UpdateNote updates the note row; when replaceBlocks is set, all stored
	// blocks are discarded and note.Blocks inserted in their place, inside the
	// same transaction. Blocks are never merged.
	UpdateNote(ctx context.Context, note domain.Note, replaceBlocks bool) error
	DeleteNote(ctx context.Context, noteID string, ownerID string) error
}
