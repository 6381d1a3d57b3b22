package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
)

type PgxNoteRepository struct {
	db *pgxpool.Pool
}

func newPgxNoteRepository(db *pgxpool.Pool) portsrepo.NoteRepository {
	return &PgxNoteRepository{db: db}
}

var _ portsrepo.NoteRepository = (*PgxNoteRepository)(nil)

const noteBlockInsert = `
    INSERT INTO note_blocks (block_id, note_id, type, content, position)
    VALUES ($1, $2, $3, $4, $5);
`

func insertBlocks(ctx context.Context, tx pgx.Tx, noteID string, blocks []domain.NoteBlock) error {
	for _, block := range blocks {
		content, err := domain.MarshalBlockContent(block.Content)
		if err != nil {
			return fmt.Errorf("failed to marshal block content: %w", err)
		}
		if _, err := tx.Exec(ctx, noteBlockInsert, block.BlockID, noteID, block.Type, content, block.Position); err != nil {
			return fmt.Errorf("failed to insert note block %s: %w", block.BlockID, err)
		}
	}
	return nil
}

func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO notes (note_id, owner_id, title, status, tags, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err = tx.Exec(ctx, query,
		note.NoteID,
		note.OwnerID,
		note.Title,
		note.Status,
		note.Tags,
		note.CreatedAt,
		note.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save note %s: %w", note.NoteID, err)
	}
	if err := insertBlocks(ctx, tx, note.NoteID, note.Blocks); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PgxNoteRepository) FindNoteByID(ctx context.Context, noteID string, ownerID string) (*domain.Note, error) {
	query := `
        SELECT note_id, owner_id, title, status, tags, created_at, last_updated_at
        FROM notes
        WHERE note_id = $1 AND owner_id = $2;
    `
	var note domain.Note
	err := r.db.QueryRow(ctx, query, noteID, ownerID).Scan(
		&note.NoteID,
		&note.OwnerID,
		&note.Title,
		&note.Status,
		&note.Tags,
		&note.CreatedAt,
		&note.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note by ID %s: %w", noteID, err)
	}

	blocksByNote, err := r.fetchBlocks(ctx, []string{note.NoteID})
	if err != nil {
		return nil, err
	}
	note.Blocks = blocksByNote[note.NoteID]
	if note.Blocks == nil {
		note.Blocks = []domain.NoteBlock{}
	}
	return &note, nil
}

func (r *PgxNoteRepository) ListNotes(ctx context.Context, ownerID string, status *domain.NoteStatus) ([]domain.Note, error) {
	query := `
        SELECT note_id, owner_id, title, status, tags, created_at, last_updated_at
        FROM notes
        WHERE owner_id = $1
    `
	args := []any{ownerID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY last_updated_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	noteIDs := []string{}
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(
			&note.NoteID,
			&note.OwnerID,
			&note.Title,
			&note.Status,
			&note.Tags,
			&note.CreatedAt,
			&note.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, note)
		noteIDs = append(noteIDs, note.NoteID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", rows.Err())
	}
	if len(notes) == 0 {
		return notes, nil
	}

	blocksByNote, err := r.fetchBlocks(ctx, noteIDs)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		notes[i].Blocks = blocksByNote[notes[i].NoteID]
		if notes[i].Blocks == nil {
			notes[i].Blocks = []domain.NoteBlock{}
		}
	}
	return notes, nil
}

// fetchBlocks loads blocks for the given notes keyed by note ID, ordered by
// position within each note.
func (r *PgxNoteRepository) fetchBlocks(ctx context.Context, noteIDs []string) (map[string][]domain.NoteBlock, error) {
	query := `
        SELECT block_id, note_id, type, content, position
        FROM note_blocks
        WHERE note_id = ANY($1)
        ORDER BY note_id, position ASC;
    `
	rows, err := r.db.Query(ctx, query, noteIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query note blocks: %w", err)
	}
	defer rows.Close()

	blocksByNote := map[string][]domain.NoteBlock{}
	for rows.Next() {
		var block domain.NoteBlock
		var raw json.RawMessage
		if err := rows.Scan(&block.BlockID, &block.NoteID, &block.Type, &raw, &block.Position); err != nil {
			return nil, fmt.Errorf("failed to scan note block row: %w", err)
		}
		content, err := domain.ParseBlockContent(block.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse block content for %s: %w", block.BlockID, err)
		}
		block.Content = content
		blocksByNote[block.NoteID] = append(blocksByNote[block.NoteID], block)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating note block rows: %w", rows.Err())
	}
	return blocksByNote, nil
}

// UpdateNote rewrites the note row and, when replaceBlocks is set, swaps the
// entire block list inside the same transaction.
func (r *PgxNoteRepository) UpdateNote(ctx context.Context, note domain.Note, replaceBlocks bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        UPDATE notes
        SET title = $1, status = $2, tags = $3, last_updated_at = $4
        WHERE note_id = $5 AND owner_id = $6;
    `
	cmdTag, err := tx.Exec(ctx, query,
		note.Title,
		note.Status,
		note.Tags,
		note.LastUpdatedAt,
		note.NoteID,
		note.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", note.NoteID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if replaceBlocks {
		if _, err := tx.Exec(ctx, `DELETE FROM note_blocks WHERE note_id = $1;`, note.NoteID); err != nil {
			return fmt.Errorf("failed to clear note blocks for %s: %w", note.NoteID, err)
		}
		if err := insertBlocks(ctx, tx, note.NoteID, note.Blocks); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PgxNoteRepository) DeleteNote(ctx context.Context, noteID string, ownerID string) error {
	// note_blocks rows go with the note via ON DELETE CASCADE.
	query := `DELETE FROM notes WHERE note_id = $1 AND owner_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", noteID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
