package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

type noteService struct {
	BaseService
	noteRepo portsrepo.NoteRepository
	recorder portssvc.ActivityRecorderSvc
}

// NewNoteService creates a NoteSvcFacade.
func NewNoteService(noteRepo portsrepo.NoteRepository, recorder portssvc.ActivityRecorderSvc) portssvc.NoteSvcFacade {
	return &noteService{noteRepo: noteRepo, recorder: recorder}
}

var _ portssvc.NoteSvcFacade = (*noteService)(nil)

// buildBlocks validates payload blocks and assigns ids and positions from
// the array order.
func buildBlocks(noteID string, payloads []dto.BlockPayload) ([]domain.NoteBlock, error) {
	blocks := make([]domain.NoteBlock, 0, len(payloads))
	for i, payload := range payloads {
		content, err := domain.ParseBlockContent(payload.Type, payload.Content)
		if err != nil {
			return nil, fmt.Errorf("block %d: %s: %w", i, err.Error(), apperrors.ErrValidation)
		}
		blocks = append(blocks, domain.NoteBlock{
			BlockID:  uuid.NewString(),
			NoteID:   noteID,
			Type:     payload.Type,
			Content:  content,
			Position: i,
		})
	}
	return blocks, nil
}

func (s *noteService) ListNotes(ctx context.Context, ownerID string, params dto.ListNotesParams) ([]domain.Note, error) {
	var status *domain.NoteStatus
	if params.Status != "" {
		st := domain.NoteStatus(params.Status)
		status = &st
	}
	return s.noteRepo.ListNotes(ctx, ownerID, status)
}

func (s *noteService) CreateNote(ctx context.Context, ownerID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	noteID := uuid.NewString()
	blocks, err := buildBlocks(noteID, req.Blocks)
	if err != nil {
		return nil, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	note := domain.Note{
		NoteID:  noteID,
		OwnerID: ownerID,
		Title:   req.Title,
		Tags:    tags,
		Status:  domain.NoteActive,
		Blocks:  blocks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		s.LogError(ctx, err, "failed to create note", "ownerID", ownerID)
		return nil, err
	}

	s.recorder.Record(ownerID, domain.ActivityNote, domain.ActionCreated,
		fmt.Sprintf("Created note: %s", note.Title),
		map[string]any{"noteId": note.NoteID})
	return &note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, ownerID string, req dto.UpdateNoteRequest) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, req.ID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Tags != nil {
		note.Tags = *req.Tags
		if note.Tags == nil {
			note.Tags = []string{}
		}
	}
	if req.Status != nil {
		note.Status = *req.Status
	}

	replaceBlocks := req.Blocks != nil
	if replaceBlocks {
		blocks, err := buildBlocks(note.NoteID, *req.Blocks)
		if err != nil {
			return nil, err
		}
		note.Blocks = blocks
	}
	note.LastUpdatedAt = time.Now().UTC()

	if err := s.noteRepo.UpdateNote(ctx, *note, replaceBlocks); err != nil {
		s.LogError(ctx, err, "failed to update note", "noteID", req.ID)
		return nil, err
	}

	s.recorder.Record(ownerID, domain.ActivityNote, domain.ActionUpdated,
		fmt.Sprintf("Updated note: %s", note.Title),
		map[string]any{"noteId": note.NoteID})
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, ownerID string, noteID string) error {
	// Fetch first so the activity entry can describe what was removed.
	note, err := s.noteRepo.FindNoteByID(ctx, noteID, ownerID)
	if err != nil {
		return err
	}
	if err := s.noteRepo.DeleteNote(ctx, noteID, ownerID); err != nil {
		return err
	}
	s.recorder.Record(ownerID, domain.ActivityNote, domain.ActionDeleted,
		fmt.Sprintf("Deleted note: %s", note.Title),
		map[string]any{"noteId": noteID})
	return nil
}
