package dto

import (
	"encoding/json"
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// BlockPayload is one block of a note create/update body. Content is decoded
// against the variant named by Type; unknown types are rejected.
type BlockPayload struct {
	Type    domain.BlockType `json:"type" binding:"required,oneof=TEXT CHECKLIST TABLE"`
	Content json.RawMessage  `json:"content" binding:"required"`
}

// CreateNoteRequest defines the data needed to create a note.
type CreateNoteRequest struct {
	Title  string         `json:"title" binding:"required"`
	Tags   []string       `json:"tags"`
	Blocks []BlockPayload `json:"blocks" binding:"omitempty,dive"`
}

// UpdateNoteRequest merges over an existing note. A non-nil Blocks slice
// replaces the entire stored block list; callers always resend the full list.
type UpdateNoteRequest struct {
	ID     string             `json:"id" binding:"required"`
	Title  *string            `json:"title"`
	Tags   *[]string          `json:"tags"`
	Status *domain.NoteStatus `json:"status" binding:"omitempty,oneof=ACTIVE ARCHIVED"`
	Blocks *[]BlockPayload    `json:"blocks" binding:"omitempty,dive"`
}

// ListNotesParams defines query parameters for listing notes.
type ListNotesParams struct {
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE ARCHIVED"`
}

// BlockResponse is one ordered block in a note response.
type BlockResponse struct {
	BlockID string           `json:"id"`
	Type    domain.BlockType `json:"type"`
	Content any              `json:"content"`
	Order   int              `json:"order"`
}

// NoteResponse mirrors domain.Note with its ordered blocks.
type NoteResponse struct {
	NoteID        string            `json:"id"`
	Title         string            `json:"title"`
	Tags          []string          `json:"tags"`
	Status        domain.NoteStatus `json:"status"`
	Blocks        []BlockResponse   `json:"blocks"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"updatedAt"`
}

// ToNoteResponse converts a domain.Note to its DTO.
func ToNoteResponse(note *domain.Note) NoteResponse {
	blocks := make([]BlockResponse, len(note.Blocks))
	for i, b := range note.Blocks {
		blocks[i] = BlockResponse{
			BlockID: b.BlockID,
			Type:    b.Type,
			Content: b.Content,
			Order:   b.Position,
		}
	}
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		NoteID:        note.NoteID,
		Title:         note.Title,
		Tags:          tags,
		Status:        note.Status,
		Blocks:        blocks,
		CreatedAt:     note.CreatedAt,
		LastUpdatedAt: note.LastUpdatedAt,
	}
}

// ToListNoteResponse converts a slice of notes.
func ToListNoteResponse(notes []domain.Note) []NoteResponse {
	res := make([]NoteResponse, len(notes))
	for i := range notes {
		res[i] = ToNoteResponse(&notes[i])
	}
	return res
}
