package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// NoteHandler serves note CRUD for the authenticated user.
type NoteHandler struct {
	noteService portssvc.NoteSvcFacade
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(noteService portssvc.NoteSvcFacade) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// ListNotes returns the caller's notes with their ordered blocks.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var params dto.ListNotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), ownerID, params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListNoteResponse(notes))
}

// CreateNote creates a note with its block list.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// UpdateNote merges the payload over the note named by its body id. A blocks
// array in the payload replaces the stored blocks wholesale.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// DeleteNote removes the note named by the id query parameter.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := requireQueryID(c)
	if !ok {
		return
	}
	if err := h.noteService.DeleteNote(c.Request.Context(), ownerID, id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
