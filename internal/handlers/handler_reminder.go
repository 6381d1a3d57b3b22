package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// ReminderHandler serves reminder CRUD for the authenticated user.
type ReminderHandler struct {
	reminderService portssvc.ReminderSvcFacade
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(reminderService portssvc.ReminderSvcFacade) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// ListReminders returns the caller's reminders, soonest due first.
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var params dto.ListRemindersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminders, err := h.reminderService.ListReminders(c.Request.Context(), ownerID, params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListReminderResponse(reminders))
}

// CreateReminder creates a reminder; priority defaults to MEDIUM.
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToReminderResponse(reminder))
}

// UpdateReminder merges the payload over the reminder named by its body id.
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.reminderService.UpdateReminder(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReminderResponse(reminder))
}

// DeleteReminder removes the reminder named by the id query parameter.
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := requireQueryID(c)
	if !ok {
		return
	}
	if err := h.reminderService.DeleteReminder(c.Request.Context(), ownerID, id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
