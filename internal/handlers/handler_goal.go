package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// GoalHandler serves goal CRUD for the authenticated user.
type GoalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(goalService portssvc.GoalSvcFacade) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// ListGoals returns the caller's goals with derived statuses.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	goals, err := h.goalService.ListGoals(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

// CreateGoal creates a goal with a zero current amount and SAFE status.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// UpdateGoal merges the payload over the goal named by its body id and
// re-derives its status.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// DeleteGoal removes the goal named by the id query parameter.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := requireQueryID(c)
	if !ok {
		return
	}
	if err := h.goalService.DeleteGoal(c.Request.Context(), ownerID, id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
