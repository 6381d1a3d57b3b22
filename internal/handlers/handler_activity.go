package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// ActivityHandler serves the read-only activity feed.
type ActivityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(activityService portssvc.ActivitySvcFacade) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities returns the caller's newest activity entries.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var params dto.ListActivitiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activities, err := h.activityService.ListRecent(c.Request.Context(), ownerID, params.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListActivityResponse(activities))
}
