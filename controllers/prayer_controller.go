package controllers

import (
	"net/http"

	"github.com/Asif-Uchchas/qalby/models"
	"github.com/Asif-Uchchas/qalby/services"

	"github.com/gin-gonic/gin"
)

type PrayerController struct {
	Svc   *services.PrayerService
	Users *services.UserService
	Hub   *services.RealtimeHub
}

func NewPrayerController(svc *services.PrayerService, users *services.UserService, hub *services.RealtimeHub) *PrayerController {
	return &PrayerController{Svc: svc, Users: users, Hub: hub}
}

// Get serves today's entries by default, or the sparse 30-day on-time
// history when ?type=history.
func (h *PrayerController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today := h.Users.Today(c.Request.Context(), userID)

	if c.Query("type") == "history" {
		points, err := h.Svc.History(c.Request.Context(), userID, today)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
			return
		}
		c.JSON(http.StatusOK, points)
		return
	}

	rows, err := h.Svc.ListForDay(c.Request.Context(), userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch prayers"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type prayerInput struct {
	Prayer    models.PrayerName   `json:"prayer"`
	Status    models.PrayerStatus `json:"status"`
	IsTarawih *bool               `json:"isTarawih"`
}

func (h *PrayerController) SetStatus(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input prayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Prayer == "" || input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing prayer or status"})
		return
	}
	if !input.Prayer.Valid() || !input.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prayer or status"})
		return
	}

	today := h.Users.Today(c.Request.Context(), userID)
	err := h.Svc.SetStatus(c.Request.Context(), userID, today, input.Prayer, input.Status, input.IsTarawih)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update prayer"})
		return
	}

	h.Hub.BroadcastProgress(userID, "prayers", today)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
