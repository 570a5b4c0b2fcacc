package controllers

import (
	"net/http"

	"github.com/Asif-Uchchas/qalby/services"

	"github.com/gin-gonic/gin"
)

type DailyLogController struct {
	Svc   *services.DailyLogService
	Users *services.UserService
	Hub   *services.RealtimeHub
}

func NewDailyLogController(svc *services.DailyLogService, users *services.UserService, hub *services.RealtimeHub) *DailyLogController {
	return &DailyLogController{Svc: svc, Users: users, Hub: hub}
}

func (h *DailyLogController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, ok := resolveDate(c, h.Users, c.Query("date"), userID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	row, err := h.Svc.Get(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch log"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *DailyLogController) Upsert(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.DailyLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Mood != nil && !input.Mood.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mood"})
		return
	}
	if input.Energy != nil && (*input.Energy < 1 || *input.Energy > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "energy must be between 1 and 5"})
		return
	}

	date, ok := resolveDate(c, h.Users, input.Date, userID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}
	input.Date = date

	row, err := h.Svc.Upsert(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update log"})
		return
	}

	h.Hub.BroadcastProgress(userID, "daily-log", date)
	c.JSON(http.StatusOK, row)
}
