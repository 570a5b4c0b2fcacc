package controllers

import (
	"net/http"

	"github.com/Asif-Uchchas/qalby/services"

	"github.com/gin-gonic/gin"
)

type DhikrController struct {
	Svc   *services.DhikrService
	Users *services.UserService
	Hub   *services.RealtimeHub
}

func NewDhikrController(svc *services.DhikrService, users *services.UserService, hub *services.RealtimeHub) *DhikrController {
	return &DhikrController{Svc: svc, Users: users, Hub: hub}
}

func (h *DhikrController) Get(c *gin.Context) {
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

	rows, err := h.Svc.ListForDay(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sessions"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *DhikrController) Record(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Type   string `json:"type"`
		Count  *int   `json:"count"`
		Target *int   `json:"target"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Type == "" || input.Count == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing type or count"})
		return
	}
	if *input.Count < 0 || (input.Target != nil && *input.Target <= 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count and target must be positive"})
		return
	}

	today := h.Users.Today(c.Request.Context(), userID)
	if _, err := h.Svc.Record(c.Request.Context(), userID, today, input.Type, *input.Count, input.Target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update dhikr"})
		return
	}

	h.Hub.BroadcastProgress(userID, "dhikr", today)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
