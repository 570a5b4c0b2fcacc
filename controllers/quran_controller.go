package controllers

import (
	"net/http"

	"github.com/Asif-Uchchas/qalby/services"

	"github.com/gin-gonic/gin"
)

type QuranController struct {
	Svc   *services.QuranService
	Users *services.UserService
	Hub   *services.RealtimeHub
}

func NewQuranController(svc *services.QuranService, users *services.UserService, hub *services.RealtimeHub) *QuranController {
	return &QuranController{Svc: svc, Users: users, Hub: hub}
}

func (h *QuranController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today := h.Users.Today(c.Request.Context(), userID)
	overview, err := h.Svc.Overview(c.Request.Context(), userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch progress"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *QuranController) MarkJuz(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		JuzNumber *int `json:"juzNumber"`
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.JuzNumber == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing juzNumber"})
		return
	}
	if *input.JuzNumber < 1 || *input.JuzNumber > services.TotalJuz {
		c.JSON(http.StatusBadRequest, gin.H{"error": "juzNumber must be between 1 and 30"})
		return
	}

	today := h.Users.Today(c.Request.Context(), userID)
	if err := h.Svc.MarkJuz(c.Request.Context(), userID, *input.JuzNumber, input.Completed, today); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle juz"})
		return
	}

	h.Hub.BroadcastProgress(userID, "quran", today)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *QuranController) SetPages(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Pages *int `json:"pages"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Pages == nil || *input.Pages < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pages must be a non-negative number"})
		return
	}

	today := h.Users.Today(c.Request.Context(), userID)
	if err := h.Svc.SetPages(c.Request.Context(), userID, today, *input.Pages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update pages"})
		return
	}

	h.Hub.BroadcastProgress(userID, "quran", today)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
