package controllers

import (
	"net/http"

	"github.com/Asif-Uchchas/qalby/services"

	"github.com/gin-gonic/gin"
)

type DuaController struct {
	Svc *services.DuaService
}

func NewDuaController(svc *services.DuaService) *DuaController {
	return &DuaController{Svc: svc}
}

func (h *DuaController) ListFavorites(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ids, err := h.Svc.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch favorites"})
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *DuaController) ToggleFavorite(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		DuaID string `json:"duaId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.DuaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing duaId"})
		return
	}

	favorite, err := h.Svc.ToggleFavorite(c.Request.Context(), userID, input.DuaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}
