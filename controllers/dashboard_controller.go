package controllers

import (
	"net/http"

	"github.com/Asif-Uchchas/qalby/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc   *services.DashboardService
	Users *services.UserService
}

func NewDashboardController(svc *services.DashboardService, users *services.UserService) *DashboardController {
	return &DashboardController{Svc: svc, Users: users}
}

func (h *DashboardController) Summary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today := h.Users.Today(c.Request.Context(), userID)
	summary, err := h.Svc.Summary(c.Request.Context(), userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
