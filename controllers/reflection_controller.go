package controllers

import (
	"net/http"

	"github.com/Asif-Uchchas/qalby/services"

	"github.com/gin-gonic/gin"
)

type ReflectionController struct {
	Svc   *services.ReflectionService
	Users *services.UserService
}

func NewReflectionController(svc *services.ReflectionService, users *services.UserService) *ReflectionController {
	return &ReflectionController{Svc: svc, Users: users}
}

func (h *ReflectionController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := c.Query("date")
	if date != "" {
		var valid bool
		if date, valid = resolveDate(c, h.Users, date, userID); !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
	}
	weeklyOnly := c.Query("weekly") == "true"

	rows, err := h.Svc.List(c.Request.Context(), userID, date, weeklyOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reflections"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReflectionController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Date     string `json:"date"`
		Content  string `json:"content"`
		IsWeekly bool   `json:"isWeekly"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing content"})
		return
	}

	date, ok := resolveDate(c, h.Users, input.Date, userID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	row, err := h.Svc.Create(c.Request.Context(), userID, date, input.Content, input.IsWeekly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reflection"})
		return
	}
	c.JSON(http.StatusCreated, row)
}
