package controllers

import (
	"errors"
	"net/http"

	"github.com/Asif-Uchchas/qalby/services"
	"github.com/Asif-Uchchas/qalby/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GoalController struct {
	Svc   *services.GoalService
	Users *services.UserService
}

func NewGoalController(svc *services.GoalService, users *services.UserService) *GoalController {
	return &GoalController{Svc: svc, Users: users}
}

func (h *GoalController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today := h.Users.Today(c.Request.Context(), userID)
	goals, err := h.Svc.List(c.Request.Context(), userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch goals"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == "" || input.StartDate == "" || input.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !utils.ValidDay(input.StartDate) || !utils.ValidDay(input.EndDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	goal, err := h.Svc.Create(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create goal"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpsertEntry checks a goal off for a day. Completed defaults to true so a
// bare {goalId} marks today done.
func (h *GoalController) UpsertEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		GoalID    uint   `json:"goalId"`
		Date      string `json:"date"`
		Completed *bool  `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.GoalID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing goalId"})
		return
	}

	date, ok := resolveDate(c, h.Users, input.Date, userID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	completed := true
	if input.Completed != nil {
		completed = *input.Completed
	}

	err := h.Svc.UpsertEntry(c.Request.Context(), userID, input.GoalID, date, completed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update goal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
