package controllers

import (
	"github.com/Asif-Uchchas/qalby/services"
	"github.com/Asif-Uchchas/qalby/utils"

	"github.com/gin-gonic/gin"
)

// userIDFromCtx pulls the authenticated user id set by the auth middleware.
func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	case float64:
		return uint(id), true
	default:
		return 0, false
	}
}

// resolveDate picks the request's explicit date when present and valid,
// otherwise "today" in the user's timezone. The bool result is false for a
// malformed explicit date.
func resolveDate(c *gin.Context, users *services.UserService, explicit string, userID uint) (string, bool) {
	if explicit != "" {
		if !utils.ValidDay(explicit) {
			return "", false
		}
		return explicit, true
	}
	return users.Today(c.Request.Context(), userID), true
}
