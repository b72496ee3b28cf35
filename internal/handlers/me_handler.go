package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handykonnect/handykonnect-api/internal/middleware"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        profile.ID,
			"full_name": profile.FullName,
			"email":     profile.Email,
			"role":      profile.Role,
		},
	})
}
