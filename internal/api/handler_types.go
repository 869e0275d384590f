package api

import (
	"time"

	"github.com/beatburn/server/internal/db"
	"github.com/beatburn/server/internal/profile"
	"github.com/beatburn/server/internal/services"
	"github.com/beatburn/server/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db        *gorm.DB
	secretKey []byte

	repositories *db.Repositories

	profileService   *services.ProfileService
	activityService  *services.ActivityService
	nutritionService *services.NutritionService
	progressService  *services.ProgressService
	chatService      *services.ChatService
	authService      *services.AuthService

	sessions     *session.Manager
	profileStore *profile.Store
}

const authTokenTTL = 7 * 24 * time.Hour

const contextUserKey = "current_user"

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
