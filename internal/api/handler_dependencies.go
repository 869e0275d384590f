package api

import (
	"github.com/beatburn/server/internal/db"
	"github.com/beatburn/server/internal/profile"
	"github.com/beatburn/server/internal/services"
	"github.com/beatburn/server/internal/session"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, sessions *session.Manager, profileStore *profile.Store) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		sessions:     sessions,
		profileStore: profileStore,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.profileService = services.NewProfileService(handler.repositories.Users)
	handler.activityService = services.NewActivityService(handler.repositories.Workouts)
	handler.nutritionService = services.NewNutritionService(handler.repositories.Meals)
	handler.progressService = services.NewProgressService(handler.repositories.Weights)
	handler.chatService = services.NewChatService(handler.repositories.Chats)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	return handler
}
