package db

import (
	"github.com/beatburn/server/internal/models"
	"gorm.io/gorm"
)

type ChatRepository struct {
	database *gorm.DB
}

func NewChatRepository(database *gorm.DB) *ChatRepository {
	return &ChatRepository{database: database}
}

func (repo *ChatRepository) Create(message *models.ChatMessage) error {
	return repo.database.Create(message).Error
}

// CreatePair inserts a question and its reply in one transaction, so a
// stored question can never be left without its reply.
func (repo *ChatRepository) CreatePair(question *models.ChatMessage, reply *models.ChatMessage) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return tx.Create(reply).Error
	})
}

func (repo *ChatRepository) ListByUserAsc(userID uint) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
