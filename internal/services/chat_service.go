package services

import (
	"time"

	"github.com/beatburn/server/internal/models"
)

type ChatMessageRepository interface {
	Create(message *models.ChatMessage) error
	CreatePair(question *models.ChatMessage, reply *models.ChatMessage) error
	ListByUserAsc(userID uint) ([]models.ChatMessage, error)
}

type ChatService struct {
	messages ChatMessageRepository
}

func NewChatService(messages ChatMessageRepository) *ChatService {
	return &ChatService{messages: messages}
}

type NewChatMessageInput struct {
	UserID  uint   `json:"userId" validate:"required"`
	Content string `json:"content" validate:"required"`
	Sender  string `json:"sender" validate:"required,oneof=user bot"`
}

func (service *ChatService) Append(input NewChatMessageInput, now time.Time) (models.ChatMessage, error) {
	if err := validateStruct(input); err != nil {
		return models.ChatMessage{}, err
	}

	message := models.ChatMessage{
		UserID:    input.UserID,
		Content:   input.Content,
		Sender:    input.Sender,
		Timestamp: now,
	}
	if err := service.messages.Create(&message); err != nil {
		return models.ChatMessage{}, err
	}
	return message, nil
}

func (service *ChatService) History(userID uint) ([]models.ChatMessage, error) {
	return service.messages.ListByUserAsc(userID)
}

// Ask stores the user's question and a generated bot reply as two
// consecutive messages, returning both in order. Both rows go through one
// repository write, so a question is never stored without its reply.
func (service *ChatService) Ask(userID uint, question string, now time.Time) ([]models.ChatMessage, error) {
	if err := validateStruct(NewChatMessageInput{
		UserID:  userID,
		Content: question,
		Sender:  models.SenderUser,
	}); err != nil {
		return nil, err
	}

	userMessage := models.ChatMessage{
		UserID:    userID,
		Content:   question,
		Sender:    models.SenderUser,
		Timestamp: now,
	}
	botMessage := models.ChatMessage{
		UserID:    userID,
		Content:   BotReply(question),
		Sender:    models.SenderBot,
		Timestamp: now.Add(time.Millisecond),
	}
	if err := service.messages.CreatePair(&userMessage, &botMessage); err != nil {
		return nil, err
	}

	return []models.ChatMessage{userMessage, botMessage}, nil
}
