package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/beatburn/server/internal/models"
)

type fakeChatRepository struct {
	messages []models.ChatMessage
	nextID   uint
	pairErr  error
}

func (repo *fakeChatRepository) Create(message *models.ChatMessage) error {
	repo.nextID++
	message.ID = repo.nextID
	repo.messages = append(repo.messages, *message)
	return nil
}

// CreatePair mimics the transactional repository: on failure neither
// message is stored.
func (repo *fakeChatRepository) CreatePair(question *models.ChatMessage, reply *models.ChatMessage) error {
	if repo.pairErr != nil {
		return repo.pairErr
	}
	if err := repo.Create(question); err != nil {
		return err
	}
	return repo.Create(reply)
}

func (repo *fakeChatRepository) ListByUserAsc(userID uint) ([]models.ChatMessage, error) {
	result := make([]models.ChatMessage, 0)
	for _, message := range repo.messages {
		if message.UserID == userID {
			result = append(result, message)
		}
	}
	return result, nil
}

func TestAskStoresQuestionAndReply(t *testing.T) {
	repo := &fakeChatRepository{}
	service := NewChatService(repo)

	exchange, err := service.Ask(1, "What should I eat after dancing?", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exchange) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(exchange))
	}
	if exchange[0].Sender != models.SenderUser {
		t.Fatalf("expected first message from user, got %s", exchange[0].Sender)
	}
	if exchange[1].Sender != models.SenderBot {
		t.Fatalf("expected second message from bot, got %s", exchange[1].Sender)
	}
	if !exchange[1].Timestamp.After(exchange[0].Timestamp) {
		t.Fatal("expected bot reply to be timestamped after the question")
	}

	history, err := service.History(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 stored messages, got %d", len(history))
	}
}

func TestAskFailedWriteStoresNothing(t *testing.T) {
	repo := &fakeChatRepository{pairErr: errors.New("disk full")}
	service := NewChatService(repo)

	if _, err := service.Ask(1, "any advice?", time.Now()); err == nil {
		t.Fatal("expected error from failed write")
	}

	// A question must never be stored without its reply.
	history, err := service.History(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(history))
	}
}

func TestAppendRejectsUnknownSender(t *testing.T) {
	service := NewChatService(&fakeChatRepository{})

	_, err := service.Append(NewChatMessageInput{UserID: 1, Content: "hi", Sender: "system"}, time.Now())
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBotReplyKeywordRouting(t *testing.T) {
	cases := []struct {
		question string
		section  string
	}{
		{"What should I eat for lunch?", "[Diet Tips]"},
		{"Give me a dance workout", "[Workout Plan]"},
		{"How is my calorie goal computed?", "[Advice]"},
		{"Am I making progress on my weight?", "[Advice]"},
		{"hello there", "[Advice]"},
	}
	for _, tc := range cases {
		reply := BotReply(tc.question)
		if !strings.HasPrefix(reply, tc.section) {
			t.Fatalf("BotReply(%q): expected section %s, got %q", tc.question, tc.section, reply)
		}
	}
}
