/**
* Name: 			service.go
* Description: 		AI 브레인 코치 대화 릴레이
* Workflow: 		사용자 메시지 저장 -> 인지 프로필/최근 기록으로 시스템 프롬프트 구성 -> LLM 호출 -> 답변 저장
 */
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"BrainTrainer/internal/llm"
	"BrainTrainer/internal/logger"
	"BrainTrainer/internal/models"
)

var (
	ErrEmptyMessage   = errors.New("message is required")
	ErrMessageTooLong = errors.New("message is too long")
)

const (
	recentExercises = 5
	// longest accepted user message, in bytes
	maxMessageLength = 4000
)

type Store interface {
	AddChatMessage(ctx context.Context, userID string, role models.ChatRole, content string) (models.ChatMessage, error)
	ListChatMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error)
	GetCognitiveProfile(ctx context.Context, userID string) (models.CognitiveProfile, error)
	ListHistory(ctx context.Context, userID string, limit int) ([]models.ExerciseHistory, error)
}

// ChatModel is the LLM backend.
type ChatModel interface {
	Chat(ctx context.Context, messages []llm.Message) (string, error)
}

type Service struct {
	store Store
	model ChatModel
	log   *logger.Logger
}

func NewService(store Store, model ChatModel, log *logger.Logger) *Service {
	return &Service{store: store, model: model, log: log}
}

type userContext struct {
	CognitiveProfile *models.CognitiveProfile `json:"cognitiveProfile"`
	RecentExercises  []models.ExerciseHistory `json:"recentExercises"`
}

// Ask relays message to the coach and returns the saved reply.
func (s *Service) Ask(ctx context.Context, userID, message string) (models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}
	if len(message) > maxMessageLength {
		return models.ChatMessage{}, fmt.Errorf("%w: limit is %d bytes", ErrMessageTooLong, maxMessageLength)
	}

	if _, err := s.store.AddChatMessage(ctx, userID, models.RoleUser, message); err != nil {
		return models.ChatMessage{}, fmt.Errorf("save user message: %w", err)
	}

	system, err := s.systemPrompt(ctx, userID)
	if err != nil {
		return models.ChatMessage{}, err
	}

	reply, err := s.model.Chat(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: message},
	})
	if err != nil {
		s.log.Warn("coach request failed", "user_id", userID, "error", err)
		return models.ChatMessage{}, err
	}

	saved, err := s.store.AddChatMessage(ctx, userID, models.RoleAssistant, reply)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("save coach reply: %w", err)
	}
	return saved, nil
}

// History returns the latest messages of the conversation, oldest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	return s.store.ListChatMessages(ctx, userID, limit)
}

func (s *Service) systemPrompt(ctx context.Context, userID string) (string, error) {
	var uc userContext
	// 프로필이 없더라도 대화는 계속 진행
	if p, err := s.store.GetCognitiveProfile(ctx, userID); err == nil {
		uc.CognitiveProfile = &p
	} else {
		s.log.Debug("coach context without cognitive profile", "user_id", userID, "error", err)
	}
	history, err := s.store.ListHistory(ctx, userID, recentExercises)
	if err != nil {
		return "", fmt.Errorf("load recent exercises: %w", err)
	}
	uc.RecentExercises = history

	raw, err := json.Marshal(uc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(systemTemplate, raw), nil
}

const systemTemplate = `You are a helpful and supportive AI brain coach. Your goal is to help users improve their cognitive abilities through personalized advice, motivation, and brain exercise recommendations.

Here is information about the user:
%s

Be friendly, encouraging, and knowledgeable about neuroscience and cognitive training. Provide specific advice based on the user's cognitive profile and recent exercise history when relevant.`
