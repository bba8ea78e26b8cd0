package services

import (
	"context"
	"log"
	"strings"

	"spars/gen/chatbot"
)

// ChatService implements the chatbot service endpoint, delegating to the
// underlying ChatbotService
type ChatService struct {
	bot *ChatbotService
}

// NewChatService creates a new chat service
func NewChatService(bot *ChatbotService) *ChatService {
	return &ChatService{bot: bot}
}

// Chat implements the chat method
func (s *ChatService) Chat(ctx context.Context, p *chatbot.ChatPayload) (*chatbot.Chatresult, error) {
	message := strings.TrimSpace(p.Message)
	if message == "" {
		return nil, ChatbotBadRequest("message is required")
	}
	log.Printf("[CHATBOT] Chat request: %d chars, %d history entries", len(message), len(p.ConversationHistory))

	history := make([]ChatTurn, 0, len(p.ConversationHistory))
	for _, e := range p.ConversationHistory {
		if e == nil {
			continue
		}
		history = append(history, ChatTurn{Role: e.Role, Content: e.Content})
	}

	reply := s.bot.Respond(ctx, message, history)
	return &chatbot.Chatresult{
		Response: reply,
		Success:  true,
	}, nil
}
