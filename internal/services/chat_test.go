package services

import (
	"context"
	"errors"
	"testing"

	goa "goa.design/goa/v3/pkg"

	"spars/gen/chatbot"
	"spars/internal/config"
)

func newChatService() *ChatService {
	return NewChatService(NewChatbotService(&config.ChatbotConfig{
		Model:       "gpt-4o-mini",
		MaxTokens:   300,
		Temperature: 0.7,
	}))
}

func TestChatEmptyMessage(t *testing.T) {
	svc := newChatService()

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := svc.Chat(context.Background(), &chatbot.ChatPayload{Message: message})
		if err == nil {
			t.Errorf("message %q: expected an error", message)
			continue
		}
		var serr *goa.ServiceError
		if !errors.As(err, &serr) || serr.Name != "bad_request" {
			t.Errorf("message %q: error = %v, want bad_request", message, err)
		}
	}
}

func TestChatFallbackReply(t *testing.T) {
	svc := newChatService()

	res, err := svc.Chat(context.Background(), &chatbot.ChatPayload{
		Message: "How much does it cost?",
		ConversationHistory: []*chatbot.ChatEntry{
			nil,
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: "Hello! Welcome to SPARS."},
		},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if res.Response == "" {
		t.Error("expected a reply")
	}
}
