package services

import (
	"context"
	"strings"
	"testing"

	"spars/internal/config"
)

func TestFallbackResponse(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"pricing", "How much does SPARS cost?", "pricing is tailored"},
		{"pricing keyword", "what is the price", "pricing is tailored"},
		{"demo", "Can I get a demonstration?", "request a personalized demo"},
		{"trial", "is there a free trial", "request a personalized demo"},
		{"features", "What features do you offer?", "inventory management"},
		{"what can", "what can spars do", "inventory management"},
		{"contact", "How do I reach your team?", "info@sparsus.com"},
		{"greeting", "hello there", "Welcome to SPARS"},
		{"default", "tell me about the weather", "Thanks for your question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackResponse(tt.message)
			if !strings.Contains(got, tt.want) {
				t.Errorf("fallbackResponse(%q) = %q, want substring %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestFallbackBucketOrder(t *testing.T) {
	// A message matching both pricing and demo keywords resolves to pricing
	got := fallbackResponse("how much does a demo cost")
	if !strings.Contains(got, "pricing is tailored") {
		t.Errorf("expected pricing bucket to win, got %q", got)
	}
}

func TestRespondWithoutAPIKey(t *testing.T) {
	svc := NewChatbotService(&config.ChatbotConfig{
		Model:       "gpt-4o-mini",
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if svc.enabled {
		t.Fatal("service should be disabled without an API key")
	}

	reply := svc.Respond(context.Background(), "hello", nil)
	if reply == "" {
		t.Error("expected a fallback reply")
	}
	if !strings.Contains(reply, "Welcome to SPARS") {
		t.Errorf("expected greeting fallback, got %q", reply)
	}
}

func TestContainsAny(t *testing.T) {
	if !containsAny("the price is right", "price", "cost") {
		t.Error("expected match on price")
	}
	if containsAny("nothing relevant", "price", "cost") {
		t.Error("unexpected match")
	}
}
