package services

import (
	"context"
	"log"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"spars/internal/config"
	"spars/internal/metrics"
)

// maxHistoryTurns caps how much conversation history is forwarded upstream
const maxHistoryTurns = 10

const systemPrompt = `You are the SPARS assistant, a helpful chatbot on the SPARS website.

SPARS is an ERP solution built for the home furnishing industry. It helps furniture retailers, wholesalers, and manufacturers manage inventory, warehousing, purchasing, sales, delivery scheduling, and customer relationships in one system.

Key facts:
- SPARS is developed by Magnum Opus System Corp., based in New York, USA.
- Contact: info@sparsus.com or +1 (212) 685-2127.
- Demos can be requested through the website's demo request form.
- Pricing is tailored per business; the sales team provides quotes.

Answer questions about SPARS concisely and professionally. If you do not know something, say so and point the visitor to the contact details above. Do not invent features or prices.`

// ChatTurn is one prior exchange in a conversation
type ChatTurn struct {
	Role    string
	Content string
}

// ChatbotService answers visitor questions via the model upstream, with a
// canned keyword fallback when the upstream is unavailable.
type ChatbotService struct {
	client  openai.Client
	cfg     *config.ChatbotConfig
	enabled bool
}

// NewChatbotService creates a new chatbot service. Without an API key the
// service runs in fallback-only mode.
func NewChatbotService(cfg *config.ChatbotConfig) *ChatbotService {
	s := &ChatbotService{cfg: cfg}
	if cfg.APIKey != "" {
		s.client = openai.NewClient(option.WithAPIKey(cfg.APIKey))
		s.enabled = true
	} else {
		log.Println("[CHATBOT] No API key configured, using fallback responses only")
	}
	return s
}

// Respond returns a reply for message given the prior history. It always
// returns something usable; upstream failures degrade to the fallback.
func (s *ChatbotService) Respond(ctx context.Context, message string, history []ChatTurn) string {
	if s.enabled {
		reply, err := s.complete(ctx, message, history)
		if err == nil && reply != "" {
			metrics.RecordChatbotResponse(true)
			return reply
		}
		if err != nil {
			log.Printf("[CHATBOT] Upstream request failed: %v", err)
		}
	}
	metrics.RecordChatbotResponse(false)
	return fallbackResponse(message)
}

func (s *ChatbotService) complete(ctx context.Context, message string, history []ChatTurn) (string, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, turn := range history {
		if turn.Role == "assistant" {
			msgs = append(msgs, openai.AssistantMessage(turn.Content))
		} else {
			msgs = append(msgs, openai.UserMessage(turn.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(message))

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(s.cfg.Model),
		Messages:    msgs,
		MaxTokens:   openai.Int(int64(s.cfg.MaxTokens)),
		Temperature: openai.Float(s.cfg.Temperature),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// fallbackResponse picks a canned answer by keyword. Buckets are checked in
// order; the first match wins.
func fallbackResponse(message string) string {
	m := strings.ToLower(message)

	switch {
	case containsAny(m, "price", "cost", "pricing", "how much"):
		return "SPARS pricing is tailored to each business based on size and requirements. Please contact our sales team at info@sparsus.com or +1 (212) 685-2127 for a personalized quote."
	case containsAny(m, "demo", "demonstration", "trial"):
		return "We'd love to show you SPARS in action! You can request a personalized demo through the demo request form on our website, and our team will reach out to schedule a time that works for you."
	case containsAny(m, "feature", "module", "capability", "what can"):
		return "SPARS is an ERP solution built for the home furnishing industry. It covers inventory management, warehousing, purchasing, sales, delivery scheduling, and customer relationships. Ask about any area and I'll share more detail."
	case containsAny(m, "contact", "email", "phone", "reach"):
		return "You can reach the SPARS team at info@sparsus.com or +1 (212) 685-2127. We're happy to answer any questions about the platform."
	case containsAny(m, "hello", "hi", "hey", "greetings"):
		return "Hello! Welcome to SPARS. I'm here to help with questions about our ERP solution for the home furnishing industry. What would you like to know?"
	default:
		return "Thanks for your question! For detailed information about SPARS, please contact us at info@sparsus.com or +1 (212) 685-2127, and our team will be glad to help."
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
