package services

import (
	"errors"

	goa "goa.design/goa/v3/pkg"

	"spars/gen/chatbot"
	"spars/gen/forms"
)

// FormsBadRequest creates a properly formatted bad request error for the
// forms service
func FormsBadRequest(message string) *goa.ServiceError {
	return forms.MakeBadRequest(errors.New(message))
}

// ChatbotBadRequest creates a properly formatted bad request error for the
// chatbot service
func ChatbotBadRequest(message string) *goa.ServiceError {
	return chatbot.MakeBadRequest(errors.New(message))
}
