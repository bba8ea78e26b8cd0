// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot HTTP client types
//
// Command:
// $ goa gen spars/api/design

package client

import (
	chatbot "spars/gen/chatbot"
	chatbotviews "spars/gen/chatbot/views"

	goa "goa.design/goa/v3/pkg"
)

// ChatRequestBody is the type of the "chatbot" service "chat" endpoint HTTP
// request body.
type ChatRequestBody struct {
	// Visitor message
	Message string `form:"message" json:"message" xml:"message"`
	// Prior exchanges, oldest first
	ConversationHistory []*ChatEntryRequestBody `form:"conversation_history,omitempty" json:"conversation_history,omitempty" xml:"conversation_history,omitempty"`
}

// ChatResponseBody is the type of the "chatbot" service "chat" endpoint HTTP
// response body.
type ChatResponseBody struct {
	// Assistant reply
	Response *string `form:"response,omitempty" json:"response,omitempty" xml:"response,omitempty"`
	// Whether a reply was produced
	Success *bool `form:"success,omitempty" json:"success,omitempty" xml:"success,omitempty"`
}

// ChatBadRequestResponseBody is the type of the "chatbot" service "chat"
// endpoint HTTP response body for the "bad_request" error.
type ChatBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ChatEntryRequestBody is used to define fields on request body types.
type ChatEntryRequestBody struct {
	// Message author
	Role string `form:"role" json:"role" xml:"role"`
	// Message text
	Content string `form:"content" json:"content" xml:"content"`
}

// NewChatRequestBody builds the HTTP request body from the payload of the
// "chat" endpoint of the "chatbot" service.
func NewChatRequestBody(p *chatbot.ChatPayload) *ChatRequestBody {
	body := &ChatRequestBody{
		Message: p.Message,
	}
	if p.ConversationHistory != nil {
		body.ConversationHistory = make([]*ChatEntryRequestBody, len(p.ConversationHistory))
		for i, val := range p.ConversationHistory {
			if val == nil {
				body.ConversationHistory[i] = nil
				continue
			}
			body.ConversationHistory[i] = marshalChatbotChatEntryToChatEntryRequestBody(val)
		}
	}
	return body
}

// NewChatresultViewOK builds a "chatbot" service "chat" endpoint result from a
// HTTP "OK" response.
func NewChatresultViewOK(body *ChatResponseBody) *chatbotviews.ChatresultView {
	v := &chatbotviews.ChatresultView{
		Response: body.Response,
		Success:  body.Success,
	}

	return v
}

// NewChatBadRequest builds a chatbot service chat endpoint bad_request error.
func NewChatBadRequest(body *ChatBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// ValidateChatBadRequestResponseBody runs the validations defined on
// chat_bad_request_response_body
func ValidateChatBadRequestResponseBody(body *ChatBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateChatEntryRequestBody runs the validations defined on
// ChatEntryRequestBody
func ValidateChatEntryRequestBody(body *ChatEntryRequestBody) (err error) {
	if !(body.Role == "user" || body.Role == "assistant") {
		err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.role", body.Role, []any{"user", "assistant"}))
	}
	return
}
