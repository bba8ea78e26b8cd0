// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot HTTP server types
//
// Command:
// $ goa gen spars/api/design

package server

import (
	chatbot "spars/gen/chatbot"
	chatbotviews "spars/gen/chatbot/views"
	"unicode/utf8"

	goa "goa.design/goa/v3/pkg"
)

// ChatRequestBody is the type of the "chatbot" service "chat" endpoint HTTP
// request body.
type ChatRequestBody struct {
	// Visitor message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Prior exchanges, oldest first
	ConversationHistory []*ChatEntryRequestBody `form:"conversation_history,omitempty" json:"conversation_history,omitempty" xml:"conversation_history,omitempty"`
}

// ChatResponseBody is the type of the "chatbot" service "chat" endpoint HTTP
// response body.
type ChatResponseBody struct {
	// Assistant reply
	Response string `form:"response" json:"response" xml:"response"`
	// Whether a reply was produced
	Success bool `form:"success" json:"success" xml:"success"`
}

// ChatBadRequestResponseBody is the type of the "chatbot" service "chat"
// endpoint HTTP response body for the "bad_request" error.
type ChatBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ChatEntryRequestBody is used to define fields on request body types.
type ChatEntryRequestBody struct {
	// Message author
	Role *string `form:"role,omitempty" json:"role,omitempty" xml:"role,omitempty"`
	// Message text
	Content *string `form:"content,omitempty" json:"content,omitempty" xml:"content,omitempty"`
}

// NewChatResponseBody builds the HTTP response body from the result of the
// "chat" endpoint of the "chatbot" service.
func NewChatResponseBody(res *chatbotviews.ChatresultView) *ChatResponseBody {
	body := &ChatResponseBody{
		Response: *res.Response,
		Success:  *res.Success,
	}
	return body
}

// NewChatBadRequestResponseBody builds the HTTP response body from the result
// of the "chat" endpoint of the "chatbot" service.
func NewChatBadRequestResponseBody(res *goa.ServiceError) *ChatBadRequestResponseBody {
	body := &ChatBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewChatPayload builds a chatbot service chat endpoint payload.
func NewChatPayload(body *ChatRequestBody) *chatbot.ChatPayload {
	v := &chatbot.ChatPayload{
		Message: *body.Message,
	}
	if body.ConversationHistory != nil {
		v.ConversationHistory = make([]*chatbot.ChatEntry, len(body.ConversationHistory))
		for i, val := range body.ConversationHistory {
			if val == nil {
				v.ConversationHistory[i] = nil
				continue
			}
			v.ConversationHistory[i] = unmarshalChatEntryRequestBodyToChatbotChatEntry(val)
		}
	}

	return v
}

// ValidateChatRequestBody runs the validations defined on ChatRequestBody
func ValidateChatRequestBody(body *ChatRequestBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Message != nil {
		if utf8.RuneCountInString(*body.Message) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", *body.Message, utf8.RuneCountInString(*body.Message), 1, true))
		}
	}
	if body.Message != nil {
		if utf8.RuneCountInString(*body.Message) > 2000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", *body.Message, utf8.RuneCountInString(*body.Message), 2000, false))
		}
	}
	for _, e := range body.ConversationHistory {
		if e != nil {
			if err2 := ValidateChatEntryRequestBody(e); err2 != nil {
				err = goa.MergeErrors(err, err2)
			}
		}
	}
	return
}

// ValidateChatEntryRequestBody runs the validations defined on
// ChatEntryRequestBody
func ValidateChatEntryRequestBody(body *ChatEntryRequestBody) (err error) {
	if body.Role == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("role", "body"))
	}
	if body.Content == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("content", "body"))
	}
	if body.Role != nil {
		if !(*body.Role == "user" || *body.Role == "assistant") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.role", *body.Role, []any{"user", "assistant"}))
		}
	}
	return
}
