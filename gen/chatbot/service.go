// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot service
//
// Command:
// $ goa gen spars/api/design

package chatbot

import (
	"context"
	chatbotviews "spars/gen/chatbot/views"

	goa "goa.design/goa/v3/pkg"
)

// Website assistant service
type Service interface {
	// Send a message to the assistant
	Chat(context.Context, *ChatPayload) (res *Chatresult, err error)
}

// APIName is the name of the API as defined in the design.
const APIName = "spars"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "chatbot"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [1]string{"chat"}

// Bad request
type BadRequest struct {
	// Error message
	Message *string
}

type ChatEntry struct {
	// Message author
	Role string
	// Message text
	Content string
}

// ChatPayload is the payload type of the chatbot service chat method.
type ChatPayload struct {
	// Visitor message
	Message string
	// Prior exchanges, oldest first
	ConversationHistory []*ChatEntry
}

// Chatresult is the result type of the chatbot service chat method.
type Chatresult struct {
	// Assistant reply
	Response string
	// Whether a reply was produced
	Success bool
}

// Error returns an error description.
func (e *BadRequest) Error() string {
	return "Bad request"
}

// ErrorName returns "BadRequest".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *BadRequest) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "BadRequest".
func (e *BadRequest) GoaErrorName() string {
	return "bad_request"
}

// MakeBadRequest builds a goa.ServiceError from an error.
func MakeBadRequest(err error) *goa.ServiceError {
	return goa.NewServiceError(err, "bad_request", false, false, false)
}

// NewChatresult initializes result type Chatresult from viewed result type
// Chatresult.
func NewChatresult(vres *chatbotviews.Chatresult) *Chatresult {
	return newChatresult(vres.Projected)
}

// NewViewedChatresult initializes viewed result type Chatresult from result
// type Chatresult using the given view.
func NewViewedChatresult(res *Chatresult, view string) *chatbotviews.Chatresult {
	p := newChatresultView(res)
	return &chatbotviews.Chatresult{Projected: p, View: "default"}
}

// newChatresult converts projected type Chatresult to service type Chatresult.
func newChatresult(vres *chatbotviews.ChatresultView) *Chatresult {
	res := &Chatresult{}
	if vres.Response != nil {
		res.Response = *vres.Response
	}
	if vres.Success != nil {
		res.Success = *vres.Success
	}
	return res
}

// newChatresultView projects result type Chatresult to projected type
// ChatresultView using the "default" view.
func newChatresultView(res *Chatresult) *chatbotviews.ChatresultView {
	vres := &chatbotviews.ChatresultView{
		Response: &res.Response,
		Success:  &res.Success,
	}
	return vres
}
