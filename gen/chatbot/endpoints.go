// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot endpoints
//
// Command:
// $ goa gen spars/api/design

package chatbot

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Endpoints wraps the "chatbot" service endpoints.
type Endpoints struct {
	Chat goa.Endpoint
}

// NewEndpoints wraps the methods of the "chatbot" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	return &Endpoints{
		Chat: NewChatEndpoint(s),
	}
}

// Use applies the given middleware to all the "chatbot" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.Chat = m(e.Chat)
}

// NewChatEndpoint returns an endpoint function that calls the method "chat" of
// service "chatbot".
func NewChatEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ChatPayload)
		res, err := s.Chat(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedChatresult(res, "default")
		return vres, nil
	}
}
