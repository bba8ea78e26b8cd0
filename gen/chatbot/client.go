// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot client
//
// Command:
// $ goa gen spars/api/design

package chatbot

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "chatbot" service client.
type Client struct {
	ChatEndpoint goa.Endpoint
}

// NewClient initializes a "chatbot" service client given the endpoints.
func NewClient(chat goa.Endpoint) *Client {
	return &Client{
		ChatEndpoint: chat,
	}
}

// Chat calls the "chat" endpoint of the "chatbot" service.
// Chat may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - error: internal error
func (c *Client) Chat(ctx context.Context, p *ChatPayload) (res *Chatresult, err error) {
	var ires any
	ires, err = c.ChatEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Chatresult), nil
}
