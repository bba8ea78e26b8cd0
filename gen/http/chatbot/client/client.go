// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot client HTTP transport
//
// Command:
// $ goa gen spars/api/design

package client

import (
	"context"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// Client lists the chatbot service endpoint HTTP clients.
type Client struct {
	// Chat Doer is the HTTP client used to make requests to the chat endpoint.
	ChatDoer goahttp.Doer

	// RestoreResponseBody controls whether the response bodies are reset after
	// decoding so they can be read again.
	RestoreResponseBody bool

	scheme  string
	host    string
	encoder func(*http.Request) goahttp.Encoder
	decoder func(*http.Response) goahttp.Decoder
}

// NewClient instantiates HTTP clients for all the chatbot service servers.
func NewClient(
	scheme string,
	host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restoreBody bool,
) *Client {
	return &Client{
		ChatDoer:            doer,
		RestoreResponseBody: restoreBody,
		scheme:              scheme,
		host:                host,
		decoder:             dec,
		encoder:             enc,
	}
}

// Chat returns an endpoint that makes HTTP requests to the chatbot service
// chat server.
func (c *Client) Chat() goa.Endpoint {
	var (
		encodeRequest  = EncodeChatRequest(c.encoder)
		decodeResponse = DecodeChatResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildChatRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ChatDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("chatbot", "chat", err)
		}
		return decodeResponse(resp)
	}
}
