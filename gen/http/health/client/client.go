// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health client HTTP transport
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

// Client lists the health service endpoint HTTP clients.
type Client struct {
	// Check Doer is the HTTP client used to make requests to the check endpoint.
	CheckDoer goahttp.Doer

	// RestoreResponseBody controls whether the response bodies are reset after
	// decoding so they can be read again.
	RestoreResponseBody bool

	scheme  string
	host    string
	encoder func(*http.Request) goahttp.Encoder
	decoder func(*http.Response) goahttp.Decoder
}

// NewClient instantiates HTTP clients for all the health service servers.
func NewClient(
	scheme string,
	host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restoreBody bool,
) *Client {
	return &Client{
		CheckDoer:           doer,
		RestoreResponseBody: restoreBody,
		scheme:              scheme,
		host:                host,
		decoder:             dec,
		encoder:             enc,
	}
}

// Check returns an endpoint that makes HTTP requests to the health service
// check server.
func (c *Client) Check() goa.Endpoint {
	var (
		decodeResponse = DecodeCheckResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildCheckRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.CheckDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("health", "check", err)
		}
		return decodeResponse(resp)
	}
}
