// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health client
//
// Command:
// $ goa gen spars/api/design

package health

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "health" service client.
type Client struct {
	CheckEndpoint goa.Endpoint
}

// NewClient initializes a "health" service client given the endpoints.
func NewClient(check goa.Endpoint) *Client {
	return &Client{
		CheckEndpoint: check,
	}
}

// Check calls the "check" endpoint of the "health" service.
func (c *Client) Check(ctx context.Context) (res *Healthresult, err error) {
	var ires any
	ires, err = c.CheckEndpoint(ctx, nil)
	if err != nil {
		return
	}
	return ires.(*Healthresult), nil
}
