// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms client HTTP transport
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

// Client lists the forms service endpoint HTTP clients.
type Client struct {
	// Newsletter Doer is the HTTP client used to make requests to the newsletter
	// endpoint.
	NewsletterDoer goahttp.Doer

	// Contact Doer is the HTTP client used to make requests to the contact
	// endpoint.
	ContactDoer goahttp.Doer

	// Brochure Doer is the HTTP client used to make requests to the brochure
	// endpoint.
	BrochureDoer goahttp.Doer

	// ProductProfile Doer is the HTTP client used to make requests to the
	// product_profile endpoint.
	ProductProfileDoer goahttp.Doer

	// RequestDemo Doer is the HTTP client used to make requests to the
	// request_demo endpoint.
	RequestDemoDoer goahttp.Doer

	// TalkToSales Doer is the HTTP client used to make requests to the
	// talk_to_sales endpoint.
	TalkToSalesDoer goahttp.Doer

	// RestoreResponseBody controls whether the response bodies are reset after
	// decoding so they can be read again.
	RestoreResponseBody bool

	scheme  string
	host    string
	encoder func(*http.Request) goahttp.Encoder
	decoder func(*http.Response) goahttp.Decoder
}

// NewClient instantiates HTTP clients for all the forms service servers.
func NewClient(
	scheme string,
	host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restoreBody bool,
) *Client {
	return &Client{
		NewsletterDoer:      doer,
		ContactDoer:         doer,
		BrochureDoer:        doer,
		ProductProfileDoer:  doer,
		RequestDemoDoer:     doer,
		TalkToSalesDoer:     doer,
		RestoreResponseBody: restoreBody,
		scheme:              scheme,
		host:                host,
		decoder:             dec,
		encoder:             enc,
	}
}

// Newsletter returns an endpoint that makes HTTP requests to the forms service
// newsletter server.
func (c *Client) Newsletter() goa.Endpoint {
	var (
		encodeRequest  = EncodeNewsletterRequest(c.encoder)
		decodeResponse = DecodeNewsletterResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildNewsletterRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.NewsletterDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("forms", "newsletter", err)
		}
		return decodeResponse(resp)
	}
}

// Contact returns an endpoint that makes HTTP requests to the forms service
// contact server.
func (c *Client) Contact() goa.Endpoint {
	var (
		encodeRequest  = EncodeContactRequest(c.encoder)
		decodeResponse = DecodeContactResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildContactRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ContactDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("forms", "contact", err)
		}
		return decodeResponse(resp)
	}
}

// Brochure returns an endpoint that makes HTTP requests to the forms service
// brochure server.
func (c *Client) Brochure() goa.Endpoint {
	var (
		encodeRequest  = EncodeBrochureRequest(c.encoder)
		decodeResponse = DecodeBrochureResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildBrochureRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.BrochureDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("forms", "brochure", err)
		}
		return decodeResponse(resp)
	}
}

// ProductProfile returns an endpoint that makes HTTP requests to the forms
// service product_profile server.
func (c *Client) ProductProfile() goa.Endpoint {
	var (
		encodeRequest  = EncodeProductProfileRequest(c.encoder)
		decodeResponse = DecodeProductProfileResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildProductProfileRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ProductProfileDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("forms", "product_profile", err)
		}
		return decodeResponse(resp)
	}
}

// RequestDemo returns an endpoint that makes HTTP requests to the forms
// service request_demo server.
func (c *Client) RequestDemo() goa.Endpoint {
	var (
		encodeRequest  = EncodeRequestDemoRequest(c.encoder)
		decodeResponse = DecodeRequestDemoResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildRequestDemoRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.RequestDemoDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("forms", "request_demo", err)
		}
		return decodeResponse(resp)
	}
}

// TalkToSales returns an endpoint that makes HTTP requests to the forms
// service talk_to_sales server.
func (c *Client) TalkToSales() goa.Endpoint {
	var (
		encodeRequest  = EncodeTalkToSalesRequest(c.encoder)
		decodeResponse = DecodeTalkToSalesResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildTalkToSalesRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.TalkToSalesDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("forms", "talk_to_sales", err)
		}
		return decodeResponse(resp)
	}
}
