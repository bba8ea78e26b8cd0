// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms client
//
// Command:
// $ goa gen spars/api/design

package forms

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "forms" service client.
type Client struct {
	NewsletterEndpoint     goa.Endpoint
	ContactEndpoint        goa.Endpoint
	BrochureEndpoint       goa.Endpoint
	ProductProfileEndpoint goa.Endpoint
	RequestDemoEndpoint    goa.Endpoint
	TalkToSalesEndpoint    goa.Endpoint
}

// NewClient initializes a "forms" service client given the endpoints.
func NewClient(newsletter, contact, brochure, productProfile, requestDemo, talkToSales goa.Endpoint) *Client {
	return &Client{
		NewsletterEndpoint:     newsletter,
		ContactEndpoint:        contact,
		BrochureEndpoint:       brochure,
		ProductProfileEndpoint: productProfile,
		RequestDemoEndpoint:    requestDemo,
		TalkToSalesEndpoint:    talkToSales,
	}
}

// Newsletter calls the "newsletter" endpoint of the "forms" service.
// Newsletter may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - error: internal error
func (c *Client) Newsletter(ctx context.Context, p *NewsletterPayload) (res *Formresult, err error) {
	var ires any
	ires, err = c.NewsletterEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Formresult), nil
}

// Contact calls the "contact" endpoint of the "forms" service.
// Contact may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - error: internal error
func (c *Client) Contact(ctx context.Context, p *ContactPayload) (res *Formresult, err error) {
	var ires any
	ires, err = c.ContactEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Formresult), nil
}

// Brochure calls the "brochure" endpoint of the "forms" service.
// Brochure may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - error: internal error
func (c *Client) Brochure(ctx context.Context, p *BrochurePayload) (res *Documentformresult, err error) {
	var ires any
	ires, err = c.BrochureEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Documentformresult), nil
}

// ProductProfile calls the "product_profile" endpoint of the "forms" service.
// ProductProfile may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - error: internal error
func (c *Client) ProductProfile(ctx context.Context, p *ProductProfilePayload) (res *Documentformresult, err error) {
	var ires any
	ires, err = c.ProductProfileEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Documentformresult), nil
}

// RequestDemo calls the "request_demo" endpoint of the "forms" service.
// RequestDemo may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - error: internal error
func (c *Client) RequestDemo(ctx context.Context, p *RequestDemoPayload) (res *Formresult, err error) {
	var ires any
	ires, err = c.RequestDemoEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Formresult), nil
}

// TalkToSales calls the "talk_to_sales" endpoint of the "forms" service.
// TalkToSales may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - error: internal error
func (c *Client) TalkToSales(ctx context.Context, p *TalkToSalesPayload) (res *Formresult, err error) {
	var ires any
	ires, err = c.TalkToSalesEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Formresult), nil
}
