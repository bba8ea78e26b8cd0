// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms endpoints
//
// Command:
// $ goa gen spars/api/design

package forms

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Endpoints wraps the "forms" service endpoints.
type Endpoints struct {
	Newsletter     goa.Endpoint
	Contact        goa.Endpoint
	Brochure       goa.Endpoint
	ProductProfile goa.Endpoint
	RequestDemo    goa.Endpoint
	TalkToSales    goa.Endpoint
}

// NewEndpoints wraps the methods of the "forms" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	return &Endpoints{
		Newsletter:     NewNewsletterEndpoint(s),
		Contact:        NewContactEndpoint(s),
		Brochure:       NewBrochureEndpoint(s),
		ProductProfile: NewProductProfileEndpoint(s),
		RequestDemo:    NewRequestDemoEndpoint(s),
		TalkToSales:    NewTalkToSalesEndpoint(s),
	}
}

// Use applies the given middleware to all the "forms" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.Newsletter = m(e.Newsletter)
	e.Contact = m(e.Contact)
	e.Brochure = m(e.Brochure)
	e.ProductProfile = m(e.ProductProfile)
	e.RequestDemo = m(e.RequestDemo)
	e.TalkToSales = m(e.TalkToSales)
}

// NewNewsletterEndpoint returns an endpoint function that calls the method
// "newsletter" of service "forms".
func NewNewsletterEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*NewsletterPayload)
		res, err := s.Newsletter(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedFormresult(res, "default")
		return vres, nil
	}
}

// NewContactEndpoint returns an endpoint function that calls the method
// "contact" of service "forms".
func NewContactEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ContactPayload)
		res, err := s.Contact(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedFormresult(res, "default")
		return vres, nil
	}
}

// NewBrochureEndpoint returns an endpoint function that calls the method
// "brochure" of service "forms".
func NewBrochureEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*BrochurePayload)
		res, err := s.Brochure(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedDocumentformresult(res, "default")
		return vres, nil
	}
}

// NewProductProfileEndpoint returns an endpoint function that calls the method
// "product_profile" of service "forms".
func NewProductProfileEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ProductProfilePayload)
		res, err := s.ProductProfile(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedDocumentformresult(res, "default")
		return vres, nil
	}
}

// NewRequestDemoEndpoint returns an endpoint function that calls the method
// "request_demo" of service "forms".
func NewRequestDemoEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*RequestDemoPayload)
		res, err := s.RequestDemo(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedFormresult(res, "default")
		return vres, nil
	}
}

// NewTalkToSalesEndpoint returns an endpoint function that calls the method
// "talk_to_sales" of service "forms".
func NewTalkToSalesEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*TalkToSalesPayload)
		res, err := s.TalkToSales(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedFormresult(res, "default")
		return vres, nil
	}
}
