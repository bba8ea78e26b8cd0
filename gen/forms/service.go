// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms service
//
// Command:
// $ goa gen spars/api/design

package forms

import (
	"context"
	formsviews "spars/gen/forms/views"

	goa "goa.design/goa/v3/pkg"
)

// Marketing form intake service
type Service interface {
	// Subscribe to the newsletter
	Newsletter(context.Context, *NewsletterPayload) (res *Formresult, err error)
	// Submit the contact form
	Contact(context.Context, *ContactPayload) (res *Formresult, err error)
	// Request the product brochure
	Brochure(context.Context, *BrochurePayload) (res *Documentformresult, err error)
	// Request the product profile document
	ProductProfile(context.Context, *ProductProfilePayload) (res *Documentformresult, err error)
	// Request a product demo
	RequestDemo(context.Context, *RequestDemoPayload) (res *Formresult, err error)
	// Request a conversation with the sales team
	TalkToSales(context.Context, *TalkToSalesPayload) (res *Formresult, err error)
}

// APIName is the name of the API as defined in the design.
const APIName = "spars"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "forms"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [6]string{"newsletter", "contact", "brochure", "product_profile", "request_demo", "talk_to_sales"}

// Bad request
type BadRequest struct {
	// Error message
	Message *string
}

// BrochurePayload is the payload type of the forms service brochure method.
type BrochurePayload struct {
	// Full name
	FullName string
	// Email address
	Email string
	// Company name
	Company string
	// Phone number (optional)
	Phone *string
	// Job role (optional)
	JobRole *string
	// Marketing consent
	AgreedToMarketing bool
}

// ContactPayload is the payload type of the forms service contact method.
type ContactPayload struct {
	// Full name
	Name string
	// Email address
	Email string
	// Phone number (optional)
	Phone *string
	// Company name (optional)
	Company *string
	// Inquiry category
	InquiryType string
	// Message
	Message string
}

// Documentformresult is the result type of the forms service brochure method.
type Documentformresult struct {
	// Whether the submission was accepted
	Success bool
	// Human-readable confirmation message
	Message string
	// Whether the requested document is available for download
	HasPdf bool
}

// Formresult is the result type of the forms service newsletter method.
type Formresult struct {
	// Whether the submission was accepted
	Success bool
	// Human-readable confirmation message
	Message string
}

// NewsletterPayload is the payload type of the forms service newsletter method.
type NewsletterPayload struct {
	// Email address
	Email string
}

// ProductProfilePayload is the payload type of the forms service
// product_profile method.
type ProductProfilePayload struct {
	// First name
	FirstName string
	// Last name
	LastName string
	// Email address
	Email string
	// Phone number
	Phone string
	// Job title (optional)
	JobTitle *string
	// Company name
	CompanyName string
	// Industry (optional)
	Industry *string
	// Company size (optional)
	CompanySize *string
	// Company website (optional)
	Website *string
	// Company address (optional)
	Address *string
	// Current system in use (optional)
	CurrentSystem *string
	// Number of warehouses (optional)
	Warehouses *int
	// Expected number of users (optional)
	Users *int
	// Requirements description (optional)
	Requirements *string
	// Implementation timeline (optional)
	Timeline *string
}

// RequestDemoPayload is the payload type of the forms service request_demo
// method.
type RequestDemoPayload struct {
	// First name
	FirstName string
	// Last name
	LastName string
	// Email address
	Email string
	// Phone number
	Phone string
	// Company name
	CompanyName string
	// Company size (optional)
	CompanySize *string
	// Preferred demo date
	PreferredDemoDate string
	// Preferred demo time (optional)
	PreferredDemoTime *string
	// Anything else we should know (optional)
	AdditionalInformation *string
}

// TalkToSalesPayload is the payload type of the forms service talk_to_sales
// method.
type TalkToSalesPayload struct {
	// Full name
	Name string
	// Email address
	Email string
	// Phone number
	Phone string
	// Company name (optional)
	Company *string
	// Message
	Message string
	// Current system in use (optional)
	CurrentSystem *string
	// Number of warehouses (optional)
	Warehouses *int
	// Expected number of users (optional)
	Users *int
	// Requirements description (optional)
	Requirements *string
	// Implementation timeline (optional)
	Timeline *string
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

// NewFormresult initializes result type Formresult from viewed result type
// Formresult.
func NewFormresult(vres *formsviews.Formresult) *Formresult {
	return newFormresult(vres.Projected)
}

// NewViewedFormresult initializes viewed result type Formresult from result
// type Formresult using the given view.
func NewViewedFormresult(res *Formresult, view string) *formsviews.Formresult {
	p := newFormresultView(res)
	return &formsviews.Formresult{Projected: p, View: "default"}
}

// NewDocumentformresult initializes result type Documentformresult from viewed
// result type Documentformresult.
func NewDocumentformresult(vres *formsviews.Documentformresult) *Documentformresult {
	return newDocumentformresult(vres.Projected)
}

// NewViewedDocumentformresult initializes viewed result type
// Documentformresult from result type Documentformresult using the given view.
func NewViewedDocumentformresult(res *Documentformresult, view string) *formsviews.Documentformresult {
	p := newDocumentformresultView(res)
	return &formsviews.Documentformresult{Projected: p, View: "default"}
}

// newFormresult converts projected type Formresult to service type Formresult.
func newFormresult(vres *formsviews.FormresultView) *Formresult {
	res := &Formresult{}
	if vres.Success != nil {
		res.Success = *vres.Success
	}
	if vres.Message != nil {
		res.Message = *vres.Message
	}
	return res
}

// newFormresultView projects result type Formresult to projected type
// FormresultView using the "default" view.
func newFormresultView(res *Formresult) *formsviews.FormresultView {
	vres := &formsviews.FormresultView{
		Success: &res.Success,
		Message: &res.Message,
	}
	return vres
}

// newDocumentformresult converts projected type Documentformresult to service
// type Documentformresult.
func newDocumentformresult(vres *formsviews.DocumentformresultView) *Documentformresult {
	res := &Documentformresult{}
	if vres.Success != nil {
		res.Success = *vres.Success
	}
	if vres.Message != nil {
		res.Message = *vres.Message
	}
	if vres.HasPdf != nil {
		res.HasPdf = *vres.HasPdf
	}
	return res
}

// newDocumentformresultView projects result type Documentformresult to
// projected type DocumentformresultView using the "default" view.
func newDocumentformresultView(res *Documentformresult) *formsviews.DocumentformresultView {
	vres := &formsviews.DocumentformresultView{
		Success: &res.Success,
		Message: &res.Message,
		HasPdf:  &res.HasPdf,
	}
	return vres
}
