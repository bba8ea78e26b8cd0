// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms HTTP client types
//
// Command:
// $ goa gen spars/api/design

package client

import (
	forms "spars/gen/forms"
	formsviews "spars/gen/forms/views"

	goa "goa.design/goa/v3/pkg"
)

// NewsletterRequestBody is the type of the "forms" service "newsletter"
// endpoint HTTP request body.
type NewsletterRequestBody struct {
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
}

// ContactRequestBody is the type of the "forms" service "contact" endpoint
// HTTP request body.
type ContactRequestBody struct {
	// Full name
	Name string `form:"name" json:"name" xml:"name"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Phone number (optional)
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Company name (optional)
	Company *string `form:"company,omitempty" json:"company,omitempty" xml:"company,omitempty"`
	// Inquiry category
	InquiryType string `form:"inquiry_type" json:"inquiry_type" xml:"inquiry_type"`
	// Message
	Message string `form:"message" json:"message" xml:"message"`
}

// BrochureRequestBody is the type of the "forms" service "brochure" endpoint
// HTTP request body.
type BrochureRequestBody struct {
	// Full name
	FullName string `form:"full_name" json:"full_name" xml:"full_name"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Company name
	Company string `form:"company" json:"company" xml:"company"`
	// Phone number (optional)
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Job role (optional)
	JobRole *string `form:"job_role,omitempty" json:"job_role,omitempty" xml:"job_role,omitempty"`
	// Marketing consent
	AgreedToMarketing bool `form:"agreed_to_marketing" json:"agreed_to_marketing" xml:"agreed_to_marketing"`
}

// ProductProfileRequestBody is the type of the "forms" service
// "product_profile" endpoint HTTP request body.
type ProductProfileRequestBody struct {
	// First name
	FirstName string `form:"first_name" json:"first_name" xml:"first_name"`
	// Last name
	LastName string `form:"last_name" json:"last_name" xml:"last_name"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Phone number
	Phone string `form:"phone" json:"phone" xml:"phone"`
	// Job title (optional)
	JobTitle *string `form:"job_title,omitempty" json:"job_title,omitempty" xml:"job_title,omitempty"`
	// Company name
	CompanyName string `form:"company_name" json:"company_name" xml:"company_name"`
	// Industry (optional)
	Industry *string `form:"industry,omitempty" json:"industry,omitempty" xml:"industry,omitempty"`
	// Company size (optional)
	CompanySize *string `form:"company_size,omitempty" json:"company_size,omitempty" xml:"company_size,omitempty"`
	// Company website (optional)
	Website *string `form:"website,omitempty" json:"website,omitempty" xml:"website,omitempty"`
	// Company address (optional)
	Address *string `form:"address,omitempty" json:"address,omitempty" xml:"address,omitempty"`
	// Current system in use (optional)
	CurrentSystem *string `form:"current_system,omitempty" json:"current_system,omitempty" xml:"current_system,omitempty"`
	// Number of warehouses (optional)
	Warehouses *int `form:"warehouses,omitempty" json:"warehouses,omitempty" xml:"warehouses,omitempty"`
	// Expected number of users (optional)
	Users *int `form:"users,omitempty" json:"users,omitempty" xml:"users,omitempty"`
	// Requirements description (optional)
	Requirements *string `form:"requirements,omitempty" json:"requirements,omitempty" xml:"requirements,omitempty"`
	// Implementation timeline (optional)
	Timeline *string `form:"timeline,omitempty" json:"timeline,omitempty" xml:"timeline,omitempty"`
}

// RequestDemoRequestBody is the type of the "forms" service "request_demo"
// endpoint HTTP request body.
type RequestDemoRequestBody struct {
	// First name
	FirstName string `form:"first_name" json:"first_name" xml:"first_name"`
	// Last name
	LastName string `form:"last_name" json:"last_name" xml:"last_name"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Phone number
	Phone string `form:"phone" json:"phone" xml:"phone"`
	// Company name
	CompanyName string `form:"company_name" json:"company_name" xml:"company_name"`
	// Company size (optional)
	CompanySize *string `form:"company_size,omitempty" json:"company_size,omitempty" xml:"company_size,omitempty"`
	// Preferred demo date
	PreferredDemoDate string `form:"preferred_demo_date" json:"preferred_demo_date" xml:"preferred_demo_date"`
	// Preferred demo time (optional)
	PreferredDemoTime *string `form:"preferred_demo_time,omitempty" json:"preferred_demo_time,omitempty" xml:"preferred_demo_time,omitempty"`
	// Anything else we should know (optional)
	AdditionalInformation *string `form:"additional_information,omitempty" json:"additional_information,omitempty" xml:"additional_information,omitempty"`
}

// TalkToSalesRequestBody is the type of the "forms" service "talk_to_sales"
// endpoint HTTP request body.
type TalkToSalesRequestBody struct {
	// Full name
	Name string `form:"name" json:"name" xml:"name"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Phone number
	Phone string `form:"phone" json:"phone" xml:"phone"`
	// Company name (optional)
	Company *string `form:"company,omitempty" json:"company,omitempty" xml:"company,omitempty"`
	// Message
	Message string `form:"message" json:"message" xml:"message"`
	// Current system in use (optional)
	CurrentSystem *string `form:"current_system,omitempty" json:"current_system,omitempty" xml:"current_system,omitempty"`
	// Number of warehouses (optional)
	Warehouses *int `form:"warehouses,omitempty" json:"warehouses,omitempty" xml:"warehouses,omitempty"`
	// Expected number of users (optional)
	Users *int `form:"users,omitempty" json:"users,omitempty" xml:"users,omitempty"`
	// Requirements description (optional)
	Requirements *string `form:"requirements,omitempty" json:"requirements,omitempty" xml:"requirements,omitempty"`
	// Implementation timeline (optional)
	Timeline *string `form:"timeline,omitempty" json:"timeline,omitempty" xml:"timeline,omitempty"`
}

// NewsletterResponseBody is the type of the "forms" service "newsletter"
// endpoint HTTP response body.
type NewsletterResponseBody struct {
	// Whether the submission was accepted
	Success *bool `form:"success,omitempty" json:"success,omitempty" xml:"success,omitempty"`
	// Human-readable confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ContactResponseBody is the type of the "forms" service "contact" endpoint
// HTTP response body.
type ContactResponseBody struct {
	// Whether the submission was accepted
	Success *bool `form:"success,omitempty" json:"success,omitempty" xml:"success,omitempty"`
	// Human-readable confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// BrochureResponseBody is the type of the "forms" service "brochure" endpoint
// HTTP response body.
type BrochureResponseBody struct {
	// Whether the submission was accepted
	Success *bool `form:"success,omitempty" json:"success,omitempty" xml:"success,omitempty"`
	// Human-readable confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Whether the requested document is available for download
	HasPdf *bool `form:"has_pdf,omitempty" json:"has_pdf,omitempty" xml:"has_pdf,omitempty"`
}

// ProductProfileResponseBody is the type of the "forms" service
// "product_profile" endpoint HTTP response body.
type ProductProfileResponseBody struct {
	// Whether the submission was accepted
	Success *bool `form:"success,omitempty" json:"success,omitempty" xml:"success,omitempty"`
	// Human-readable confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Whether the requested document is available for download
	HasPdf *bool `form:"has_pdf,omitempty" json:"has_pdf,omitempty" xml:"has_pdf,omitempty"`
}

// RequestDemoResponseBody is the type of the "forms" service "request_demo"
// endpoint HTTP response body.
type RequestDemoResponseBody struct {
	// Whether the submission was accepted
	Success *bool `form:"success,omitempty" json:"success,omitempty" xml:"success,omitempty"`
	// Human-readable confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// TalkToSalesResponseBody is the type of the "forms" service "talk_to_sales"
// endpoint HTTP response body.
type TalkToSalesResponseBody struct {
	// Whether the submission was accepted
	Success *bool `form:"success,omitempty" json:"success,omitempty" xml:"success,omitempty"`
	// Human-readable confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// NewsletterBadRequestResponseBody is the type of the "forms" service
// "newsletter" endpoint HTTP response body for the "bad_request" error.
type NewsletterBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ContactBadRequestResponseBody is the type of the "forms" service "contact"
// endpoint HTTP response body for the "bad_request" error.
type ContactBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// BrochureBadRequestResponseBody is the type of the "forms" service "brochure"
// endpoint HTTP response body for the "bad_request" error.
type BrochureBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ProductProfileBadRequestResponseBody is the type of the "forms" service
// "product_profile" endpoint HTTP response body for the "bad_request" error.
type ProductProfileBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// RequestDemoBadRequestResponseBody is the type of the "forms" service
// "request_demo" endpoint HTTP response body for the "bad_request" error.
type RequestDemoBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// TalkToSalesBadRequestResponseBody is the type of the "forms" service
// "talk_to_sales" endpoint HTTP response body for the "bad_request" error.
type TalkToSalesBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// NewNewsletterRequestBody builds the HTTP request body from the payload of
// the "newsletter" endpoint of the "forms" service.
func NewNewsletterRequestBody(p *forms.NewsletterPayload) *NewsletterRequestBody {
	body := &NewsletterRequestBody{
		Email: p.Email,
	}
	return body
}

// NewContactRequestBody builds the HTTP request body from the payload of the
// "contact" endpoint of the "forms" service.
func NewContactRequestBody(p *forms.ContactPayload) *ContactRequestBody {
	body := &ContactRequestBody{
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Company:     p.Company,
		InquiryType: p.InquiryType,
		Message:     p.Message,
	}
	return body
}

// NewBrochureRequestBody builds the HTTP request body from the payload of the
// "brochure" endpoint of the "forms" service.
func NewBrochureRequestBody(p *forms.BrochurePayload) *BrochureRequestBody {
	body := &BrochureRequestBody{
		FullName:          p.FullName,
		Email:             p.Email,
		Company:           p.Company,
		Phone:             p.Phone,
		JobRole:           p.JobRole,
		AgreedToMarketing: p.AgreedToMarketing,
	}
	return body
}

// NewProductProfileRequestBody builds the HTTP request body from the payload
// of the "product_profile" endpoint of the "forms" service.
func NewProductProfileRequestBody(p *forms.ProductProfilePayload) *ProductProfileRequestBody {
	body := &ProductProfileRequestBody{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Phone:         p.Phone,
		JobTitle:      p.JobTitle,
		CompanyName:   p.CompanyName,
		Industry:      p.Industry,
		CompanySize:   p.CompanySize,
		Website:       p.Website,
		Address:       p.Address,
		CurrentSystem: p.CurrentSystem,
		Warehouses:    p.Warehouses,
		Users:         p.Users,
		Requirements:  p.Requirements,
		Timeline:      p.Timeline,
	}
	return body
}

// NewRequestDemoRequestBody builds the HTTP request body from the payload of
// the "request_demo" endpoint of the "forms" service.
func NewRequestDemoRequestBody(p *forms.RequestDemoPayload) *RequestDemoRequestBody {
	body := &RequestDemoRequestBody{
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		Email:                 p.Email,
		Phone:                 p.Phone,
		CompanyName:           p.CompanyName,
		CompanySize:           p.CompanySize,
		PreferredDemoDate:     p.PreferredDemoDate,
		PreferredDemoTime:     p.PreferredDemoTime,
		AdditionalInformation: p.AdditionalInformation,
	}
	return body
}

// NewTalkToSalesRequestBody builds the HTTP request body from the payload of
// the "talk_to_sales" endpoint of the "forms" service.
func NewTalkToSalesRequestBody(p *forms.TalkToSalesPayload) *TalkToSalesRequestBody {
	body := &TalkToSalesRequestBody{
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Company:       p.Company,
		Message:       p.Message,
		CurrentSystem: p.CurrentSystem,
		Warehouses:    p.Warehouses,
		Users:         p.Users,
		Requirements:  p.Requirements,
		Timeline:      p.Timeline,
	}
	return body
}

// NewNewsletterFormresultOK builds a "forms" service "newsletter" endpoint
// result from a HTTP "OK" response.
func NewNewsletterFormresultOK(body *NewsletterResponseBody) *formsviews.FormresultView {
	v := &formsviews.FormresultView{
		Success: body.Success,
		Message: body.Message,
	}

	return v
}

// NewNewsletterBadRequest builds a forms service newsletter endpoint
// bad_request error.
func NewNewsletterBadRequest(body *NewsletterBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewContactFormresultOK builds a "forms" service "contact" endpoint result
// from a HTTP "OK" response.
func NewContactFormresultOK(body *ContactResponseBody) *formsviews.FormresultView {
	v := &formsviews.FormresultView{
		Success: body.Success,
		Message: body.Message,
	}

	return v
}

// NewContactBadRequest builds a forms service contact endpoint bad_request
// error.
func NewContactBadRequest(body *ContactBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewBrochureDocumentformresultOK builds a "forms" service "brochure" endpoint
// result from a HTTP "OK" response.
func NewBrochureDocumentformresultOK(body *BrochureResponseBody) *formsviews.DocumentformresultView {
	v := &formsviews.DocumentformresultView{
		Success: body.Success,
		Message: body.Message,
		HasPdf:  body.HasPdf,
	}

	return v
}

// NewBrochureBadRequest builds a forms service brochure endpoint bad_request
// error.
func NewBrochureBadRequest(body *BrochureBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewProductProfileDocumentformresultOK builds a "forms" service
// "product_profile" endpoint result from a HTTP "OK" response.
func NewProductProfileDocumentformresultOK(body *ProductProfileResponseBody) *formsviews.DocumentformresultView {
	v := &formsviews.DocumentformresultView{
		Success: body.Success,
		Message: body.Message,
		HasPdf:  body.HasPdf,
	}

	return v
}

// NewProductProfileBadRequest builds a forms service product_profile endpoint
// bad_request error.
func NewProductProfileBadRequest(body *ProductProfileBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewRequestDemoFormresultOK builds a "forms" service "request_demo" endpoint
// result from a HTTP "OK" response.
func NewRequestDemoFormresultOK(body *RequestDemoResponseBody) *formsviews.FormresultView {
	v := &formsviews.FormresultView{
		Success: body.Success,
		Message: body.Message,
	}

	return v
}

// NewRequestDemoBadRequest builds a forms service request_demo endpoint
// bad_request error.
func NewRequestDemoBadRequest(body *RequestDemoBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewTalkToSalesFormresultOK builds a "forms" service "talk_to_sales" endpoint
// result from a HTTP "OK" response.
func NewTalkToSalesFormresultOK(body *TalkToSalesResponseBody) *formsviews.FormresultView {
	v := &formsviews.FormresultView{
		Success: body.Success,
		Message: body.Message,
	}

	return v
}

// NewTalkToSalesBadRequest builds a forms service talk_to_sales endpoint
// bad_request error.
func NewTalkToSalesBadRequest(body *TalkToSalesBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// ValidateNewsletterBadRequestResponseBody runs the validations defined on
// newsletter_bad_request_response_body
func ValidateNewsletterBadRequestResponseBody(body *NewsletterBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateContactBadRequestResponseBody runs the validations defined on
// contact_bad_request_response_body
func ValidateContactBadRequestResponseBody(body *ContactBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateBrochureBadRequestResponseBody runs the validations defined on
// brochure_bad_request_response_body
func ValidateBrochureBadRequestResponseBody(body *BrochureBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateProductProfileBadRequestResponseBody runs the validations defined on
// product_profile_bad_request_response_body
func ValidateProductProfileBadRequestResponseBody(body *ProductProfileBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateRequestDemoBadRequestResponseBody runs the validations defined on
// request_demo_bad_request_response_body
func ValidateRequestDemoBadRequestResponseBody(body *RequestDemoBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateTalkToSalesBadRequestResponseBody runs the validations defined on
// talk_to_sales_bad_request_response_body
func ValidateTalkToSalesBadRequestResponseBody(body *TalkToSalesBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}
