// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms HTTP server types
//
// Command:
// $ goa gen spars/api/design

package server

import (
	forms "spars/gen/forms"
	formsviews "spars/gen/forms/views"
	"unicode/utf8"

	goa "goa.design/goa/v3/pkg"
)

// NewsletterRequestBody is the type of the "forms" service "newsletter"
// endpoint HTTP request body.
type NewsletterRequestBody struct {
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
}

// ContactRequestBody is the type of the "forms" service "contact" endpoint
// HTTP request body.
type ContactRequestBody struct {
	// Full name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Phone number (optional)
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Company name (optional)
	Company *string `form:"company,omitempty" json:"company,omitempty" xml:"company,omitempty"`
	// Inquiry category
	InquiryType *string `form:"inquiry_type,omitempty" json:"inquiry_type,omitempty" xml:"inquiry_type,omitempty"`
	// Message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// BrochureRequestBody is the type of the "forms" service "brochure" endpoint
// HTTP request body.
type BrochureRequestBody struct {
	// Full name
	FullName *string `form:"full_name,omitempty" json:"full_name,omitempty" xml:"full_name,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Company name
	Company *string `form:"company,omitempty" json:"company,omitempty" xml:"company,omitempty"`
	// Phone number (optional)
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Job role (optional)
	JobRole *string `form:"job_role,omitempty" json:"job_role,omitempty" xml:"job_role,omitempty"`
	// Marketing consent
	AgreedToMarketing *bool `form:"agreed_to_marketing,omitempty" json:"agreed_to_marketing,omitempty" xml:"agreed_to_marketing,omitempty"`
}

// ProductProfileRequestBody is the type of the "forms" service
// "product_profile" endpoint HTTP request body.
type ProductProfileRequestBody struct {
	// First name
	FirstName *string `form:"first_name,omitempty" json:"first_name,omitempty" xml:"first_name,omitempty"`
	// Last name
	LastName *string `form:"last_name,omitempty" json:"last_name,omitempty" xml:"last_name,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Job title (optional)
	JobTitle *string `form:"job_title,omitempty" json:"job_title,omitempty" xml:"job_title,omitempty"`
	// Company name
	CompanyName *string `form:"company_name,omitempty" json:"company_name,omitempty" xml:"company_name,omitempty"`
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
	FirstName *string `form:"first_name,omitempty" json:"first_name,omitempty" xml:"first_name,omitempty"`
	// Last name
	LastName *string `form:"last_name,omitempty" json:"last_name,omitempty" xml:"last_name,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Company name
	CompanyName *string `form:"company_name,omitempty" json:"company_name,omitempty" xml:"company_name,omitempty"`
	// Company size (optional)
	CompanySize *string `form:"company_size,omitempty" json:"company_size,omitempty" xml:"company_size,omitempty"`
	// Preferred demo date
	PreferredDemoDate *string `form:"preferred_demo_date,omitempty" json:"preferred_demo_date,omitempty" xml:"preferred_demo_date,omitempty"`
	// Preferred demo time (optional)
	PreferredDemoTime *string `form:"preferred_demo_time,omitempty" json:"preferred_demo_time,omitempty" xml:"preferred_demo_time,omitempty"`
	// Anything else we should know (optional)
	AdditionalInformation *string `form:"additional_information,omitempty" json:"additional_information,omitempty" xml:"additional_information,omitempty"`
}

// TalkToSalesRequestBody is the type of the "forms" service "talk_to_sales"
// endpoint HTTP request body.
type TalkToSalesRequestBody struct {
	// Full name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Company name (optional)
	Company *string `form:"company,omitempty" json:"company,omitempty" xml:"company,omitempty"`
	// Message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
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
	Success bool `form:"success" json:"success" xml:"success"`
	// Human-readable confirmation message
	Message string `form:"message" json:"message" xml:"message"`
}

// ContactResponseBody is the type of the "forms" service "contact" endpoint
// HTTP response body.
type ContactResponseBody struct {
	// Whether the submission was accepted
	Success bool `form:"success" json:"success" xml:"success"`
	// Human-readable confirmation message
	Message string `form:"message" json:"message" xml:"message"`
}

// BrochureResponseBody is the type of the "forms" service "brochure" endpoint
// HTTP response body.
type BrochureResponseBody struct {
	// Whether the submission was accepted
	Success bool `form:"success" json:"success" xml:"success"`
	// Human-readable confirmation message
	Message string `form:"message" json:"message" xml:"message"`
	// Whether the requested document is available for download
	HasPdf bool `form:"has_pdf" json:"has_pdf" xml:"has_pdf"`
}

// ProductProfileResponseBody is the type of the "forms" service
// "product_profile" endpoint HTTP response body.
type ProductProfileResponseBody struct {
	// Whether the submission was accepted
	Success bool `form:"success" json:"success" xml:"success"`
	// Human-readable confirmation message
	Message string `form:"message" json:"message" xml:"message"`
	// Whether the requested document is available for download
	HasPdf bool `form:"has_pdf" json:"has_pdf" xml:"has_pdf"`
}

// RequestDemoResponseBody is the type of the "forms" service "request_demo"
// endpoint HTTP response body.
type RequestDemoResponseBody struct {
	// Whether the submission was accepted
	Success bool `form:"success" json:"success" xml:"success"`
	// Human-readable confirmation message
	Message string `form:"message" json:"message" xml:"message"`
}

// TalkToSalesResponseBody is the type of the "forms" service "talk_to_sales"
// endpoint HTTP response body.
type TalkToSalesResponseBody struct {
	// Whether the submission was accepted
	Success bool `form:"success" json:"success" xml:"success"`
	// Human-readable confirmation message
	Message string `form:"message" json:"message" xml:"message"`
}

// NewsletterBadRequestResponseBody is the type of the "forms" service
// "newsletter" endpoint HTTP response body for the "bad_request" error.
type NewsletterBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ContactBadRequestResponseBody is the type of the "forms" service "contact"
// endpoint HTTP response body for the "bad_request" error.
type ContactBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// BrochureBadRequestResponseBody is the type of the "forms" service "brochure"
// endpoint HTTP response body for the "bad_request" error.
type BrochureBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ProductProfileBadRequestResponseBody is the type of the "forms" service
// "product_profile" endpoint HTTP response body for the "bad_request" error.
type ProductProfileBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// RequestDemoBadRequestResponseBody is the type of the "forms" service
// "request_demo" endpoint HTTP response body for the "bad_request" error.
type RequestDemoBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// TalkToSalesBadRequestResponseBody is the type of the "forms" service
// "talk_to_sales" endpoint HTTP response body for the "bad_request" error.
type TalkToSalesBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// NewNewsletterResponseBody builds the HTTP response body from the result of
// the "newsletter" endpoint of the "forms" service.
func NewNewsletterResponseBody(res *formsviews.FormresultView) *NewsletterResponseBody {
	body := &NewsletterResponseBody{
		Success: *res.Success,
		Message: *res.Message,
	}
	return body
}

// NewContactResponseBody builds the HTTP response body from the result of the
// "contact" endpoint of the "forms" service.
func NewContactResponseBody(res *formsviews.FormresultView) *ContactResponseBody {
	body := &ContactResponseBody{
		Success: *res.Success,
		Message: *res.Message,
	}
	return body
}

// NewBrochureResponseBody builds the HTTP response body from the result of the
// "brochure" endpoint of the "forms" service.
func NewBrochureResponseBody(res *formsviews.DocumentformresultView) *BrochureResponseBody {
	body := &BrochureResponseBody{
		Success: *res.Success,
		Message: *res.Message,
		HasPdf:  *res.HasPdf,
	}
	return body
}

// NewProductProfileResponseBody builds the HTTP response body from the result
// of the "product_profile" endpoint of the "forms" service.
func NewProductProfileResponseBody(res *formsviews.DocumentformresultView) *ProductProfileResponseBody {
	body := &ProductProfileResponseBody{
		Success: *res.Success,
		Message: *res.Message,
		HasPdf:  *res.HasPdf,
	}
	return body
}

// NewRequestDemoResponseBody builds the HTTP response body from the result of
// the "request_demo" endpoint of the "forms" service.
func NewRequestDemoResponseBody(res *formsviews.FormresultView) *RequestDemoResponseBody {
	body := &RequestDemoResponseBody{
		Success: *res.Success,
		Message: *res.Message,
	}
	return body
}

// NewTalkToSalesResponseBody builds the HTTP response body from the result of
// the "talk_to_sales" endpoint of the "forms" service.
func NewTalkToSalesResponseBody(res *formsviews.FormresultView) *TalkToSalesResponseBody {
	body := &TalkToSalesResponseBody{
		Success: *res.Success,
		Message: *res.Message,
	}
	return body
}

// NewNewsletterBadRequestResponseBody builds the HTTP response body from the
// result of the "newsletter" endpoint of the "forms" service.
func NewNewsletterBadRequestResponseBody(res *goa.ServiceError) *NewsletterBadRequestResponseBody {
	body := &NewsletterBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewContactBadRequestResponseBody builds the HTTP response body from the
// result of the "contact" endpoint of the "forms" service.
func NewContactBadRequestResponseBody(res *goa.ServiceError) *ContactBadRequestResponseBody {
	body := &ContactBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewBrochureBadRequestResponseBody builds the HTTP response body from the
// result of the "brochure" endpoint of the "forms" service.
func NewBrochureBadRequestResponseBody(res *goa.ServiceError) *BrochureBadRequestResponseBody {
	body := &BrochureBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewProductProfileBadRequestResponseBody builds the HTTP response body from
// the result of the "product_profile" endpoint of the "forms" service.
func NewProductProfileBadRequestResponseBody(res *goa.ServiceError) *ProductProfileBadRequestResponseBody {
	body := &ProductProfileBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewRequestDemoBadRequestResponseBody builds the HTTP response body from the
// result of the "request_demo" endpoint of the "forms" service.
func NewRequestDemoBadRequestResponseBody(res *goa.ServiceError) *RequestDemoBadRequestResponseBody {
	body := &RequestDemoBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewTalkToSalesBadRequestResponseBody builds the HTTP response body from the
// result of the "talk_to_sales" endpoint of the "forms" service.
func NewTalkToSalesBadRequestResponseBody(res *goa.ServiceError) *TalkToSalesBadRequestResponseBody {
	body := &TalkToSalesBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewNewsletterPayload builds a forms service newsletter endpoint payload.
func NewNewsletterPayload(body *NewsletterRequestBody) *forms.NewsletterPayload {
	v := &forms.NewsletterPayload{
		Email: *body.Email,
	}

	return v
}

// NewContactPayload builds a forms service contact endpoint payload.
func NewContactPayload(body *ContactRequestBody) *forms.ContactPayload {
	v := &forms.ContactPayload{
		Name:        *body.Name,
		Email:       *body.Email,
		Phone:       body.Phone,
		Company:     body.Company,
		InquiryType: *body.InquiryType,
		Message:     *body.Message,
	}

	return v
}

// NewBrochurePayload builds a forms service brochure endpoint payload.
func NewBrochurePayload(body *BrochureRequestBody) *forms.BrochurePayload {
	v := &forms.BrochurePayload{
		FullName:          *body.FullName,
		Email:             *body.Email,
		Company:           *body.Company,
		Phone:             body.Phone,
		JobRole:           body.JobRole,
		AgreedToMarketing: *body.AgreedToMarketing,
	}

	return v
}

// NewProductProfilePayload builds a forms service product_profile endpoint
// payload.
func NewProductProfilePayload(body *ProductProfileRequestBody) *forms.ProductProfilePayload {
	v := &forms.ProductProfilePayload{
		FirstName:     *body.FirstName,
		LastName:      *body.LastName,
		Email:         *body.Email,
		Phone:         *body.Phone,
		JobTitle:      body.JobTitle,
		CompanyName:   *body.CompanyName,
		Industry:      body.Industry,
		CompanySize:   body.CompanySize,
		Website:       body.Website,
		Address:       body.Address,
		CurrentSystem: body.CurrentSystem,
		Warehouses:    body.Warehouses,
		Users:         body.Users,
		Requirements:  body.Requirements,
		Timeline:      body.Timeline,
	}

	return v
}

// NewRequestDemoPayload builds a forms service request_demo endpoint payload.
func NewRequestDemoPayload(body *RequestDemoRequestBody) *forms.RequestDemoPayload {
	v := &forms.RequestDemoPayload{
		FirstName:             *body.FirstName,
		LastName:              *body.LastName,
		Email:                 *body.Email,
		Phone:                 *body.Phone,
		CompanyName:           *body.CompanyName,
		CompanySize:           body.CompanySize,
		PreferredDemoDate:     *body.PreferredDemoDate,
		PreferredDemoTime:     body.PreferredDemoTime,
		AdditionalInformation: body.AdditionalInformation,
	}

	return v
}

// NewTalkToSalesPayload builds a forms service talk_to_sales endpoint payload.
func NewTalkToSalesPayload(body *TalkToSalesRequestBody) *forms.TalkToSalesPayload {
	v := &forms.TalkToSalesPayload{
		Name:          *body.Name,
		Email:         *body.Email,
		Phone:         *body.Phone,
		Company:       body.Company,
		Message:       *body.Message,
		CurrentSystem: body.CurrentSystem,
		Warehouses:    body.Warehouses,
		Users:         body.Users,
		Requirements:  body.Requirements,
		Timeline:      body.Timeline,
	}

	return v
}

// ValidateNewsletterRequestBody runs the validations defined on
// NewsletterRequestBody
func ValidateNewsletterRequestBody(body *NewsletterRequestBody) (err error) {
	if body.Email == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("email", "body"))
	}
	if body.Email != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", *body.Email, goa.FormatEmail))
	}
	return
}

// ValidateContactRequestBody runs the validations defined on ContactRequestBody
func ValidateContactRequestBody(body *ContactRequestBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Email == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("email", "body"))
	}
	if body.InquiryType == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("inquiry_type", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Name != nil {
		if utf8.RuneCountInString(*body.Name) < 2 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", *body.Name, utf8.RuneCountInString(*body.Name), 2, true))
		}
	}
	if body.Name != nil {
		if utf8.RuneCountInString(*body.Name) > 100 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", *body.Name, utf8.RuneCountInString(*body.Name), 100, false))
		}
	}
	if body.Email != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", *body.Email, goa.FormatEmail))
	}
	if body.Message != nil {
		if utf8.RuneCountInString(*body.Message) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", *body.Message, utf8.RuneCountInString(*body.Message), 1, true))
		}
	}
	if body.Message != nil {
		if utf8.RuneCountInString(*body.Message) > 5000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", *body.Message, utf8.RuneCountInString(*body.Message), 5000, false))
		}
	}
	return
}

// ValidateBrochureRequestBody runs the validations defined on
// BrochureRequestBody
func ValidateBrochureRequestBody(body *BrochureRequestBody) (err error) {
	if body.FullName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("full_name", "body"))
	}
	if body.Email == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("email", "body"))
	}
	if body.Company == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("company", "body"))
	}
	if body.AgreedToMarketing == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("agreed_to_marketing", "body"))
	}
	if body.FullName != nil {
		if utf8.RuneCountInString(*body.FullName) < 2 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.full_name", *body.FullName, utf8.RuneCountInString(*body.FullName), 2, true))
		}
	}
	if body.FullName != nil {
		if utf8.RuneCountInString(*body.FullName) > 100 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.full_name", *body.FullName, utf8.RuneCountInString(*body.FullName), 100, false))
		}
	}
	if body.Email != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", *body.Email, goa.FormatEmail))
	}
	if body.Company != nil {
		if utf8.RuneCountInString(*body.Company) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.company", *body.Company, utf8.RuneCountInString(*body.Company), 1, true))
		}
	}
	return
}

// ValidateProductProfileRequestBody runs the validations defined on
// product_profile_request_body
func ValidateProductProfileRequestBody(body *ProductProfileRequestBody) (err error) {
	if body.FirstName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("first_name", "body"))
	}
	if body.LastName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("last_name", "body"))
	}
	if body.Email == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("email", "body"))
	}
	if body.Phone == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("phone", "body"))
	}
	if body.CompanyName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("company_name", "body"))
	}
	if body.FirstName != nil {
		if utf8.RuneCountInString(*body.FirstName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.first_name", *body.FirstName, utf8.RuneCountInString(*body.FirstName), 1, true))
		}
	}
	if body.LastName != nil {
		if utf8.RuneCountInString(*body.LastName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.last_name", *body.LastName, utf8.RuneCountInString(*body.LastName), 1, true))
		}
	}
	if body.Email != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", *body.Email, goa.FormatEmail))
	}
	if body.Phone != nil {
		if utf8.RuneCountInString(*body.Phone) < 10 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", *body.Phone, utf8.RuneCountInString(*body.Phone), 10, true))
		}
	}
	if body.Phone != nil {
		if utf8.RuneCountInString(*body.Phone) > 20 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", *body.Phone, utf8.RuneCountInString(*body.Phone), 20, false))
		}
	}
	if body.CompanyName != nil {
		if utf8.RuneCountInString(*body.CompanyName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.company_name", *body.CompanyName, utf8.RuneCountInString(*body.CompanyName), 1, true))
		}
	}
	return
}

// ValidateRequestDemoRequestBody runs the validations defined on
// request_demo_request_body
func ValidateRequestDemoRequestBody(body *RequestDemoRequestBody) (err error) {
	if body.FirstName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("first_name", "body"))
	}
	if body.LastName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("last_name", "body"))
	}
	if body.Email == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("email", "body"))
	}
	if body.Phone == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("phone", "body"))
	}
	if body.CompanyName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("company_name", "body"))
	}
	if body.PreferredDemoDate == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("preferred_demo_date", "body"))
	}
	if body.FirstName != nil {
		if utf8.RuneCountInString(*body.FirstName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.first_name", *body.FirstName, utf8.RuneCountInString(*body.FirstName), 1, true))
		}
	}
	if body.LastName != nil {
		if utf8.RuneCountInString(*body.LastName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.last_name", *body.LastName, utf8.RuneCountInString(*body.LastName), 1, true))
		}
	}
	if body.Email != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", *body.Email, goa.FormatEmail))
	}
	if body.Phone != nil {
		if utf8.RuneCountInString(*body.Phone) < 10 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", *body.Phone, utf8.RuneCountInString(*body.Phone), 10, true))
		}
	}
	if body.Phone != nil {
		if utf8.RuneCountInString(*body.Phone) > 20 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", *body.Phone, utf8.RuneCountInString(*body.Phone), 20, false))
		}
	}
	if body.CompanyName != nil {
		if utf8.RuneCountInString(*body.CompanyName) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.company_name", *body.CompanyName, utf8.RuneCountInString(*body.CompanyName), 1, true))
		}
	}
	return
}

// ValidateTalkToSalesRequestBody runs the validations defined on
// talk_to_sales_request_body
func ValidateTalkToSalesRequestBody(body *TalkToSalesRequestBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Email == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("email", "body"))
	}
	if body.Phone == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("phone", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Name != nil {
		if utf8.RuneCountInString(*body.Name) < 2 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", *body.Name, utf8.RuneCountInString(*body.Name), 2, true))
		}
	}
	if body.Name != nil {
		if utf8.RuneCountInString(*body.Name) > 100 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", *body.Name, utf8.RuneCountInString(*body.Name), 100, false))
		}
	}
	if body.Email != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", *body.Email, goa.FormatEmail))
	}
	if body.Phone != nil {
		if utf8.RuneCountInString(*body.Phone) < 10 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", *body.Phone, utf8.RuneCountInString(*body.Phone), 10, true))
		}
	}
	if body.Phone != nil {
		if utf8.RuneCountInString(*body.Phone) > 20 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.phone", *body.Phone, utf8.RuneCountInString(*body.Phone), 20, false))
		}
	}
	if body.Message != nil {
		if utf8.RuneCountInString(*body.Message) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", *body.Message, utf8.RuneCountInString(*body.Message), 1, true))
		}
	}
	if body.Message != nil {
		if utf8.RuneCountInString(*body.Message) > 5000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", *body.Message, utf8.RuneCountInString(*body.Message), 5000, false))
		}
	}
	return
}
