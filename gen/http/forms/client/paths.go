// Code generated by goa v3.23.1, DO NOT EDIT.
//
// HTTP request path constructors for the forms service.
//
// Command:
// $ goa gen spars/api/design

package client

// NewsletterFormsPath returns the URL path to the forms service newsletter HTTP endpoint.
func NewsletterFormsPath() string {
	return "/api/newsletter"
}

// ContactFormsPath returns the URL path to the forms service contact HTTP endpoint.
func ContactFormsPath() string {
	return "/api/contact"
}

// BrochureFormsPath returns the URL path to the forms service brochure HTTP endpoint.
func BrochureFormsPath() string {
	return "/api/brochure"
}

// ProductProfileFormsPath returns the URL path to the forms service product_profile HTTP endpoint.
func ProductProfileFormsPath() string {
	return "/api/product-profile"
}

// RequestDemoFormsPath returns the URL path to the forms service request_demo HTTP endpoint.
func RequestDemoFormsPath() string {
	return "/api/request-demo"
}

// TalkToSalesFormsPath returns the URL path to the forms service talk_to_sales HTTP endpoint.
func TalkToSalesFormsPath() string {
	return "/api/talk-to-sales"
}
