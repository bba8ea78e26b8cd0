// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms HTTP client encoders and decoders
//
// Command:
// $ goa gen spars/api/design

package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	forms "spars/gen/forms"
	formsviews "spars/gen/forms/views"

	goahttp "goa.design/goa/v3/http"
)

// BuildNewsletterRequest instantiates a HTTP request object with method and
// path set to call the "forms" service "newsletter" endpoint
func (c *Client) BuildNewsletterRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: NewsletterFormsPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("forms", "newsletter", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeNewsletterRequest returns an encoder for requests sent to the forms
// newsletter server.
func EncodeNewsletterRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*forms.NewsletterPayload)
		if !ok {
			return goahttp.ErrInvalidType("forms", "newsletter", "*forms.NewsletterPayload", v)
		}
		body := NewNewsletterRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("forms", "newsletter", err)
		}
		return nil
	}
}

// DecodeNewsletterResponse returns a decoder for responses returned by the
// forms newsletter endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeNewsletterResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - error: internal error
func DecodeNewsletterResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body NewsletterResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "newsletter", err)
			}
			p := NewNewsletterFormresultOK(&body)
			view := "default"
			vres := &formsviews.Formresult{Projected: p, View: view}
			if err = formsviews.ValidateFormresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("forms", "newsletter", err)
			}
			res := forms.NewFormresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body NewsletterBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "newsletter", err)
			}
			err = ValidateNewsletterBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("forms", "newsletter", err)
			}
			return nil, NewNewsletterBadRequest(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("forms", "newsletter", resp.StatusCode, string(body))
		}
	}
}

// BuildContactRequest instantiates a HTTP request object with method and path
// set to call the "forms" service "contact" endpoint
func (c *Client) BuildContactRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ContactFormsPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("forms", "contact", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeContactRequest returns an encoder for requests sent to the forms
// contact server.
func EncodeContactRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*forms.ContactPayload)
		if !ok {
			return goahttp.ErrInvalidType("forms", "contact", "*forms.ContactPayload", v)
		}
		body := NewContactRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("forms", "contact", err)
		}
		return nil
	}
}

// DecodeContactResponse returns a decoder for responses returned by the forms
// contact endpoint. restoreBody controls whether the response body should be
// restored after having been read.
// DecodeContactResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - error: internal error
func DecodeContactResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body ContactResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "contact", err)
			}
			p := NewContactFormresultOK(&body)
			view := "default"
			vres := &formsviews.Formresult{Projected: p, View: view}
			if err = formsviews.ValidateFormresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("forms", "contact", err)
			}
			res := forms.NewFormresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body ContactBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "contact", err)
			}
			err = ValidateContactBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("forms", "contact", err)
			}
			return nil, NewContactBadRequest(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("forms", "contact", resp.StatusCode, string(body))
		}
	}
}

// BuildBrochureRequest instantiates a HTTP request object with method and path
// set to call the "forms" service "brochure" endpoint
func (c *Client) BuildBrochureRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: BrochureFormsPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("forms", "brochure", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeBrochureRequest returns an encoder for requests sent to the forms
// brochure server.
func EncodeBrochureRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*forms.BrochurePayload)
		if !ok {
			return goahttp.ErrInvalidType("forms", "brochure", "*forms.BrochurePayload", v)
		}
		body := NewBrochureRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("forms", "brochure", err)
		}
		return nil
	}
}

// DecodeBrochureResponse returns a decoder for responses returned by the forms
// brochure endpoint. restoreBody controls whether the response body should be
// restored after having been read.
// DecodeBrochureResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - error: internal error
func DecodeBrochureResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body BrochureResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "brochure", err)
			}
			p := NewBrochureDocumentformresultOK(&body)
			view := "default"
			vres := &formsviews.Documentformresult{Projected: p, View: view}
			if err = formsviews.ValidateDocumentformresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("forms", "brochure", err)
			}
			res := forms.NewDocumentformresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body BrochureBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "brochure", err)
			}
			err = ValidateBrochureBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("forms", "brochure", err)
			}
			return nil, NewBrochureBadRequest(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("forms", "brochure", resp.StatusCode, string(body))
		}
	}
}

// BuildProductProfileRequest instantiates a HTTP request object with method
// and path set to call the "forms" service "product_profile" endpoint
func (c *Client) BuildProductProfileRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ProductProfileFormsPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("forms", "product_profile", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeProductProfileRequest returns an encoder for requests sent to the
// forms product_profile server.
func EncodeProductProfileRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*forms.ProductProfilePayload)
		if !ok {
			return goahttp.ErrInvalidType("forms", "product_profile", "*forms.ProductProfilePayload", v)
		}
		body := NewProductProfileRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("forms", "product_profile", err)
		}
		return nil
	}
}

// DecodeProductProfileResponse returns a decoder for responses returned by the
// forms product_profile endpoint. restoreBody controls whether the response
// body should be restored after having been read.
// DecodeProductProfileResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - error: internal error
func DecodeProductProfileResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body ProductProfileResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "product_profile", err)
			}
			p := NewProductProfileDocumentformresultOK(&body)
			view := "default"
			vres := &formsviews.Documentformresult{Projected: p, View: view}
			if err = formsviews.ValidateDocumentformresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("forms", "product_profile", err)
			}
			res := forms.NewDocumentformresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body ProductProfileBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "product_profile", err)
			}
			err = ValidateProductProfileBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("forms", "product_profile", err)
			}
			return nil, NewProductProfileBadRequest(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("forms", "product_profile", resp.StatusCode, string(body))
		}
	}
}

// BuildRequestDemoRequest instantiates a HTTP request object with method and
// path set to call the "forms" service "request_demo" endpoint
func (c *Client) BuildRequestDemoRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: RequestDemoFormsPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("forms", "request_demo", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeRequestDemoRequest returns an encoder for requests sent to the forms
// request_demo server.
func EncodeRequestDemoRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*forms.RequestDemoPayload)
		if !ok {
			return goahttp.ErrInvalidType("forms", "request_demo", "*forms.RequestDemoPayload", v)
		}
		body := NewRequestDemoRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("forms", "request_demo", err)
		}
		return nil
	}
}

// DecodeRequestDemoResponse returns a decoder for responses returned by the
// forms request_demo endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeRequestDemoResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - error: internal error
func DecodeRequestDemoResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body RequestDemoResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "request_demo", err)
			}
			p := NewRequestDemoFormresultOK(&body)
			view := "default"
			vres := &formsviews.Formresult{Projected: p, View: view}
			if err = formsviews.ValidateFormresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("forms", "request_demo", err)
			}
			res := forms.NewFormresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body RequestDemoBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "request_demo", err)
			}
			err = ValidateRequestDemoBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("forms", "request_demo", err)
			}
			return nil, NewRequestDemoBadRequest(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("forms", "request_demo", resp.StatusCode, string(body))
		}
	}
}

// BuildTalkToSalesRequest instantiates a HTTP request object with method and
// path set to call the "forms" service "talk_to_sales" endpoint
func (c *Client) BuildTalkToSalesRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: TalkToSalesFormsPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("forms", "talk_to_sales", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeTalkToSalesRequest returns an encoder for requests sent to the forms
// talk_to_sales server.
func EncodeTalkToSalesRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*forms.TalkToSalesPayload)
		if !ok {
			return goahttp.ErrInvalidType("forms", "talk_to_sales", "*forms.TalkToSalesPayload", v)
		}
		body := NewTalkToSalesRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("forms", "talk_to_sales", err)
		}
		return nil
	}
}

// DecodeTalkToSalesResponse returns a decoder for responses returned by the
// forms talk_to_sales endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeTalkToSalesResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - error: internal error
func DecodeTalkToSalesResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body TalkToSalesResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "talk_to_sales", err)
			}
			p := NewTalkToSalesFormresultOK(&body)
			view := "default"
			vres := &formsviews.Formresult{Projected: p, View: view}
			if err = formsviews.ValidateFormresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("forms", "talk_to_sales", err)
			}
			res := forms.NewFormresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body TalkToSalesBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("forms", "talk_to_sales", err)
			}
			err = ValidateTalkToSalesBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("forms", "talk_to_sales", err)
			}
			return nil, NewTalkToSalesBadRequest(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("forms", "talk_to_sales", resp.StatusCode, string(body))
		}
	}
}
