// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms HTTP server
//
// Command:
// $ goa gen spars/api/design

package server

import (
	"context"
	"net/http"
	forms "spars/gen/forms"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// Server lists the forms service endpoint HTTP handlers.
type Server struct {
	Mounts         []*MountPoint
	Newsletter     http.Handler
	Contact        http.Handler
	Brochure       http.Handler
	ProductProfile http.Handler
	RequestDemo    http.Handler
	TalkToSales    http.Handler
}

// MountPoint holds information about the mounted endpoints.
type MountPoint struct {
	// Method is the name of the service method served by the mounted HTTP handler.
	Method string
	// Verb is the HTTP method used to match requests to the mounted handler.
	Verb string
	// Pattern is the HTTP request path pattern used to match requests to the
	// mounted handler.
	Pattern string
}

// New instantiates HTTP handlers for all the forms service endpoints using the
// provided encoder and decoder. The handlers are mounted on the given mux
// using the HTTP verb and path defined in the design. errhandler is called
// whenever a response fails to be encoded. formatter is used to format errors
// returned by the service methods prior to encoding. Both errhandler and
// formatter are optional and can be nil.
func New(
	e *forms.Endpoints,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) *Server {
	return &Server{
		Mounts: []*MountPoint{
			{"Newsletter", "POST", "/api/newsletter"},
			{"Contact", "POST", "/api/contact"},
			{"Brochure", "POST", "/api/brochure"},
			{"ProductProfile", "POST", "/api/product-profile"},
			{"RequestDemo", "POST", "/api/request-demo"},
			{"TalkToSales", "POST", "/api/talk-to-sales"},
		},
		Newsletter:     NewNewsletterHandler(e.Newsletter, mux, decoder, encoder, errhandler, formatter),
		Contact:        NewContactHandler(e.Contact, mux, decoder, encoder, errhandler, formatter),
		Brochure:       NewBrochureHandler(e.Brochure, mux, decoder, encoder, errhandler, formatter),
		ProductProfile: NewProductProfileHandler(e.ProductProfile, mux, decoder, encoder, errhandler, formatter),
		RequestDemo:    NewRequestDemoHandler(e.RequestDemo, mux, decoder, encoder, errhandler, formatter),
		TalkToSales:    NewTalkToSalesHandler(e.TalkToSales, mux, decoder, encoder, errhandler, formatter),
	}
}

// Service returns the name of the service served.
func (s *Server) Service() string { return "forms" }

// Use wraps the server handlers with the given middleware.
func (s *Server) Use(m func(http.Handler) http.Handler) {
	s.Newsletter = m(s.Newsletter)
	s.Contact = m(s.Contact)
	s.Brochure = m(s.Brochure)
	s.ProductProfile = m(s.ProductProfile)
	s.RequestDemo = m(s.RequestDemo)
	s.TalkToSales = m(s.TalkToSales)
}

// MethodNames returns the methods served.
func (s *Server) MethodNames() []string { return forms.MethodNames[:] }

// Mount configures the mux to serve the forms endpoints.
func Mount(mux goahttp.Muxer, h *Server) {
	MountNewsletterHandler(mux, h.Newsletter)
	MountContactHandler(mux, h.Contact)
	MountBrochureHandler(mux, h.Brochure)
	MountProductProfileHandler(mux, h.ProductProfile)
	MountRequestDemoHandler(mux, h.RequestDemo)
	MountTalkToSalesHandler(mux, h.TalkToSales)
}

// Mount configures the mux to serve the forms endpoints.
func (s *Server) Mount(mux goahttp.Muxer) {
	Mount(mux, s)
}

// MountNewsletterHandler configures the mux to serve the "forms" service
// "newsletter" endpoint.
func MountNewsletterHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("POST", "/api/newsletter", f)
}

// NewNewsletterHandler creates a HTTP handler which loads the HTTP request and
// calls the "forms" service "newsletter" endpoint.
func NewNewsletterHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeNewsletterRequest(mux, decoder)
		encodeResponse = EncodeNewsletterResponse(encoder)
		encodeError    = EncodeNewsletterError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "newsletter")
		ctx = context.WithValue(ctx, goa.ServiceKey, "forms")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountContactHandler configures the mux to serve the "forms" service
// "contact" endpoint.
func MountContactHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("POST", "/api/contact", f)
}

// NewContactHandler creates a HTTP handler which loads the HTTP request and
// calls the "forms" service "contact" endpoint.
func NewContactHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeContactRequest(mux, decoder)
		encodeResponse = EncodeContactResponse(encoder)
		encodeError    = EncodeContactError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "contact")
		ctx = context.WithValue(ctx, goa.ServiceKey, "forms")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountBrochureHandler configures the mux to serve the "forms" service
// "brochure" endpoint.
func MountBrochureHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("POST", "/api/brochure", f)
}

// NewBrochureHandler creates a HTTP handler which loads the HTTP request and
// calls the "forms" service "brochure" endpoint.
func NewBrochureHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeBrochureRequest(mux, decoder)
		encodeResponse = EncodeBrochureResponse(encoder)
		encodeError    = EncodeBrochureError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "brochure")
		ctx = context.WithValue(ctx, goa.ServiceKey, "forms")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountProductProfileHandler configures the mux to serve the "forms" service
// "product_profile" endpoint.
func MountProductProfileHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("POST", "/api/product-profile", f)
}

// NewProductProfileHandler creates a HTTP handler which loads the HTTP request
// and calls the "forms" service "product_profile" endpoint.
func NewProductProfileHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeProductProfileRequest(mux, decoder)
		encodeResponse = EncodeProductProfileResponse(encoder)
		encodeError    = EncodeProductProfileError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "product_profile")
		ctx = context.WithValue(ctx, goa.ServiceKey, "forms")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountRequestDemoHandler configures the mux to serve the "forms" service
// "request_demo" endpoint.
func MountRequestDemoHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("POST", "/api/request-demo", f)
}

// NewRequestDemoHandler creates a HTTP handler which loads the HTTP request
// and calls the "forms" service "request_demo" endpoint.
func NewRequestDemoHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeRequestDemoRequest(mux, decoder)
		encodeResponse = EncodeRequestDemoResponse(encoder)
		encodeError    = EncodeRequestDemoError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "request_demo")
		ctx = context.WithValue(ctx, goa.ServiceKey, "forms")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountTalkToSalesHandler configures the mux to serve the "forms" service
// "talk_to_sales" endpoint.
func MountTalkToSalesHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("POST", "/api/talk-to-sales", f)
}

// NewTalkToSalesHandler creates a HTTP handler which loads the HTTP request
// and calls the "forms" service "talk_to_sales" endpoint.
func NewTalkToSalesHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeTalkToSalesRequest(mux, decoder)
		encodeResponse = EncodeTalkToSalesResponse(encoder)
		encodeError    = EncodeTalkToSalesError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "talk_to_sales")
		ctx = context.WithValue(ctx, goa.ServiceKey, "forms")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}
