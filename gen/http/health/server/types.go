// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health HTTP server types
//
// Command:
// $ goa gen spars/api/design

package server

import (
	healthviews "spars/gen/health/views"
)

// CheckResponseBody is the type of the "health" service "check" endpoint HTTP
// response body.
type CheckResponseBody struct {
	// Service status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Server time in RFC 3339 format
	Timestamp *string `form:"timestamp,omitempty" json:"timestamp,omitempty" xml:"timestamp,omitempty"`
}

// NewCheckResponseBody builds the HTTP response body from the result of the
// "check" endpoint of the "health" service.
func NewCheckResponseBody(res *healthviews.HealthresultView) *CheckResponseBody {
	body := &CheckResponseBody{
		Status:    res.Status,
		Timestamp: res.Timestamp,
	}
	return body
}
