// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health HTTP client types
//
// Command:
// $ goa gen spars/api/design

package client

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

// NewCheckHealthresultOK builds a "health" service "check" endpoint result
// from a HTTP "OK" response.
func NewCheckHealthresultOK(body *CheckResponseBody) *healthviews.HealthresultView {
	v := &healthviews.HealthresultView{
		Status:    body.Status,
		Timestamp: body.Timestamp,
	}

	return v
}
