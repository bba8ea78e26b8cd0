// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health views
//
// Command:
// $ goa gen spars/api/design

package views

import (
	goa "goa.design/goa/v3/pkg"
)

// Healthresult is the viewed result type that is projected based on a view.
type Healthresult struct {
	// Type to project
	Projected *HealthresultView
	// View to render
	View string
}

// HealthresultView is a type that runs validations on a projected type.
type HealthresultView struct {
	// Service status
	Status *string
	// Server time in RFC 3339 format
	Timestamp *string
}

var (
	// HealthresultMap is a map indexing the attribute names of Healthresult by
	// view name.
	HealthresultMap = map[string][]string{
		"default": {
			"status",
			"timestamp",
		},
	}
)

// ValidateHealthresult runs the validations defined on the viewed result type
// Healthresult.
func ValidateHealthresult(result *Healthresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateHealthresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateHealthresultView runs the validations defined on HealthresultView
// using the "default" view.
func ValidateHealthresultView(result *HealthresultView) (err error) {

	return
}
