// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot views
//
// Command:
// $ goa gen spars/api/design

package views

import (
	goa "goa.design/goa/v3/pkg"
)

// Chatresult is the viewed result type that is projected based on a view.
type Chatresult struct {
	// Type to project
	Projected *ChatresultView
	// View to render
	View string
}

// ChatresultView is a type that runs validations on a projected type.
type ChatresultView struct {
	// Assistant reply
	Response *string
	// Whether a reply was produced
	Success *bool
}

var (
	// ChatresultMap is a map indexing the attribute names of Chatresult by view
	// name.
	ChatresultMap = map[string][]string{
		"default": {
			"response",
			"success",
		},
	}
)

// ValidateChatresult runs the validations defined on the viewed result type
// Chatresult.
func ValidateChatresult(result *Chatresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateChatresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateChatresultView runs the validations defined on ChatresultView using
// the "default" view.
func ValidateChatresultView(result *ChatresultView) (err error) {
	if result.Response == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("response", "result"))
	}
	if result.Success == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("success", "result"))
	}
	return
}
