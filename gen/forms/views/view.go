// Code generated by goa v3.23.1, DO NOT EDIT.
//
// forms views
//
// Command:
// $ goa gen spars/api/design

package views

import (
	goa "goa.design/goa/v3/pkg"
)

// Formresult is the viewed result type that is projected based on a view.
type Formresult struct {
	// Type to project
	Projected *FormresultView
	// View to render
	View string
}

// Documentformresult is the viewed result type that is projected based on a
// view.
type Documentformresult struct {
	// Type to project
	Projected *DocumentformresultView
	// View to render
	View string
}

// FormresultView is a type that runs validations on a projected type.
type FormresultView struct {
	// Whether the submission was accepted
	Success *bool
	// Human-readable confirmation message
	Message *string
}

// DocumentformresultView is a type that runs validations on a projected type.
type DocumentformresultView struct {
	// Whether the submission was accepted
	Success *bool
	// Human-readable confirmation message
	Message *string
	// Whether the requested document is available for download
	HasPdf *bool
}

var (
	// FormresultMap is a map indexing the attribute names of Formresult by view
	// name.
	FormresultMap = map[string][]string{
		"default": {
			"success",
			"message",
		},
	}
	// DocumentformresultMap is a map indexing the attribute names of
	// Documentformresult by view name.
	DocumentformresultMap = map[string][]string{
		"default": {
			"success",
			"message",
			"has_pdf",
		},
	}
)

// ValidateFormresult runs the validations defined on the viewed result type
// Formresult.
func ValidateFormresult(result *Formresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateFormresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateDocumentformresult runs the validations defined on the viewed result
// type Documentformresult.
func ValidateDocumentformresult(result *Documentformresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateDocumentformresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateFormresultView runs the validations defined on FormresultView using
// the "default" view.
func ValidateFormresultView(result *FormresultView) (err error) {
	if result.Success == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("success", "result"))
	}
	if result.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "result"))
	}
	return
}

// ValidateDocumentformresultView runs the validations defined on
// DocumentformresultView using the "default" view.
func ValidateDocumentformresultView(result *DocumentformresultView) (err error) {
	if result.Success == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("success", "result"))
	}
	if result.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "result"))
	}
	if result.HasPdf == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("has_pdf", "result"))
	}
	return
}
