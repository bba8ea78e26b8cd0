// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health HTTP client CLI support package
//
// Command:
// $ goa gen spars/api/design

package client
