package adapter

import "errors"

// Errors mapped from origin responses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("origin unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRedirected is returned by API calls that were answered with a
	// redirect, which the origin uses to send anonymous users to the login
	// page.
	ErrRedirected = errors.New("request was redirected")

	// ErrUnexpectedStatus covers any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrRequestTooLarge is returned by Fetch when a forwarded request body
	// exceeds the size limit.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
	ErrDecodingResponse = errors.New("error decoding response")
)
