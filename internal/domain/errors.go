package domain

import "errors"

// Error kinds. Adapters wrap these together with the underlying cause, so
// callers can branch with errors.Is while the message keeps full context.
var (
	// ErrNetwork means a request could not be sent or its response read.
	ErrNetwork = errors.New("network error")

	// ErrDecode means an NWS response was not valid JSON or lacked a required field.
	ErrDecode = errors.New("decode error")

	// ErrFormat means a forecast period could not be rendered.
	ErrFormat = errors.New("format error")

	// ErrArgument means the command line was invalid.
	ErrArgument = errors.New("invalid argument")
)
