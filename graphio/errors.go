package graphio

import "errors"

// Sentinel errors.
var (
	// ErrUnknownInputFormat is returned for an unrecognized input format name.
	ErrUnknownInputFormat = errors.New("graphio: unknown input format")
	// ErrUnknownOutputFormat is returned for an unrecognized output format name.
	ErrUnknownOutputFormat = errors.New("graphio: unknown output format")
	// ErrInputFileNotFound is returned when the input path does not exist or cannot be opened.
	ErrInputFileNotFound = errors.New("graphio: input graph file not found")
	// ErrMalformedInput reports a syntax or consistency error in an input file.
	ErrMalformedInput = errors.New("graphio: malformed input")
	// ErrOutputFileCreateFailed is returned when a snapshot cannot be created or stored.
	ErrOutputFileCreateFailed = errors.New("graphio: failed to create output")
)
