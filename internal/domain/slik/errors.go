package slik

import "errors"

var (
	// ErrInvalidJSON is returned by the paste-to-normalize path; the
	// message is shown to the user verbatim.
	ErrInvalidJSON = errors.New("invalid JSON, check formatting")

	// ErrExtractionFailed wraps vision-model failures. Form state is
	// left untouched when it is returned.
	ErrExtractionFailed = errors.New("failed to extract identity fields from image")

	ErrSlikNotFound = errors.New("slik record not found")
)
