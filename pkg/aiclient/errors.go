package aiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the generation service rejects the credential.
	ErrUnauthorized = errors.New("unauthorized: please log in again")
	// ErrGenerationFailed is the base of every *GenerationError.
	ErrGenerationFailed = errors.New("content generation failed")
	// ErrExtractionFailed is the base of every *ExtractionError.
	ErrExtractionFailed = errors.New("no usable content in generation response")
)

// GenerationError reports a failure on the remote side: a "failed" status,
// a non-2xx response or a transport error. Message is the server-supplied
// text when one was available.
type GenerationError struct {
	Modality   Modality
	StatusCode int
	Message    string
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s generation failed (status %d): %s", e.Modality, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s generation failed: %s", e.Modality, e.Message)
}

func (e *GenerationError) Unwrap() error { return ErrGenerationFailed }

// ExtractionError means the call completed but the payload matched none of
// the recognised shapes for its modality.
type ExtractionError struct {
	Modality Modality
	Reason   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed: %s", e.Modality, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return ErrExtractionFailed }

func newGenerationError(m Modality, status int, msg string) *GenerationError {
	if msg == "" {
		msg = "unknown error"
	}
	return &GenerationError{Modality: m, StatusCode: status, Message: msg}
}
