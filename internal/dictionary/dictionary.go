package dictionary

import (
	"context"
	"errors"
)

//go:generate mockgen -source=dictionary.go -destination=../mocks/dictionary/mock_dictionary.go -package=mock_dictionary

// DefinitionLookup resolves a single definition string for a word.
type DefinitionLookup interface {
	LookupDefinition(ctx context.Context, word string) (string, error)
}

var (
	// ErrNotFound is returned when the dictionary has no entry for the word.
	ErrNotFound = errors.New("word not found")
	// ErrUnexpectedStatus is returned for any non-200 response other than 404.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrNoDefinition is returned when the response does not carry a definition
	// where one is expected.
	ErrNoDefinition = errors.New("no definition in response")
)

// FailureReason is a coarse classification of a lookup error, used for logging.
type FailureReason string

const (
	FailureReasonStatus  FailureReason = "status"
	FailureReasonShape   FailureReason = "shape"
	FailureReasonNetwork FailureReason = "network"
)

// ReasonOf classifies err. Errors which are neither a status nor a shape problem
// are reported as network failures.
func ReasonOf(err error) FailureReason {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnexpectedStatus):
		return FailureReasonStatus
	case errors.Is(err, ErrNoDefinition):
		return FailureReasonShape
	}

	var decodeErr *decodeError
	if errors.As(err, &decodeErr) {
		return FailureReasonShape
	}
	return FailureReasonNetwork
}

// decodeError marks a response body which could not be decoded.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string {
	return "invalid response body: " + e.err.Error()
}

func (e *decodeError) Unwrap() error {
	return e.err
}

// NewDecodeError wraps a JSON decoding failure so that ReasonOf reports it as
// a shape failure.
func NewDecodeError(err error) error {
	return &decodeError{err: err}
}
