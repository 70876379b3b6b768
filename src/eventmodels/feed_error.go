package eventmodels

import (
	"errors"
	"fmt"
)

type FeedErrorKind string

const (
	// TransportFeedError is a failed request or a non-success status.
	TransportFeedError FeedErrorKind = "transport"
	// DecodeFeedError is a payload that could not be read in the expected encoding.
	DecodeFeedError FeedErrorKind = "decode"
	// StructuralFeedError is a decoded payload missing required columns or shape.
	StructuralFeedError FeedErrorKind = "structural"
)

type FeedError struct {
	Kind    FeedErrorKind
	Feed    FeedName
	Message string
	Cause   error
}

func (e *FeedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s feed %s error: %s: %v", e.Feed, e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s feed %s error: %s", e.Feed, e.Kind, e.Message)
}

func (e *FeedError) Unwrap() error {
	return e.Cause
}

func NewFeedError(kind FeedErrorKind, feed FeedName, message string, cause error) *FeedError {
	return &FeedError{
		Kind:    kind,
		Feed:    feed,
		Message: message,
		Cause:   cause,
	}
}

// IsFeedErrorKind reports whether err wraps a FeedError of the given kind.
func IsFeedErrorKind(err error, kind FeedErrorKind) bool {
	var feedErr *FeedError
	if errors.As(err, &feedErr) {
		return feedErr.Kind == kind
	}

	return false
}
