// Package youtube recognises the video URL shapes the summarizer accepts.
package youtube

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyURL is returned when nothing was entered.
	ErrEmptyURL = errors.New("please enter a URL")
	// ErrInvalidURL is returned when the input is not a supported video URL.
	ErrInvalidURL = errors.New("please enter a valid YouTube video URL")
)

// The match is anchored at the start only; anything after the identifier
// (extra query parameters, timestamps, path segments) is tolerated.
var videoURLRegexp = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([a-zA-Z0-9_-]{11})`)

// IsValid reports whether input, once trimmed, starts with a supported
// YouTube video URL.
func IsValid(input string) bool {
	return videoURLRegexp.MatchString(strings.TrimSpace(input))
}

// Validate is IsValid with the reason attached.
func Validate(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return ErrEmptyURL
	}
	if !videoURLRegexp.MatchString(input) {
		return ErrInvalidURL
	}
	return nil
}

// VideoID extracts the 11 character video identifier.
func VideoID(input string) (string, bool) {
	matches := videoURLRegexp.FindStringSubmatch(strings.TrimSpace(input))
	if len(matches) < 5 {
		return "", false
	}
	return matches[4], true
}

// Feedback is the live validation cue shown while the user types.
type Feedback int

const (
	FeedbackNeutral Feedback = iota
	FeedbackValid
	FeedbackInvalid
)

// Check classifies partially typed input. Empty input is neutral so the
// field does not turn red before the user starts typing.
func Check(input string) Feedback {
	switch err := Validate(input); {
	case errors.Is(err, ErrEmptyURL):
		return FeedbackNeutral
	case err != nil:
		return FeedbackInvalid
	default:
		return FeedbackValid
	}
}
