package util

import "errors"

// Domain error taxonomy. Every error a service returns is either one of
// these sentinels or a storage failure passed through from the gateway;
// controllers treat anything outside the taxonomy as a storage failure.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidRole        = errors.New("role must be author or respondent")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNotFound      = errors.New("token not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidQuiz        = errors.New("quiz needs a title and at least one question")
	ErrNoQuizSelected     = errors.New("no quiz selected")
	ErrEmptyRespondent    = errors.New("respondent is required")

	// ErrNoResponses is a sentinel, not a failure: the (quiz, respondent)
	// pair simply has no response row.
	ErrNoResponses = errors.New("no responses found")
)
