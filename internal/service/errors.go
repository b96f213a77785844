package service

import "errors"

var (
	// ErrCredentialMissing halts an action before any network call when
	// no Gemini API key is configured.
	ErrCredentialMissing = errors.New("no Gemini API credential configured")

	// ErrQuotaExceeded marks quota and rate-limit failures from the
	// model call so they can be surfaced with an actionable message.
	ErrQuotaExceeded = errors.New("gemini quota or rate limit exceeded")

	// ErrEmptyQuestionSet means normalization produced zero questions.
	ErrEmptyQuestionSet = errors.New("no question detected in the image")

	// ErrInvalidQuestion is returned when a user interacts with a
	// question that failed minimum-shape validation.
	ErrInvalidQuestion = errors.New("question failed validation and cannot be answered")

	// ErrSelectionMode is returned when the selection shape does not
	// match the question's fixed single/multi mode.
	ErrSelectionMode = errors.New("selection does not match the question's answer mode")
)
