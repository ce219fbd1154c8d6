package util

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidCreds     = errors.New("invalid credentials")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrInvalidVideoExt  = errors.New("unsupported video file extension")
	ErrInvalidImageExt  = errors.New("unsupported image file extension")
	ErrChapterOutOfRange = errors.New("chapter number out of range")

	// Generation pipeline taxonomy. Config and empty-response failures happen
	// before any parsing; the schema kinds abort before persistence.
	ErrCourseNameRequired   = errors.New("course name is required")
	ErrGenerationInFlight   = errors.New("another generation is already in progress")
	ErrMissingAPIKey        = errors.New("AI API key is not configured")
	ErrEmptyAIResponse      = errors.New("AI returned empty response")
	ErrMalformedJSON        = errors.New("invalid JSON returned by AI")
	ErrMissingCourse        = errors.New("generated payload has no course object")
	ErrInvalidChapters      = errors.New("generated course chapters is not a list")
	ErrChapterCountMismatch = errors.New("generated chapter count does not match noOfChapters")
)
