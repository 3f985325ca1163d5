package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")

	// ErrOCRNotConfigured is returned when an image or video file reaches
	// extraction but no OCR service credentials are configured.
	ErrOCRNotConfigured = errors.New("ocr service is not configured")

	// ErrAnalyzerNotConfigured is returned when analysis is requested but
	// no reasoning-service credential is configured.
	ErrAnalyzerNotConfigured = errors.New("analyzer credentials are not configured")

	// ErrEmptyExtractedText is returned when a recommendation references a
	// file whose extraction produced no text to analyze.
	ErrEmptyExtractedText = errors.New("file has no extracted text")

	// ErrInvalidRecommendationInput is returned when a recommendation
	// request carries neither an edited course list nor a file reference.
	ErrInvalidRecommendationInput = errors.New("either courses or file_id must be provided")
)
