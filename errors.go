package gitdesktop

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrMarkupParse    = errors.New("markup parsing failed")
	ErrMarkupRender   = errors.New("markup rendering failed")

	// Filter contract violations.
	ErrDetachedNode = errors.New("filter node has no parent")

	// Emoji set errors.
	ErrEmojiSetParse = errors.New("failed to parse emoji set")

	// Repository validation errors.
	ErrInvalidRepository = errors.New("repository owner and name are required")
)
