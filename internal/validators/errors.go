package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyFilename    = errors.New("filename is required")
	ErrEmptyPayload     = errors.New("document content is required")
	ErrNotPDF           = errors.New("document is not a valid PDF")
	ErrMalformedDataURI = errors.New("malformed data URI")
	ErrEmptyAuthor      = errors.New("feedback author is required")
	ErrEmptyFeedback    = errors.New("feedback text is required")
)
