package roadmap

import "errors"

// Pipeline error taxonomy. Extraction, generation, and malformed-response
// failures are absorbed by the fallback path and never reach the caller;
// invalid requests and persistence failures do.
var (
	ErrInvalidRequest        = errors.New("roadmap: missing document or owner id")
	ErrDocumentNotFound      = errors.New("roadmap: document not found")
	ErrExtractionFailed      = errors.New("roadmap: text extraction failed")
	ErrGenerationUnavailable = errors.New("roadmap: generation service unavailable")
	ErrMalformedResponse     = errors.New("roadmap: malformed generation response")
	ErrPersistence           = errors.New("roadmap: persistence failed")
	ErrNotFound              = errors.New("roadmap: not found")
)
