package store

import "errors"

// Not-found errors returned by mutation targets. Handlers map these to
// HTTP 404; the original UI silently ignored missing ids, which is made
// explicit here so callers can tell a no-op from an applied mutation.
var (
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInterviewNotFound   = errors.New("interview not found")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrUploadNotFound      = errors.New("upload not found")
	ErrListingNotFound     = errors.New("job listing not found")
	ErrListingNotSaved     = errors.New("job listing not saved")
)
