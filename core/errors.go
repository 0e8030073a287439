package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline's failure taxonomy. Only a seed-page
// FetchError is fatal to a run; everything else degrades locally.
var (
	// ErrResourceTimeout marks an internal-page, stylesheet, or AI call
	// that exceeded its individual timeout.
	ErrResourceTimeout = errors.New("resource timed out")
	// ErrParse marks a malformed HTML or CSS fragment that was skipped.
	ErrParse = errors.New("parse failed")
	// ErrEnrichment marks a failed or malformed AI synthesis response.
	ErrEnrichment = errors.New("enrichment failed")
)

// FetchError reports an unreachable, non-HTML, or non-2xx seed page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
