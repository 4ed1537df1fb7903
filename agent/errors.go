package agent

import "fmt"

// ValidationError reports malformed job-matching input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UpstreamError reports a failed fetch of the search page or a detail page
type UpstreamError struct {
	URL string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("upstream fetch failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream fetch of %s failed: %v", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
