package providers

import (
	"errors"
	"fmt"
)

// UpstreamError captures a non-2xx response or transport failure from a
// provider call. The originating status travels with the error so the HTTP
// layer can surface it verbatim.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream provider unavailable"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// NotFoundError marks a named lookup that yielded no match, e.g. resolving a
// team displayName against a provider's team list.
type NotFoundError struct {
	Provider string
	Kind     string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no %s named %q", e.Provider, e.Kind, e.Name)
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
