package remote

import "errors"

var (
	// ErrUnavailable marks transient network conditions (server
	// unreachable, request timed out). The sync coordinator maps it to
	// the "offline" status, never to "error".
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks auth failures, which are not network absence
	// and must not be retried blindly.
	ErrUnauthorized = errors.New("unauthorized")
)
