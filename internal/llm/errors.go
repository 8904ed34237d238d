package llm

import "errors"

// Transport-level failures. Each propagates unchanged to the caller;
// nothing in this package retries or substitutes a default result.
var (
	// ErrNetwork signals the backend was unreachable.
	ErrNetwork = errors.New("llm: backend unreachable")

	// ErrQuotaExceeded signals the backend rejected the request over a
	// rate or usage limit.
	ErrQuotaExceeded = errors.New("llm: quota exceeded")

	// ErrSafetyBlocked signals the backend refused to generate due to
	// its content policy.
	ErrSafetyBlocked = errors.New("llm: blocked by safety policy")
)
