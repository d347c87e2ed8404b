package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Grading-specific ──────────────────────────────────────────────
	ErrInvalidDescriptor ErrCode = "INVALID_DESCRIPTOR"
	ErrInvalidMode       ErrCode = "INVALID_MATCH_MODE"
	ErrAnswerMissing     ErrCode = "ANSWER_MISSING"

	// ─── Rate Limiting / Timeouts ──────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"
	ErrRequestTimeout    ErrCode = "REQUEST_TIMEOUT"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrInvalidDescriptor:
		return "The answer descriptor does not match the expected shape."
	case ErrInvalidMode:
		return "Unknown match mode. Expected strict, tolerant or algebraic."
	case ErrAnswerMissing:
		return "The request carries no answer to grade."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrRequestTimeout:
		return "The request took too long to process."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
