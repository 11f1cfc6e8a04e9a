package errors

// Code classifies an error. Codes line up one to one with gRPC status codes so
// handlers can translate without a lookup table per endpoint.
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"

	// CodeInvalidArgument is a validation failure: the caller can fix the
	// request and resubmit. Nothing was persisted.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeNotFound covers both missing records and records owned by another
	// user.
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeUnauthenticated means no caller identity, CodePermissionDenied means
	// the identity does not match the resource owner.
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodePermissionDenied Code = "PERMISSION_DENIED"

	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// CodeDataLoss reports stored data that breaks an internal invariant, for
	// example a character without its ability scores.
	CodeDataLoss Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Valid reports whether c is one of the declared codes.
func (c Code) Valid() bool {
	switch c {
	case CodeOK, CodeCanceled, CodeDeadlineExceeded, CodeInvalidArgument,
		CodeNotFound, CodeAlreadyExists, CodeUnauthenticated, CodePermissionDenied,
		CodeFailedPrecondition, CodeUnimplemented, CodeInternal, CodeUnavailable,
		CodeDataLoss:
		return true
	default:
		return false
	}
}
