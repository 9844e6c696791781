package shared

import "errors"

// Error taxonomy for the catalog and playlist layers.
//
// Repositories return ErrNotFound, ErrStorageFailure, and ErrCorruptData;
// services add ErrInvalidInput and ErrDuplicateResource on top and pass
// repository errors through unchanged. All errors are wrapped with
// fmt.Errorf("%w: ...") so callers can match with [errors.Is].
var (
	// ErrInvalidInput marks field-level or business-rule validation
	// failures. Recoverable by the caller correcting input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateResource marks a business-level uniqueness violation.
	ErrDuplicateResource = errors.New("resource already exists")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrStorageFailure wraps backend/connectivity errors, including
	// referential-integrity breaches detected at read time.
	ErrStorageFailure = errors.New("storage operation failed")

	// ErrCorruptData marks a malformed row, e.g. an unrecognized
	// discriminator value. Non-recoverable for that row.
	ErrCorruptData = errors.New("corrupt row data")
)
