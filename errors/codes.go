package errors

// ErrorCode identifies a failure condition.
// Codes are strings so they read well in logs and JSON.
type ErrorCode string

const (
	// Persistence errors.

	// CodeDatabase indicates a database operation failed for a reason that
	// could not be classified further.
	CodeDatabase ErrorCode = "DATABASE_ERROR"

	// CodeValueTooLong indicates a value exceeded the size of its column.
	CodeValueTooLong ErrorCode = "VALUE_TOO_LONG"

	// CodeForeignKeyViolation indicates a referenced row is missing or still referenced.
	CodeForeignKeyViolation ErrorCode = "FOREIGN_KEY_VIOLATION"

	// CodeUniqueViolation indicates a unique index rejected a duplicate row.
	CodeUniqueViolation ErrorCode = "UNIQUE_VIOLATION"

	// CodeBatchFailed indicates a statement of a batched group failed.
	CodeBatchFailed ErrorCode = "BATCH_FAILED"

	// Diagnostic errors.

	// CodeMalformedChain indicates a cause chain that loops back on itself
	// or exceeds the walk bound.
	CodeMalformedChain ErrorCode = "MALFORMED_CAUSE_CHAIN"

	// CodePayloadEncoding indicates a payload could not be encoded to or
	// decoded from its character set.
	CodePayloadEncoding ErrorCode = "PAYLOAD_ENCODING_FAILED"

	// Generic errors.

	// CodeNotFound indicates a requested record does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInvalidInput indicates the caller supplied invalid arguments.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInternal indicates an internal error.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
