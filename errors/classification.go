package errors

// ErrorClassification tells a job executor whether the failed command may
// succeed when it is executed again.
type ErrorClassification string

const (
	// ClassificationRetryable marks failures caused by concurrent or transient state.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will repeat on every attempt.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification allows a retry.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to the classification new errors
// receive.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Another transaction changed the rows underneath the command.
	CodeDatabase:            ClassificationRetryable,
	CodeForeignKeyViolation: ClassificationRetryable,
	CodeUniqueViolation:     ClassificationRetryable,

	CodeValueTooLong:    ClassificationPermanent,
	CodeBatchFailed:     ClassificationPermanent,
	CodeMalformedChain:  ClassificationPermanent,
	CodePayloadEncoding: ClassificationPermanent,
	CodeNotFound:        ClassificationPermanent,
	CodeInvalidInput:    ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// DefaultClassification returns the classification a new error with the
// given code receives. Codes missing from the table are permanent.
func DefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
