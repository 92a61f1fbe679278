package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error, as printed by the CLI and
// attached to job incidents.
//
// The wrapped chain is left out: driver errors may quote SQL text or row
// values.
type ErrorResponse struct {
	// Code is the error code identifying the failure condition.
	Code string `json:"code"`

	// Message is the human-readable message.
	Message string `json:"message"`

	// Classification tells whether the operation may be retried.
	Classification string `json:"classification"`

	// Context holds optional metadata such as sqlstate and vendor_code.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse.
// Returns nil if err is nil.
//
// PlatformErrors contribute their code, message, classification and
// context. Other errors are reported as UNKNOWN and PERMANENT with their
// Error() text.
//
// Example:
//
//	resp := errors.ToJSON(classify.Wrap(err))
//	_ = json.NewEncoder(os.Stdout).Encode(resp)
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var platformErr PlatformError
	if As(err, &platformErr) {
		message = platformErr.Message()
		context = platformErr.Context()
	}

	return &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Context:        context,
	}
}

// MarshalJSON implements json.Marshaler for platformError, so a
// PlatformError can be passed to json.Marshal directly.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		return nil, Wrap(err, CodeInternal, "failed to marshal error response")
	}
	return data, nil
}
