package wialon

//
// errors.go - the two kinds of failure surfaced by this package.
//

import (
	"fmt"
	"strconv"
)

// SDKError is a client-side failure: an invalid constructor argument, a
// serialization failure, a transport failure, or a malformed response. The
// server never saw, or never answered, the offending request.
type SDKError struct {
	// Message is the free-text error message.
	Message string

	// cause is the optional underlying error.
	cause error
}

// newSDKError constructs a new [*SDKError] with the given message, appending
// the cause description to the message when there is a cause.
func newSDKError(message string, cause error) *SDKError {
	if cause != nil {
		message = fmt.Sprintf("%s: %s", message, cause.Error())
	}
	return &SDKError{
		Message: message,
		cause:   cause,
	}
}

// Error implements error.
func (e *SDKError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *SDKError) Unwrap() error {
	return e.cause
}

// UnknownErrorCode is the sentinel code to which [NewAPIError] normalizes
// every code missing from the protocol error code table.
const UnknownErrorCode = -1

// apiErrorDescriptions maps each known protocol error code to its
// human-readable description.
var apiErrorDescriptions = map[int64]string{
	UnknownErrorCode: "Unhandled error code",
	1:                "Invalid session",
	2:                "Invalid service name",
	3:                "Invalid result",
	4:                "Invalid input",
	5:                "Error performing request",
	6:                "Unknown error",
	7:                "Access denied",
	8:                "Invalid user name or password",
	9:                "Authorization server is unavailable",
	10:               "Reached limit of concurrent requests",
	11:               "Password reset error",
	14:               "Billing error",
	1001:             "No messages for selected interval",
	1002:             "Item with such unique property already exists or Item cannot be created according to billing restrictions",
	1003:             "Only one request is allowed at the moment",
	1004:             "Limit of messages has been exceeded",
	1005:             "Execution time has exceeded the limit",
	1006:             "Exceeding the limit of attempts to enter a two-factor authorization code",
	1011:             "Your IP has changed or session has expired",
	2014:             "Selected user is a creator for some system objects, thus this user cannot be bound to a new account",
	2015:             "Sensor deleting is forbidden because of using in another sensor or advanced properties of the unit",
}

// APIError is a protocol error: the server answered with a non-zero error
// code. The code is one of the documented Remote API codes, or
// [UnknownErrorCode] when the server used a code we don't know about.
type APIError struct {
	// Code is the normalized protocol error code.
	Code int64

	// Reason is the human-readable description of the code, extended
	// with the server-supplied free text when there was any.
	Reason string
}

// NewAPIError constructs a new [*APIError] from the code returned by the
// server and the optional server-supplied reason. Codes missing from the
// error code table collapse to [UnknownErrorCode]; a non-empty reason is
// appended to the code's description.
func NewAPIError(code int64, reason string) *APIError {
	descr, found := apiErrorDescriptions[code]
	if !found {
		code = UnknownErrorCode
		descr = apiErrorDescriptions[UnknownErrorCode]
	}
	if reason != "" {
		descr += " - " + reason
	}
	return &APIError{
		Code:   code,
		Reason: descr,
	}
}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d - %s", e.Code, e.Reason)
}

// responseError returns the [*APIError] reported inside the given decoded
// response, or nil when the response is a success. Only a mapping carrying a
// non-zero "error" value is a protocol error; every other JSON document is a
// successful payload.
func responseError(response any) error {
	doc, good := response.(map[string]any)
	if !good {
		return nil
	}
	value, found := doc["error"]
	if !found {
		return nil
	}
	if code, good := value.(float64); good && code == 0 {
		return nil
	}
	reason, _ := doc["reason"].(string)
	return NewAPIError(normalizeErrorCode(value), reason)
}

// normalizeErrorCode reduces the wire representation of an error code, which
// may be a JSON number or a JSON string, to an integer. Anything that does
// not parse as an integer becomes [UnknownErrorCode].
func normalizeErrorCode(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case string:
		code, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return UnknownErrorCode
		}
		return code
	default:
		return UnknownErrorCode
	}
}
