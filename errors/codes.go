package errors

import "strconv"

// ErrorCode is the application-level error code carried in every error response.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 2001

	ErrorCode_REVIEW_NOT_FOUND       ErrorCode = 3000
	ErrorCode_REVIEW_TEXT_REQUIRED   ErrorCode = 3001
	ErrorCode_REVIEW_TEXT_EMPTY      ErrorCode = 3002
	ErrorCode_REVIEW_ANALYSIS_FAILED ErrorCode = 3003

	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 4000
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 4001

	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 5000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 5001
)

var errorCodeName = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_UNAUTHENTICATED:                 "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:              "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:              "AUTH_TOKEN_EXPIRED",
	ErrorCode_REVIEW_NOT_FOUND:                "REVIEW_NOT_FOUND",
	ErrorCode_REVIEW_TEXT_REQUIRED:            "REVIEW_TEXT_REQUIRED",
	ErrorCode_REVIEW_TEXT_EMPTY:               "REVIEW_TEXT_EMPTY",
	ErrorCode_REVIEW_ANALYSIS_FAILED:          "REVIEW_ANALYSIS_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:            "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:                 "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeName[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}
