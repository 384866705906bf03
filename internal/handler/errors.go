package handler

import "time"

// ErrorResponse is the body returned by every failing endpoint: a list of
// error details under the "error" key. Validation failures produce one
// entry per failed field; every other failure produces exactly one entry.
type ErrorResponse struct {
	Error []ErrorDetail `json:"error"`
}

// ErrorDetail carries a timestamp, the numeric HTTP status as code, and a
// human-readable detail string.
type ErrorDetail struct {
	Timestamp time.Time `json:"timestamp"`
	Code      int       `json:"code"`
	Detail    string    `json:"detail"`
}

// NewErrorResponse builds a single-entry error body.
func NewErrorResponse(code int, detail string) ErrorResponse {
	return ErrorResponse{Error: []ErrorDetail{newErrorDetail(code, detail)}}
}

func newErrorDetail(code int, detail string) ErrorDetail {
	return ErrorDetail{Timestamp: time.Now().UTC(), Code: code, Detail: detail}
}
