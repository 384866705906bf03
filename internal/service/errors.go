package service

import (
	"errors"
	"strings"
)

// Domain errors raised by the account service. The message strings are
// part of the wire contract: handlers surface them verbatim in the error
// detail field.
var (
	// ErrDuplicateAccount signals that the sign-up email is already registered.
	ErrDuplicateAccount = errors.New("User already exists")
	// ErrInvalidCredential signals a token that failed extraction or validation.
	ErrInvalidCredential = errors.New("Invalid token")
	// ErrAccountNotFound signals a valid token whose subject has no account.
	ErrAccountNotFound = errors.New("User not found")
)

// FieldError describes a single field-level policy violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates one FieldError per failing sign-up field so a
// caller learns about every violation in one round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
