// Package repository defines error types shared by the storage layer.
// These sentinel values allow higher layers such as the account service
// to distinguish failure scenarios without string matching. For example,
// ErrEmailExists signals that an insert violated the unique email index,
// while ErrNotFound signals that a lookup matched no row.
package repository

import "errors"

// ErrEmailExists is returned when an account insert collides with the
// unique index on accounts.email. The service translates it into its
// duplicate-account domain error.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a lookup matches no account row. The
// service translates it into its account-not-found domain error.
var ErrNotFound = errors.New("account not found")
