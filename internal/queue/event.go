// Package queue defines message payloads exchanged over the message broker.
package queue

// Event type values carried in AccountEvent.Type.
const (
    EventAccountRegistered = "account.registered"
    EventAccountLoggedIn   = "account.logged_in"
)

// AccountEvent is published when an account is created or logs in. It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database. The password
// hash and session token are deliberately not part of the payload.
type AccountEvent struct {
    Type       string `json:"type"`
    AccountID  string `json:"account_id"`
    Email      string `json:"email"`
    Name       string `json:"name,omitempty"`
    OccurredAt string `json:"occurred_at"`
}
