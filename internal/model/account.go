package model

import "time"

// Account represents a registered user identity as stored in the
// `accounts` table. The json tags are omitted because these structs
// are used by the repository layer; handlers and the service define
// separate response types with the appropriate JSON field names.
//
// Fields:
//  ID           – UUID primary key, generated at sign-up.
//  Email        – unique email address, stored as received (case-sensitive).
//  PasswordHash – bcrypt hashed password; the raw password is never stored.
//  Name         – optional display name.
//  Created      – timestamp of account creation.
//  LastLogin    – timestamp of the most recent successful login.
//  Token        – the most recently issued session token (single slot;
//                 overwritten on every login, prior tokens are not revoked).
//  IsActive     – whether the account is active.
//  Phones       – phone records owned exclusively by this account.
type Account struct {
	ID           string    // accounts.id (BINARY/CHAR(36) UUID)
	Email        string    // accounts.email
	PasswordHash string    // accounts.password_hash
	Name         string    // accounts.name (nullable, empty when absent)
	Created      time.Time // accounts.created
	LastLogin    time.Time // accounts.last_login
	Token        string    // accounts.token
	IsActive     bool      // accounts.is_active
	Phones       []Phone   // phones owned by this account
}

// Phone models a row in the `phones` table. A phone belongs to exactly
// one account and is removed with it (ON DELETE CASCADE). The AccountID
// back-reference exists only so the repository can populate the foreign
// key; nothing in the domain traverses from a phone back to its account.
//
// Fields:
//  ID          – numeric primary key, assigned by the database.
//  AccountID   – owning account's UUID (phones.account_id).
//  Number      – subscriber number.
//  CityCode    – city dialing code.
//  CountryCode – country dialing code.
type Phone struct {
	ID          uint64 // phones.id
	AccountID   string // phones.account_id
	Number      int64  // phones.number
	CityCode    int    // phones.city_code
	CountryCode string // phones.country_code
}
