// Package service contains the account orchestration layer. It is the only
// layer allowed to raise domain errors; the validators, token helpers and
// repositories below it return values, booleans, or sentinel errors that
// get translated here.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/user-account-service/internal/model"
	"github.com/iliyamo/user-account-service/internal/queue"
	"github.com/iliyamo/user-account-service/internal/repository"
	"github.com/iliyamo/user-account-service/internal/utils"
	"github.com/iliyamo/user-account-service/internal/validation"
)

// AccountStore is the persistence boundary the service depends on. The
// MySQL implementation lives in internal/repository; tests supply fakes.
type AccountStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	Save(ctx context.Context, a *model.Account) error
}

// EventPublisher delivers account lifecycle events to the broker. Publishing
// is best effort: the service logs failures and never fails a request over
// them.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.AccountEvent) error
}

// EventPublisherFunc adapts a plain function to the EventPublisher interface.
type EventPublisherFunc func(ctx context.Context, ev queue.AccountEvent) error

func (f EventPublisherFunc) Publish(ctx context.Context, ev queue.AccountEvent) error {
	return f(ctx, ev)
}

// AccountService orchestrates validation, hashing, token issuance and
// persistence for sign-up and login. Its configuration (signing secret,
// token lifetime, bcrypt cost) is fixed at construction and never mutated.
type AccountService struct {
	store    AccountStore
	events   EventPublisher // may be nil when no broker is configured
	secret   string
	tokenTTL time.Duration
	cost     int
}

// NewAccountService wires an AccountService from its collaborators.
func NewAccountService(store AccountStore, events EventPublisher, secret string, tokenTTL time.Duration, bcryptCost int) *AccountService {
	return &AccountService{
		store:    store,
		events:   events,
		secret:   secret,
		tokenTTL: tokenTTL,
		cost:     bcryptCost,
	}
}

// PhoneInput carries one phone record supplied at sign-up.
type PhoneInput struct {
	Number      int64
	CityCode    int
	CountryCode string
}

// CreateAccount registers a new account. The email format and password
// policy are checked here first, so the contract holds regardless of any
// validation a transport layer may or may not perform. On success the
// persisted account is returned as its outward view, already carrying a
// freshly issued session token.
func (s *AccountService) CreateAccount(ctx context.Context, email, password, name string, phones []PhoneInput) (*AccountView, error) {
	if verr := validateSignUp(email, password); verr != nil {
		return nil, verr
	}

	exists, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAccount
	}

	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}

	token, err := utils.IssueToken(s.secret, email, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	acc := &model.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Created:      now,
		LastLogin:    now,
		Token:        token,
		IsActive:     true,
	}
	for _, p := range phones {
		acc.Phones = append(acc.Phones, model.Phone{
			AccountID:   acc.ID,
			Number:      p.Number,
			CityCode:    p.CityCode,
			CountryCode: p.CountryCode,
		})
	}

	if err := s.store.Save(ctx, acc); err != nil {
		// The unique index is the authority; a concurrent sign-up can slip
		// past the ExistsByEmail check and fail here instead.
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	s.publish(ctx, queue.EventAccountRegistered, acc)
	return projectAccount(acc), nil
}

// Login authenticates a presented bearer token, rotates the account's
// session token and bumps last-login. The store is only consulted after
// the token itself has been fully verified.
func (s *AccountService) Login(ctx context.Context, bearerToken string) (*AccountView, error) {
	subject, err := utils.ExtractSubject(s.secret, bearerToken)
	if err != nil {
		return nil, ErrInvalidCredential
	}
	if !utils.ValidateToken(s.secret, bearerToken, subject) {
		return nil, ErrInvalidCredential
	}

	acc, err := s.store.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	// Issue before persisting so token and last-login land in one Save.
	token, err := utils.IssueToken(s.secret, acc.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	acc.Token = token
	acc.LastLogin = time.Now().UTC()

	if err := s.store.Save(ctx, acc); err != nil {
		return nil, err
	}

	s.publish(ctx, queue.EventAccountLoggedIn, acc)
	return projectAccount(acc), nil
}

// validateSignUp applies both format predicates and collects one entry per
// failing field. It returns nil when everything passes.
func validateSignUp(email, password string) *ValidationError {
	var fields []FieldError
	switch {
	case email == "":
		fields = append(fields, FieldError{Field: "email", Message: "Email is required"})
	case !validation.ValidEmail(email):
		fields = append(fields, FieldError{Field: "email", Message: "Email format is invalid"})
	}
	switch {
	case password == "":
		fields = append(fields, FieldError{Field: "password", Message: "Password is required"})
	case !validation.ValidPassword(password):
		fields = append(fields, FieldError{Field: "password", Message: "Password must have exactly one uppercase letter, exactly two digits, and be 8-12 characters long"})
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (s *AccountService) publish(ctx context.Context, eventType string, acc *model.Account) {
	if s.events == nil {
		return
	}
	ev := queue.AccountEvent{
		Type:       eventType,
		AccountID:  acc.ID,
		Email:      acc.Email,
		Name:       acc.Name,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		log.Printf("account-service: publish %s failed: %v", eventType, err)
	}
}
