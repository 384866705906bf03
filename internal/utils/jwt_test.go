package utils

import (
	"testing"
	"time"
)

func TestIssueAndExtract_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	subject := "test@domain.cl"

	tok, err := IssueToken(secret, subject, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if tok == "" {
		t.Fatal("IssueToken returned empty token")
	}

	got, err := ExtractSubject(secret, tok)
	if err != nil {
		t.Fatalf("ExtractSubject error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %q want %q", got, subject)
	}
}

func TestExtractSubject_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("right-secret", "a@b.cl", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = ExtractSubject("wrong-secret", tok)
	if err != ErrMalformedToken {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestExtractSubject_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ExtractSubject("k", "not.a.jwt")
	if err != ErrMalformedToken {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestExtractSubject_ExpiredStillExtracts(t *testing.T) {
	t.Parallel()

	secret := "secret"
	subject := "old@domain.cl"

	// Negative lifetime: the token is expired the moment it is issued, but
	// subject extraction only checks structure and signature.
	tok, err := IssueToken(secret, subject, -1*time.Minute)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	got, err := ExtractSubject(secret, tok)
	if err != nil {
		t.Fatalf("ExtractSubject error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %q want %q", got, subject)
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	secret := "secret"
	subject := "test@domain.cl"

	tok, err := IssueToken(secret, subject, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if !ValidateToken(secret, tok, subject) {
		t.Fatal("expected fresh token to validate for its own subject")
	}
	if ValidateToken(secret, tok, "other@domain.cl") {
		t.Fatal("expected validation to fail for a different subject")
	}
	if ValidateToken(secret, tok, "Test@domain.cl") {
		t.Fatal("expected subject comparison to be case-sensitive")
	}
	if ValidateToken("wrong-secret", tok, subject) {
		t.Fatal("expected validation to fail under the wrong secret")
	}
	if ValidateToken(secret, "garbage", subject) {
		t.Fatal("expected validation of a malformed token to be false")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	subject := "test@domain.cl"

	tok, err := IssueToken(secret, subject, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if ValidateToken(secret, tok, subject) {
		t.Fatal("expected expired token to be invalid")
	}
}
