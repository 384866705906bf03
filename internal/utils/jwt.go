package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel error for unparseable tokens
    "time"   // time utilities for computing expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrMalformedToken is returned by ExtractSubject when the presented token
// cannot be parsed, carries the wrong signing method, or its signature does
// not verify. Callers are expected to translate it into their own domain
// error; it never reaches a client directly.
var ErrMalformedToken = errors.New("malformed token")

// IssueToken builds and signs an HS256 session token whose subject is the
// account's email. It takes the signing secret, the subject email, and the
// token lifetime, and returns the serialized JWT string. The claims are the
// standard subject (sub), issued at (iat) and expiration (exp), where
// exp = iat + lifetime. A zero or negative lifetime still signs
// successfully and yields a token that is already expired; the expiry
// tests rely on that.
func IssueToken(secret, subject string, lifetime time.Duration) (string, error) {
    // Compute issuance and expiration from the same instant so the
    // exp claim is exactly iat + lifetime.
    now := time.Now().UTC()
    claims := jwt.MapClaims{
        "sub": subject,
        "iat": now.Unix(),
        "exp": now.Add(lifetime).Unix(),
    }
    // Create a new token object specifying the signing method (HS256) and
    // include the claims, then sign with the shared secret.
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return "", err
    }
    return signed, nil
}

// ExtractSubject parses a token and returns its claimed subject. Only
// structural correctness and the signature are checked here; claim
// validation (expiry) is deliberately skipped so an expired token still
// reveals who it was issued for. Any parse or signature failure is
// reported as ErrMalformedToken.
func ExtractSubject(secret, token string) (string, error) {
    tok, err := jwt.Parse(token, hmacKeyFunc(secret), jwt.WithoutClaimsValidation())
    if err != nil {
        return "", ErrMalformedToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return "", ErrMalformedToken
    }
    sub, ok := claims["sub"].(string)
    if !ok || sub == "" {
        return "", ErrMalformedToken
    }
    return sub, nil
}

// ValidateToken reports whether a token is currently acceptable for the
// expected subject: it must parse, its signature must verify, its exp
// claim must lie in the future, and its subject must equal expectedSubject
// exactly (case-sensitive). Every failure mode, including malformed input,
// normalizes to false; nothing is propagated.
func ValidateToken(secret, token, expectedSubject string) bool {
    tok, err := jwt.Parse(token, hmacKeyFunc(secret))
    if err != nil || !tok.Valid {
        return false
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return false
    }
    sub, _ := claims["sub"].(string)
    return sub == expectedSubject
}

// hmacKeyFunc returns the key lookup callback used by jwt.Parse. It
// rejects tokens signed with anything other than an HMAC method before
// handing back the secret bytes.
func hmacKeyFunc(secret string) jwt.Keyfunc {
    return func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrMalformedToken
        }
        return []byte(secret), nil
    }
}
