// Package internalauth issues and verifies the service-to-service
// bearer tokens: a base64url JSON payload dot-joined with an
// HMAC-SHA256 signature over that payload, keyed by a shared signing
// secret. It deliberately avoids a JWT library: the payload shape is
// fixed and small, and every consumer treats the token as an opaque
// bearer string.
package internalauth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is the token lifetime used when Issue is called without an
// explicit expiry override.
const DefaultTTL = 5 * time.Minute

// Claims is the signed payload. Nonce is a random value unique per
// issuance; combined with Expiry it lets Verify reject replays within
// the token's own lifetime without needing a persisted revocation list.
type Claims struct {
	Issuer    string    `json:"iss"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	Subject   string    `json:"sub"`
	Purpose   string    `json:"purpose"`
	Nonce     string    `json:"nonce"`
}

var (
	// ErrInvalidToken covers malformed encoding, bad signature, or any
	// structural problem with the token string.
	ErrInvalidToken = errors.New("internalauth: invalid token")
	// ErrExpired indicates the token's exp claim is in the past.
	ErrExpired = errors.New("internalauth: token expired")
	// ErrReplayed indicates the token's nonce has already been seen.
	ErrReplayed = errors.New("internalauth: token replayed")
)

// Signer issues and verifies internal auth tokens against one shared
// secret (INTERNAL_SIGNING_SECRET). It also tracks nonces it has seen
// within their validity window, rejecting replays.
type Signer struct {
	secret []byte
	issuer string

	mu     sync.Mutex
	seen   map[string]time.Time // nonce -> expiry, swept lazily
}

// NewSigner creates a Signer for the given shared secret and issuer
// name (placed in every issued token's iss claim).
func NewSigner(secret []byte, issuer string) *Signer {
	return &Signer{secret: secret, issuer: issuer, seen: make(map[string]time.Time)}
}

// Issue mints a new token for subject/purpose with DefaultTTL validity.
func (s *Signer) Issue(subject, purpose string) (string, error) {
	return s.IssueWithTTL(subject, purpose, DefaultTTL)
}

// IssueWithTTL mints a new token with an explicit validity window.
func (s *Signer) IssueWithTTL(subject, purpose string, ttl time.Duration) (string, error) {
	nonce, err := randomNonce()
	if err != nil {
		return "", fmt.Errorf("internalauth: failed to generate nonce: %w", err)
	}
	now := time.Now()
	claims := Claims{
		Issuer:    s.issuer,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		Subject:   subject,
		Purpose:   purpose,
		Nonce:     nonce,
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("internalauth: failed to marshal claims: %w", err)
	}
	encPayload := base64.RawURLEncoding.EncodeToString(payload)
	sig := s.sign(encPayload)
	return encPayload + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// Verify checks a token's signature, expiry, and nonce freshness, and
// returns its claims if all three pass.
func (s *Signer) Verify(token string) (*Claims, error) {
	encPayload, encSig, ok := splitToken(token)
	if !ok {
		return nil, ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return nil, ErrInvalidToken
	}
	expected := s.sign(encPayload)
	if subtle.ConstantTimeCompare(sig, expected) != 1 {
		return nil, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(encPayload)
	if err != nil {
		return nil, ErrInvalidToken
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(claims.ExpiresAt) {
		return nil, ErrExpired
	}
	if err := s.checkReplay(claims.Nonce, claims.ExpiresAt); err != nil {
		return nil, err
	}
	return &claims, nil
}

func splitToken(token string) (payload, sig string, ok bool) {
	for i := len(token) - 1; i >= 0; i-- {
		if token[i] == '.' {
			return token[:i], token[i+1:], true
		}
	}
	return "", "", false
}

func (s *Signer) sign(encPayload string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(encPayload))
	return mac.Sum(nil)
}

// checkReplay records the nonce on first use and rejects any repeat
// seen before its token's own expiry, sweeping expired entries
// opportunistically so the map cannot grow without bound.
func (s *Signer) checkReplay(nonce string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for n, exp := range s.seen {
		if now.After(exp) {
			delete(s.seen, n)
		}
	}
	if _, seen := s.seen[nonce]; seen {
		return ErrReplayed
	}
	s.seen[nonce] = expiry
	return nil
}

func randomNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
