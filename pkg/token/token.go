// Package token provides compact HMAC-signed tokens for password reset and
// email verification links.
//
// Token format: base64url(json payload).base64url(hmac-sha256 signature).
// Payloads carry their own expiry; Parse rejects expired tokens.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidToken     = errors.New("invalid token format")
	ErrSignatureInvalid = errors.New("token signature mismatch")
	ErrTokenExpired     = errors.New("token expired")
)

// Claims is the payload embedded in every token.
type Claims struct {
	Subject   string `json:"sub"`
	Purpose   string `json:"purpose"`
	ExpiresAt int64  `json:"exp"`
}

// Generate creates a signed token for the given subject and purpose,
// valid for ttl from now.
func Generate(subject, purpose string, ttl time.Duration, secret string) (string, error) {
	claims := Claims{
		Subject:   subject,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}

	data, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	payload := base64.RawURLEncoding.EncodeToString(data)
	sig := base64.RawURLEncoding.EncodeToString(sign(data, secret))
	return payload + "." + sig, nil
}

// Parse verifies the signature and expiry and returns the claims. The
// expected purpose must match to stop a verification token from being
// replayed as a password reset.
func Parse(tok, purpose, secret string) (Claims, error) {
	var claims Claims

	parts := strings.Split(tok, ".")
	if len(parts) != 2 {
		return claims, ErrInvalidToken
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return claims, errors.Join(ErrInvalidToken, err)
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return claims, errors.Join(ErrInvalidToken, err)
	}

	if !hmac.Equal(sig, sign(data, secret)) {
		return claims, ErrSignatureInvalid
	}

	if err := json.Unmarshal(data, &claims); err != nil {
		return claims, errors.Join(ErrInvalidToken, err)
	}

	if claims.Purpose != purpose {
		return Claims{}, ErrSignatureInvalid
	}
	if time.Now().Unix() > claims.ExpiresAt {
		return Claims{}, ErrTokenExpired
	}

	return claims, nil
}

func sign(data []byte, secret string) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return h.Sum(nil)
}
