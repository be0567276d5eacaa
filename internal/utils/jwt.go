package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/chatterbox/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying a session
// reference, suitable for placing into the session cookie.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - ID        (jti): the server-side session identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus lifetime
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateSessionToken(issuer string, userID int64, sessionID string, lifetime time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || sessionID == "" || lifetime == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{
		Token:        token,
		SignedString: tokenString,
		SessionID:    sessionID,
		UserID:       userID,
	}, nil
}

// ValidateAndParseSessionToken validates the given token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//   - ID (jti) claim presence (the server-side session reference)
//
// Returns the parsed token with SessionID and UserID populated, or an error
// if validation fails or any required claim is missing.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.SessionToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionToken{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*models.SessionToken)
	if !ok {
		return models.SessionToken{}, errors.New("unexpected session token claims")
	}

	if claims.RegisteredClaims.ID == "" {
		return models.SessionToken{}, errors.New("empty session id claim")
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.SessionToken{
		Token:     token,
		SessionID: claims.RegisteredClaims.ID,
		UserID:    userID,
	}, nil
}
