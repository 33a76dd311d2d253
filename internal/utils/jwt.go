// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/course-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "bearer "

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token, omitted when empty
//   - Subject   (sub): the user ID
//   - Role      (role): the role of the user
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// subject, role, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("course-keeper", userID, models.RoleStudent, time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if subject == "" || !role.Valid() || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Identity:     models.Identity{Subject: subject, Role: role},
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the identity it carries.
//
// Validation includes:
//   - Signing method must be HMAC
//   - Signature verification using the provided sign key
//   - Expiration (exp) claim presence and check
//   - Issuer (iss) claim check, only when tokenIssuer is not empty
//   - Subject (sub) and role claim presence
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	if tokenSignKey == "" {
		return models.Token{}, errors.New("empty sign key")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}
	if !claims.Role.Valid() {
		return models.Token{}, fmt.Errorf("unknown role %q in token", claims.Role)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Identity:     models.Identity{Subject: claims.Subject, Role: claims.Role},
	}, nil
}

// ParseAuthorizationHeader extracts the token from an Authorization header
// value. Both the raw token and the "Bearer <token>" form are accepted; the
// scheme is matched case-insensitively. A blank value yields ok == false.
func ParseAuthorizationHeader(authorizationHeader string) (string, bool) {
	value := strings.TrimSpace(authorizationHeader)
	if strings.EqualFold(value, strings.TrimSpace(bearerPrefix)) {
		return "", false
	}
	if len(value) >= len(bearerPrefix) && strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		value = strings.TrimSpace(value[len(bearerPrefix):])
	}
	if value == "" || strings.ContainsAny(value, " \t") {
		return "", false
	}
	return value, true
}
