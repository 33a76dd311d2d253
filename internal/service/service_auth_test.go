// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/course-keeper/internal/config"
	"github.com/MKhiriev/course-keeper/internal/crypto"
	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/mock"
	"github.com/MKhiriev/course-keeper/internal/store"
	"github.com/MKhiriev/course-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-secret",
	TokenIssuer:   "course-keeper",
	TokenDuration: time.Hour,
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc, err := NewAuthService(users, hasher, testAppConfig, logger.Nop())
	require.NoError(t, err)

	return svc, users, hasher
}

var instructor = models.User{
	ID:           "0199f3a2-7c1e-7b8a-9d2e-3f4a5b6c7d8e",
	Name:         "Ann",
	Email:        "ann@x.io",
	PasswordHash: "$argon2id$stored",
	Role:         models.RoleInstructor,
}

// ── NewAuthService ───────────────────────────────────────────────────────────

func TestNewAuthService_EmptySignKey(t *testing.T) {
	cfg := testAppConfig
	cfg.TokenSignKey = ""

	svc, err := NewAuthService(nil, nil, cfg, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrTokenSignKeyIsNotSpecified)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ann@x.io").Return(instructor, nil)
	hasher.EXPECT().Verify("123456", instructor.PasswordHash).Return(true, nil)

	user, err := svc.Login(ctx, models.Credentials{Email: "ann@x.io", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, instructor, user)
}

// TestAuthService_Login_IndistinguishableFailures checks that an unknown
// email and a wrong password produce the same error.
func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		svc, users, hasher := newTestAuthSvc(t)

		users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.io").Return(models.User{}, store.ErrUserNotFound)
		hasher.EXPECT().Hash(timingPassword).Return("$argon2id$timing", nil)
		hasher.EXPECT().Verify("123456", "$argon2id$timing").Return(false, nil)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "ghost@x.io", Password: "123456"})
		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, hasher := newTestAuthSvc(t)

		users.EXPECT().FindUserByEmail(gomock.Any(), "ann@x.io").Return(instructor, nil)
		hasher.EXPECT().Verify("654321", instructor.PasswordHash).Return(false, nil)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@x.io", Password: "654321"})
		assert.Equal(t, ErrInvalidCredentials, err)
	})
}

// TestAuthService_Login_UnknownEmailVerifiesPassword checks that every login
// for an unknown email runs one password verification, against a hash
// computed only once.
func TestAuthService_Login_UnknownEmailVerifiesPassword(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t)
	creds := models.Credentials{Email: "ghost@x.io", Password: "123456"}

	users.EXPECT().FindUserByEmail(gomock.Any(), creds.Email).Return(models.User{}, store.ErrUserNotFound).Times(2)
	hasher.EXPECT().Hash(timingPassword).Return("$argon2id$timing", nil).Times(1)
	hasher.EXPECT().Verify(creds.Password, "$argon2id$timing").Return(false, nil).Times(2)

	for range 2 {
		_, err := svc.Login(context.Background(), creds)
		assert.Equal(t, ErrInvalidCredentials, err)
	}
}

func TestAuthService_Login_UnknownEmailTimingHashFails(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t)

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(timingPassword).Return("", crypto.ErrInvalidParams)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "ghost@x.io", Password: "123456"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_Login_InternalFailures(t *testing.T) {
	t.Run("repository error", func(t *testing.T) {
		svc, users, _ := newTestAuthSvc(t)

		users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrDatabaseUnavailable)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@x.io", Password: "123456"})
		assert.ErrorIs(t, err, store.ErrDatabaseUnavailable)
		assert.False(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("corrupt stored hash", func(t *testing.T) {
		svc, users, hasher := newTestAuthSvc(t)

		users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(instructor, nil)
		hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, crypto.ErrInvalidHash)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@x.io", Password: "123456"})
		assert.ErrorIs(t, err, crypto.ErrInvalidHash)
		assert.False(t, errors.Is(err, ErrInvalidCredentials))
	})
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, instructor)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{Subject: instructor.ID, Role: models.RoleInstructor}, parsed.Identity)
}

func TestAuthService_CreateToken_InvalidUser(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	_, err := svc.CreateToken(context.Background(), models.User{ID: "u-1"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	other, err := NewAuthService(nil, nil, config.App{TokenSignKey: "other-secret", TokenIssuer: "course-keeper", TokenDuration: time.Hour}, logger.Nop())
	require.NoError(t, err)
	foreign, err := other.CreateToken(context.Background(), instructor)
	require.NoError(t, err)

	shortLived, err := NewAuthService(nil, nil, config.App{TokenSignKey: "test-secret", TokenIssuer: "course-keeper", TokenDuration: time.Nanosecond}, logger.Nop())
	require.NoError(t, err)
	expired, err := shortLived.CreateToken(context.Background(), instructor)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	for name, tok := range map[string]string{
		"garbage":      "abc",
		"foreign key":  foreign.SignedString,
		"expired":      expired.SignedString,
		"empty string": "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tok)
			assert.Equal(t, ErrTokenIsExpiredOrInvalid, err)
		})
	}
}

// ── validation wrapper ───────────────────────────────────────────────────────

func TestAuthValidationService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService(newStructValidator()).Wrap(inner)

	t.Run("invalid payload never reaches inner service", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.Credentials{Email: "not-an-email", Password: "123"})
		assertValidationError(t, err)
	})

	t.Run("valid payload is forwarded", func(t *testing.T) {
		creds := models.Credentials{Email: "ann@x.io", Password: "123456"}
		inner.EXPECT().Login(gomock.Any(), creds).Return(instructor, nil)

		user, err := svc.Login(context.Background(), creds)
		require.NoError(t, err)
		assert.Equal(t, instructor, user)
	})

	t.Run("token methods pass through", func(t *testing.T) {
		inner.EXPECT().CreateToken(gomock.Any(), instructor).Return(models.Token{SignedString: "t"}, nil)
		inner.EXPECT().ParseToken(gomock.Any(), "t").Return(models.Token{SignedString: "t"}, nil)

		token, err := svc.CreateToken(context.Background(), instructor)
		require.NoError(t, err)
		_, err = svc.ParseToken(context.Background(), token.SignedString)
		require.NoError(t, err)
	})
}
