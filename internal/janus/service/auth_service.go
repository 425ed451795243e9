package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusgate/janus/internal/janus/store"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrBadCredentials     = errors.New("wrong credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// bcryptCost matches the original deployment's hashing cost.
const bcryptCost = 12

// AuthService manages admin accounts and their session tokens.
type AuthService struct {
	admins   store.AdminStore
	secret   []byte
	tokenTTL time.Duration

	// Now supplies the clock for token issue and expiry checks. Defaults
	// to time.Now.
	Now func() time.Time
}

func NewAuthService(admins store.AdminStore, secret []byte, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{admins: admins, secret: secret, tokenTTL: tokenTTL, Now: time.Now}
}

// Register creates a new admin account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (store.AdminRecord, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return store.AdminRecord{}, ErrMissingCredentials
	}
	if len(password) < 6 {
		return store.AdminRecord{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return store.AdminRecord{}, fmt.Errorf("register %s: %w", username, err)
	}

	rec := store.AdminRecord{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.Now().UTC(),
	}
	if err := s.admins.Create(ctx, rec); err != nil {
		return store.AdminRecord{}, fmt.Errorf("register %s: %w", username, err)
	}

	rec.PasswordHash = nil // callers never need the hash back
	return rec, nil
}

// Login checks credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	admin, err := s.admins.ByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("login %s: %w", username, err)
	}
	if admin == nil {
		return "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	now := s.Now()
	claims := jwt.RegisteredClaims{
		Subject:   admin.ID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("login %s: sign token: %w", username, err)
	}
	return token, nil
}

// Verify validates a session token and returns the admin id it was issued
// to.
func (s *AuthService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.Subject, nil
}
