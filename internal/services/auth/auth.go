// Package auth issues and verifies the bearer tokens of the admin area.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "ADMIN"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type Service struct {
	secret            []byte
	ttl               time.Duration
	adminEmail        string
	adminPasswordHash []byte
	now               func() time.Time
}

func New(secret string, ttl time.Duration, adminEmail, adminPasswordHash string) *Service {
	return &Service{
		secret:            []byte(secret),
		ttl:               ttl,
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPasswordHash: []byte(adminPasswordHash),
		now:               time.Now,
	}
}

// Login checks the admin credentials and returns a signed token with its
// expiry.
func (s *Service) Login(email, password string) (string, time.Time, error) {
	const op = "services.auth.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password))

	if !emailOK || passwordErr != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return s.Issue(email, RoleAdmin)
}

// Issue signs a token for subject with role.
func (s *Service) Issue(subject, role string) (string, time.Time, error) {
	const op = "services.auth.Issue"

	now := s.now()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt, nil
}

// ParseToken verifies the signature and expiry of a token.
func (s *Service) ParseToken(token string) (*Claims, error) {
	const op = "services.auth.ParseToken"

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}

	return &claims, nil
}
