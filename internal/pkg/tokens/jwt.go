// Package tokens issues and verifies signed identity tokens. Secret,
// algorithm, and TTL are fixed at construction and immutable afterwards.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Claims is the verified content of a token: subject (user id) plus any
// extra claims that were embedded at issue time.
type Claims struct {
	Subject uuid.UUID
	Email   string
}

type Service struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewService(secret, algorithm string, ttl time.Duration) (*Service, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &Service{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue signs a token carrying the user id as subject plus an absolute
// expiry timestamp.
func (s *Service) Issue(userId uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userId.String(),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token. Expiry is checked on every call; an
// expired token is rejected even when the signature is valid.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !token.Valid {
		return nil, ErrInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalid
	}

	sub, _ := mapClaims["sub"].(string)
	userId, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalid
	}

	email, _ := mapClaims["email"].(string)

	return &Claims{Subject: userId, Email: email}, nil
}
