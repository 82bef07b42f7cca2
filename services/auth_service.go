package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTypeAccess = "access"

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, error)
	ParseAccessToken(tokenString string) (*AccessClaims, error)
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthConfig задаёт единственную допустимую пару логин/пароль и параметры токена.
type AuthConfig struct {
	Username  string
	Password  string
	Secret    string
	AccessTTL time.Duration
}

// AccessClaims: содержимое access-токена; sub хранит имя пользователя.
type AccessClaims struct {
	Type  string `json:"type"`
	Fresh bool   `json:"fresh"`
	jwt.RegisteredClaims
}

type authService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	accessTTL    time.Duration
	now          func() time.Time
}

func NewAuthService(cfg AuthConfig) (AuthService, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("auth username and password are required")
	}
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.AccessTTL <= 0 {
		return nil, fmt.Errorf("access token ttl must be positive, got %s", cfg.AccessTTL)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth password: %w", err)
	}

	return &authService{
		username:     cfg.Username,
		passwordHash: hash,
		jwtSecret:    []byte(cfg.Secret),
		accessTTL:    cfg.AccessTTL,
		now:          time.Now,
	}, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) == 1
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return "", fmt.Errorf("failed to compare password hash: %w", err)
	}
	if !usernameOK || err != nil {
		return "", ErrAuthInvalidCredentials
	}

	return s.issueAccessToken(input.Username)
}

func (s *authService) issueAccessToken(subject string) (string, error) {
	now := s.now()
	claims := AccessClaims{
		Type:  tokenTypeAccess,
		Fresh: false,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *authService) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.Type != tokenTypeAccess || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
