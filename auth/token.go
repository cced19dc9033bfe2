package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenType is the scheme clients present tokens under
	TokenType = "Bearer"

	DefaultIssuer   = "Films API"
	DefaultTokenTTL = 24 * time.Hour

	signingKeyBits = 2048
)

// Expiry timestamps are anchored to a fixed UTC-5 offset, not the server zone.
var expiryZone = time.FixedZone("UTC-5", -5*60*60)

var (
	// ErrInvalidToken is returned when the token is malformed or its signature does not verify
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidIssuer is returned when the token issuer is invalid
	ErrInvalidIssuer = errors.New("invalid issuer")
)

// Claims are the claims carried by an access token
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"id"`
}

// TokenConfig holds configuration for TokenService
type TokenConfig struct {
	Issuer string
	TTL    time.Duration
	// PrivateKey signs tokens. When nil a new key pair is generated.
	PrivateKey *rsa.PrivateKey
}

// TokenService issues and verifies RS256 bearer tokens. The key pair is
// read-only after construction.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

// NewTokenService creates a token service, generating a 2048-bit key pair
// unless one is supplied.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}

	key := cfg.PrivateKey
	if key == nil {
		var err error
		key, err = rsa.GenerateKey(rand.Reader, signingKeyBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
	}

	return &TokenService{
		privateKey: key,
		publicKey:  &key.PublicKey,
		issuer:     cfg.Issuer,
		ttl:        cfg.TTL,
		now:        time.Now,
	}, nil
}

// LoadPrivateKey reads a PEM encoded RSA private key (PKCS#1 or PKCS#8).
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signing key: %w", err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}
	return key, nil
}

// Issue signs a token for subject carrying the account id claim
func (s *TokenService) Issue(subject string, accountID int64) (string, error) {
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.expiresAt(now)),
		},
		AccountID: strconv.FormatInt(accountID, 10),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifySubject verifies the token and returns its subject
func (s *TokenService) VerifySubject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExpiryEpochMillis verifies the token and returns its expiry in epoch milliseconds
func (s *TokenService) ExpiryEpochMillis(token string) (int64, error) {
	claims, err := s.parse(token)
	if err != nil {
		return 0, err
	}
	return claims.ExpiresAt.Time.UnixMilli(), nil
}

// TokenType returns the token scheme
func (s *TokenService) TokenType() string {
	return TokenType
}

// expiresAt adds the ttl to the wall clock reading of now and reads the
// result as a UTC-5 local time.
func (s *TokenService) expiresAt(now time.Time) time.Time {
	wall := now.Add(s.ttl)
	return time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), expiryZone)
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.publicKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrInvalidIssuer
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
