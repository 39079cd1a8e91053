// Package principal resolves the calling principal from request headers,
// either trusted as-is or carried in an HS256 bearer token.
package principal

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	"github.com/louisbranch/assetregistry/internal/platform/config"
)

// Mode selects how the caller identity is read.
type Mode string

const (
	// ModeHeader trusts the principal header as sent.
	ModeHeader Mode = "header"
	// ModeJWT requires a signed bearer token whose subject is the principal.
	ModeJWT Mode = "jwt"
)

const (
	// HeaderPrincipal carries the principal in header mode.
	HeaderPrincipal = "x-registry-principal"
	// HeaderAuthorization carries the bearer token in jwt mode.
	HeaderAuthorization = "authorization"

	bearerPrefix = "bearer "
	// SigningMethod is the only accepted token algorithm.
	SigningMethod = "HS256"
	minKeyBytes   = 32
)

// tokenEnv holds raw env values before post-parse validation.
type tokenEnv struct {
	Mode     string        `env:"AUTH_MODE" envDefault:"header"`
	Key      string        `env:"JWT_HMAC_KEY"`
	Issuer   string        `env:"JWT_ISSUER" envDefault:"assetregistry"`
	Audience string        `env:"JWT_AUDIENCE" envDefault:"assetregistry"`
	TTL      time.Duration `env:"JWT_TTL" envDefault:"1h"`
}

// Config defines how principals are resolved and tokens are minted.
type Config struct {
	Mode     Mode
	Issuer   string
	Audience string
	Key      []byte
	TTL      time.Duration
	Now      func() time.Time
}

// Claims captures validated token claims.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// LoadConfigFromEnv reads principal configuration. The HMAC key is only
// required in jwt mode.
func LoadConfigFromEnv(now func() time.Time) (Config, error) {
	var raw tokenEnv
	if err := config.ParseEnv(&raw); err != nil {
		return Config{}, fmt.Errorf("parse principal env: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	cfg := Config{
		Mode:     Mode(strings.ToLower(strings.TrimSpace(raw.Mode))),
		Issuer:   strings.TrimSpace(raw.Issuer),
		Audience: strings.TrimSpace(raw.Audience),
		TTL:      raw.TTL,
		Now:      now,
	}
	if key := strings.TrimSpace(raw.Key); key != "" {
		keyBytes, err := DecodeKey(key)
		if err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", config.EnvName("JWT_HMAC_KEY"), err)
		}
		cfg.Key = keyBytes
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks mode-specific requirements.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeHeader:
		return nil
	case ModeJWT:
		if c.Issuer == "" {
			return fmt.Errorf("%s is required in jwt mode", config.EnvName("JWT_ISSUER"))
		}
		if c.Audience == "" {
			return fmt.Errorf("%s is required in jwt mode", config.EnvName("JWT_AUDIENCE"))
		}
		if len(c.Key) < minKeyBytes {
			return fmt.Errorf("%s must decode to at least %d bytes", config.EnvName("JWT_HMAC_KEY"), minKeyBytes)
		}
		return nil
	default:
		return fmt.Errorf("unsupported auth mode %q", c.Mode)
	}
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}

// Resolve returns the principal for a request whose headers are read with
// get. An absent identity resolves to the empty principal; a present but
// invalid token is an error.
func (c Config) Resolve(get func(string) string) (string, error) {
	if get == nil {
		return "", nil
	}
	if c.Mode != ModeJWT {
		return strings.TrimSpace(get(HeaderPrincipal)), nil
	}
	header := strings.TrimSpace(get(HeaderAuthorization))
	if header == "" {
		return "", nil
	}
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", apperrors.New(apperrors.CodeCallerTokenInvalid, "authorization must be a bearer token")
	}
	claims, err := ValidateToken(header[len(bearerPrefix):], c)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// registryClaims is the internal claims type used for JWT parsing.
type registryClaims struct {
	jwt.RegisteredClaims
}

// IssueToken mints a signed token for subject valid for cfg.TTL.
func IssueToken(subject string, cfg Config) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", errors.New("token subject is required")
	}
	if len(cfg.Key) < minKeyBytes {
		return "", fmt.Errorf("signing key must be at least %d bytes", minKeyBytes)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	now := cfg.now()
	claims := registryClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    cfg.Issuer,
		Audience:  jwt.ClaimStrings{cfg.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a bearer token and returns its claims.
func ValidateToken(token string, cfg Config) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, apperrors.New(apperrors.CodeCallerTokenInvalid, "token is required")
	}
	if len(cfg.Key) < minKeyBytes || cfg.Issuer == "" || cfg.Audience == "" {
		return Claims{}, errors.New("token verifier is not configured")
	}

	var parsed registryClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{SigningMethod}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(cfg.now),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}
	subject := strings.TrimSpace(parsed.Subject)
	if subject == "" {
		return Claims{}, apperrors.New(apperrors.CodeCallerTokenInvalid, "token subject is required")
	}

	claims := Claims{
		Subject:   subject,
		Issuer:    parsed.Issuer,
		Audience:  []string(parsed.Audience),
		ExpiresAt: parsed.ExpiresAt.Time.UTC(),
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return apperrors.Wrap(apperrors.CodeCallerTokenInvalid, "token signature is invalid", err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.Wrap(apperrors.CodeCallerTokenInvalid, "token is expired", err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return apperrors.Wrap(apperrors.CodeCallerTokenInvalid, "token issuer or audience mismatch", err)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return apperrors.Wrap(apperrors.CodeCallerTokenInvalid, "token alg is invalid", err)
	}
	return apperrors.Wrap(apperrors.CodeCallerTokenInvalid, "token is invalid", err)
}

// DecodeKey decodes a base64 HMAC key, padded or not.
func DecodeKey(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
