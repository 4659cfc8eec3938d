package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const (
	tokenIssuer       = "quotebook"
	minPasswordLength = 8

	// DefaultSessionTTL is used when AuthServiceConfig.TTL is zero.
	DefaultSessionTTL = 14 * 24 * time.Hour
)

// ErrInvalidCredentials is returned by Authenticate for an unknown user,
// an inactive user or a wrong password alike.
var ErrInvalidCredentials = fmt.Errorf("invalid username or password: %w", domain.ErrUnauthenticated)

// AuthService verifies passwords and issues the signed session tokens
// carried in the session cookie.
type AuthService struct {
	users  ports.UserRepository
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
	logger *slog.Logger
}

// AuthServiceConfig contains configuration for the auth service.
type AuthServiceConfig struct {
	Users ports.UserRepository

	// Secret signs session tokens with HMAC-SHA256.
	Secret     string
	TTL        time.Duration
	BcryptCost int

	// Now is overridable in tests.
	Now    func() time.Time
	Logger *slog.Logger
}

// NewAuthService creates an auth service. It panics without a user
// repository or secret.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.Users == nil || cfg.Secret == "" {
		panic("app: AuthService requires a user repository and a secret")
	}

	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &AuthService{
		users:  cfg.Users,
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		cost:   cfg.BcryptCost,
		now:    cfg.Now,
		logger: cfg.Logger,
	}
}

// Authenticate checks a username and password.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("loading user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.InfoContext(ctx, "login rejected", slog.String("username", user.Username))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a session token for user and returns it with its expiry.
func (s *AuthService) IssueToken(user *domain.User) (string, time.Time, error) {
	now := s.now()
	expires := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
		ID:        uuid.NewString(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}

	return token, expires, nil
}

// CurrentUser resolves a session token to an active user. Any problem with
// the token, including expiry, yields domain.ErrUnauthenticated.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", domain.ErrUnauthenticated)
	}

	user, err := s.users.GetActive(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user no longer active", domain.ErrUnauthenticated)
		}

		return nil, fmt.Errorf("loading session user: %w", err)
	}

	return user, nil
}

// CreateUser hashes password and stores a new account.
func (s *AuthService) CreateUser(
	ctx context.Context,
	username, password string,
	staff, superuser bool,
) (*domain.User, error) {
	errs := domain.ValidationErrors{}

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "this field is required")
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		errs.Add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(username, hash, staff, superuser)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user created",
		slog.String("username", user.Username),
		slog.Bool("staff", user.IsStaff),
		slog.Bool("superuser", user.IsSuperuser),
	)

	return user, nil
}

// SetPassword replaces the password of an existing account.
func (s *AuthService) SetPassword(ctx context.Context, username, password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	hash, err := s.hash(password)
	if err != nil {
		return err
	}

	return s.users.SetPassword(ctx, user.ID, hash)
}

func (s *AuthService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.NewValidationError("password", "must be at most 72 bytes")
		}

		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}
