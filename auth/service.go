package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"go-sniper/config"
	"go-sniper/database"
	"go-sniper/models"
)

const bearerPrefix = "Bearer "

// Service implements the identity and access component: registration,
// login, token resolution and role checks.
type Service struct {
	db       *database.DB
	secret   []byte
	validity time.Duration
}

// NewService builds a Service from the database layer and config.
func NewService(db *database.DB, cfg config.Config) *Service {
	return &Service{
		db:       db,
		secret:   []byte(cfg.JWTSecret),
		validity: cfg.JWTExpiry,
	}
}

// Token issues a bearer token for the given account id.
func (s *Service) Token(userID uint) (string, error) {
	return IssueToken(userID, s.secret, s.validity)
}

// Register creates a new account and issues its first token. Duplicate
// username or email fails with models.ErrConflict.
func (s *Service) Register(username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < 3 || email == "" || len(password) < 6 {
		return nil, "", models.ErrValidation
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
		Preferences:  models.Preferences{Notifications: true},
	}

	if err := s.db.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.Token(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	logrus.Infof("registered user %q", user.Username)
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password fail identically so accounts cannot be enumerated.
func (s *Service) Login(email, password string) (*models.User, string, error) {
	user, err := s.db.UserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, "", models.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.db.SaveUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.Token(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}
	return user, token, nil
}

// Authenticate resolves the caller from an Authorization header value.
// Missing, malformed or expired tokens and tokens whose subject no longer
// resolves to an active account all fail with models.ErrUnauthenticated.
func (s *Service) Authenticate(header string) (*models.User, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, models.ErrUnauthenticated
	}

	userID, err := ParseToken(strings.TrimPrefix(header, bearerPrefix), s.secret)
	if err != nil {
		return nil, err
	}

	user, err := s.db.UserByID(userID)
	if err != nil || !user.IsActive {
		return nil, models.ErrUnauthenticated
	}
	return user, nil
}

// RequireRole fails with models.ErrForbidden unless the user holds one of
// the given roles.
func (s *Service) RequireRole(user *models.User, roles ...models.Role) error {
	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return models.ErrForbidden
}
