package users

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cinelog/internal/fault"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already in use")
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a member-role account with a bcrypt-hashed credential.
// The plaintext password is never stored or logged.
func (s *Service) Register(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", fault.ErrInvalidInput)
	}

	// Pre-check both uniqueness rules so the field-specific outcome does not
	// depend on the database driver's violation error. The unique constraints
	// remain the backstop for two registrations racing past the check.
	if taken, err := s.repo.UsernameExists(username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.repo.EmailExists(email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleMember,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, classifyCreateErr(err)
	}
	return u, nil
}

func (s *Service) GetByUsername(username string) (*User, error) {
	return s.repo.GetByUsername(username)
}

// classifyCreateErr maps a unique-constraint violation to the field-specific
// failure by constraint name. Constraint names are stable identifiers, unlike
// the violation message, which the database localizes.
func classifyCreateErr(err error) error {
	if !fault.IsUniqueViolation(err) {
		return err
	}
	switch fault.UniqueConstraint(err) {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_email_key":
		return ErrEmailTaken
	}
	return fmt.Errorf("%w: users", fault.ErrDuplicateKey)
}
