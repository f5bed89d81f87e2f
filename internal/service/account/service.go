package account

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"farmgate/internal/domain"
	"farmgate/internal/password"
	acctrepo "farmgate/internal/repository/account"
	"farmgate/internal/token"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidEmail is returned for malformed email addresses.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidUsername is returned for usernames shorter than three characters.
	ErrInvalidUsername = errors.New("username must be at least 3 characters")
	// ErrInvalidRole is returned for roles outside buyer/farmer.
	ErrInvalidRole = errors.New("invalid role")
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Service handles registration and login flows.
type Service struct {
	repo   acctrepo.Repository
	hasher *password.Hasher
	tokens *token.Manager
}

func New(repo acctrepo.Repository, hasher *password.Hasher, tokens *token.Manager) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	Address  string      `json:"address"`
	FarmName string      `json:"farmName"`
	Location string      `json:"location"`
}

// Register validates the input, hashes the credential and persists a new
// account. The role defaults to buyer when omitted.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 {
		return nil, ErrInvalidUsername
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	role := in.Role
	if role == "" {
		role = domain.RoleBuyer
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		Address:      strings.TrimSpace(in.Address),
		FarmName:     strings.TrimSpace(in.FarmName),
		Location:     strings.TrimSpace(in.Location),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return created, nil
}

// Login verifies the credential for the account with the given username
// and role, and returns the account plus a signed access token.
func (s *Service) Login(ctx context.Context, username, plaintext string, role domain.Role) (*domain.Account, string, error) {
	if !role.Valid() {
		return nil, "", ErrInvalidRole
	}
	a, err := s.repo.GetByUsernameAndRole(ctx, strings.TrimSpace(username), role)
	if err != nil {
		return nil, "", err
	}
	if !s.hasher.Verify(a.PasswordHash, plaintext) {
		return nil, "", ErrInvalidCredentials
	}
	access, err := s.tokens.Issue(*a)
	if err != nil {
		return nil, "", err
	}
	return a, access, nil
}

// TokenTTLSeconds exposes the access token lifetime in seconds.
func (s *Service) TokenTTLSeconds() int {
	return s.tokens.TTLSeconds()
}
