package auth

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/employee-portal/internal"
	"github.com/frahmantamala/employee-portal/internal/core/events"
	"golang.org/x/crypto/bcrypt"
)

// Repository is the data access needed by the auth flows. Lookups join the
// user to its owning employee so a single round trip decides a login.
type Repository interface {
	GetCredentialByUsername(username string) (*Credential, error)
	GetActiveEmployeeRole(empID int64) (string, error)
	UserExistsForEmployee(empID int64) (bool, error)
	UsernameTaken(username string) (bool, error)
	CreateUser(empID int64, username, passwordHash, role string) (int64, error)
}

// Service is the main auth service with dependencies
type Service struct {
	repo           Repository
	tokenGenerator TokenGenerator
	bcryptCost     int
	eventBus       *events.EventBus
	logger         *slog.Logger
}

func NewService(repo Repository, tokenGen TokenGenerator, bcryptCost int, eventBus *events.EventBus, logger *slog.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:           repo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		eventBus:       eventBus,
		logger:         logger,
	}
}

// Authenticate validates credentials and issues the session token. Every
// credential failure collapses into ErrInvalidCredentials so the caller
// cannot distinguish a wrong password from an unknown username or an
// inactive employee. An unparseable stored role is surfaced separately: it
// is a configuration problem, not the user's fault.
func (s *Service) Authenticate(dto LoginDTO) (Session, error) {
	if err := dto.Validate(); err != nil {
		return Session{}, err
	}

	cred, err := s.repo.GetCredentialByUsername(dto.Username)
	if err != nil {
		s.logger.Warn("login lookup failed", "username", dto.Username, "error", err)
		return Session{}, ErrInvalidCredentials
	}

	if cred.EmployeeStatus != "active" {
		s.logger.Warn("login rejected: employee not active", "username", dto.Username, "emp_id", cred.EmpID)
		return Session{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(dto.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	role, err := ParseRole(cred.Role)
	if err != nil {
		s.logger.Error("login rejected: unrecognized role on account",
			"username", dto.Username, "role", cred.Role)
		return Session{}, ErrUnknownRole
	}

	principal := &internal.Principal{
		UserID:   cred.UserID,
		Username: cred.Username,
		Role:     string(role),
		EmpID:    cred.EmpID,
	}

	token, err := s.tokenGenerator.GenerateSessionToken(principal)
	if err != nil {
		return Session{}, internal.NewInternalError("could not issue session token", err)
	}

	s.logger.Info("login successful", "user_id", cred.UserID, "role", role)

	return Session{
		Token:    token,
		Username: cred.Username,
		Role:     string(role),
		EmpID:    cred.EmpID,
		Redirect: role.DashboardPath(),
	}, nil
}

// Register creates a login for an existing active employee. The three checks
// run sequentially and short-circuit on the first failure; no transaction
// spans them, so two concurrent registrations for the same employee can race.
// The loser hits the unique constraint and the request fails, which is an
// accepted outcome at this request volume.
func (s *Service) Register(dto RegisterDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	empRole, err := s.repo.GetActiveEmployeeRole(dto.EmpID)
	if err != nil || empRole == "" {
		s.logger.Warn("registration rejected: employee missing or inactive", "emp_id", dto.EmpID)
		return ErrEmployeeNotEligible
	}

	exists, err := s.repo.UserExistsForEmployee(dto.EmpID)
	if err != nil {
		return internal.NewInternalError("could not check existing account", err)
	}
	if exists {
		s.logger.Info("registration rejected: account exists", "emp_id", dto.EmpID)
		return ErrAccountExists
	}

	taken, err := s.repo.UsernameTaken(dto.Username)
	if err != nil {
		return internal.NewInternalError("could not check username", err)
	}
	if taken {
		s.logger.Info("registration rejected: username taken", "username", dto.Username)
		return ErrUsernameTaken
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return internal.NewInternalError("could not hash password", err)
	}

	userID, err := s.repo.CreateUser(dto.EmpID, dto.Username, hash, empRole)
	if err != nil {
		s.logger.Error("failed to create user", "emp_id", dto.EmpID, "error", err)
		return internal.NewInternalError("could not create account", err)
	}

	s.logger.Info("user registered", "user_id", userID, "emp_id", dto.EmpID, "role", empRole)

	if s.eventBus != nil {
		s.eventBus.Publish(context.Background(),
			events.NewUserRegisteredEvent(userID, dto.EmpID, dto.Username, empRole))
	}

	return nil
}

// ValidateAccessToken validates a session token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
