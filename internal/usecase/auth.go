package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/email"
	"github.com/ErlanBelekov/wanderstore/internal/metrics"
	"github.com/ErlanBelekov/wanderstore/internal/repository"
	"github.com/ErlanBelekov/wanderstore/internal/security"
)

const (
	defaultColor = "teal"

	// bcrypt ignores input past 72 bytes.
	maxPasswordBytes = 72
)

// TokenIssuer is satisfied by *auth.Manager.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, time.Time, error)
}

type AuthUsecase struct {
	users  repository.UserRepository
	tokens TokenIssuer
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, tokens TokenIssuer, emailSender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
		email:  emailSender,
		logger: logger.With("component", "auth"),
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Color    string
}

func (in *RegisterInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Color = strings.TrimSpace(in.Color)

	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case in.Email == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case in.Password == "":
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	case len(in.Password) > maxPasswordBytes:
		return fmt.Errorf("%w: password is too long", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: email is malformed", domain.ErrValidation)
	}
	if in.Color == "" {
		in.Color = defaultColor
	}
	return nil
}

// Register creates the user and issues a token for it. A duplicate email
// returns domain.ErrEmailTaken and leaves the existing account untouched.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.Session, error) {
	if err := input.normalize(); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Color:        input.Color,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	metrics.RegistrationsTotal.WithLabelValues("created").Inc()

	session, err := u.issue(user)
	if err != nil {
		return nil, err
	}

	subject, body := email.WelcomeMessage(user.Name)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "send welcome email", "user_id", user.ID, "error", err)
	}

	return session, nil
}

// Login returns domain.ErrInvalidCredentials for both an unknown email and a
// wrong password.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (*domain.Session, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		security.BurnCompare(password)
		metrics.LoginAttemptsTotal.WithLabelValues("unknown_email").Inc()
		u.logger.InfoContext(ctx, "login failed", "reason", "unknown email")
		return nil, domain.ErrInvalidCredentials
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("wrong_password").Inc()
		u.logger.InfoContext(ctx, "login failed", "reason", "wrong password", "user_id", user.ID)
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return u.issue(user)
}

func (u *AuthUsecase) issue(user *domain.User) (*domain.Session, error) {
	token, expiresAt, err := u.tokens.Issue(user.Identity())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
