package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"provider-match/internal/domain/account"
	"provider-match/internal/domain/provider"
	"provider-match/internal/domain/user"
	"provider-match/internal/pkg/token"
)

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Email              string
	Password           string
	Role               string
	Location           string
	IndustryPreference string

	// Provider profile fields, used only when Role is "provider".
	Name         string
	Skills       []string
	ServiceFocus string
}

type LoginInput struct {
	Email    string
	Password string
}

type Usecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, error)
}

type Service struct {
	accounts account.Repository
	users    user.Repository
	tokens   token.Service
}

func NewService(accounts account.Repository, users user.Repository, tokens token.Service) *Service {
	return &Service{accounts: accounts, users: users, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" || !user.ValidRole(in.Role) {
		return user.User{}, "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	u := user.User{
		Email:              email,
		PasswordHash:       string(hash),
		Role:               in.Role,
		Location:           in.Location,
		IndustryPreference: in.IndustryPreference,
	}

	var p *provider.Provider
	if in.Role == user.RoleProvider {
		p = &provider.Provider{
			Name:         in.Name,
			Skills:       in.Skills,
			Location:     in.Location,
			ServiceFocus: in.ServiceFocus,
		}
	}

	created, _, err := s.accounts.Register(ctx, u, p)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, "", ErrEmailRegistered
		}
		return user.User{}, "", ErrInternal
	}

	tok, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(created), tok, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// Same failure as a wrong password so callers cannot probe
			// which emails exist.
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(u), tok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
