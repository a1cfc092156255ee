package provider

import (
	"context"
	"errors"

	"provider-match/internal/domain/provider"
	"provider-match/internal/domain/user"
)

var (
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("provider not found")
	ErrInternal  = errors.New("internal error")
)

type CreateInput struct {
	Name         string
	Skills       []string
	Rating       float64
	Location     string
	ServiceFocus string
}

// UpdateInput applies partial-update semantics: nil fields leave the
// stored value unchanged. Rating is not client-mutable here.
type UpdateInput struct {
	Name         *string
	Skills       *[]string
	Location     *string
	ServiceFocus *string
}

type Usecase interface {
	Create(ctx context.Context, ownerID int64, role string, in CreateInput) (provider.Provider, error)
	Update(ctx context.Context, callerID int64, role string, providerID int64, in UpdateInput) (provider.Provider, error)
	List(ctx context.Context) ([]provider.Provider, error)
}

type Service struct {
	providers provider.Repository
}

func NewService(providers provider.Repository) *Service {
	return &Service{providers: providers}
}

func (s *Service) Create(ctx context.Context, ownerID int64, role string, in CreateInput) (provider.Provider, error) {
	if role != user.RoleProvider {
		return provider.Provider{}, ErrForbidden
	}

	p := provider.Provider{
		UserID:       ownerID,
		Name:         in.Name,
		Skills:       in.Skills,
		Rating:       in.Rating,
		Location:     in.Location,
		ServiceFocus: in.ServiceFocus,
	}

	created, err := s.providers.Create(ctx, p)
	if err != nil {
		return provider.Provider{}, ErrInternal
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, callerID int64, role string, providerID int64, in UpdateInput) (provider.Provider, error) {
	if role != user.RoleProvider {
		return provider.Provider{}, ErrForbidden
	}

	p, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return provider.Provider{}, ErrNotFound
		}
		return provider.Provider{}, ErrInternal
	}

	if p.UserID != callerID {
		return provider.Provider{}, ErrForbidden
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Skills != nil {
		p.Skills = *in.Skills
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.ServiceFocus != nil {
		p.ServiceFocus = *in.ServiceFocus
	}

	updated, err := s.providers.Update(ctx, p)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return provider.Provider{}, ErrNotFound
		}
		return provider.Provider{}, ErrInternal
	}
	return updated, nil
}

func (s *Service) List(ctx context.Context) ([]provider.Provider, error) {
	providers, err := s.providers.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return providers, nil
}
