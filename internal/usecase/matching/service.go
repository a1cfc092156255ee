package matching

import (
	"context"
	"errors"
	"sort"

	"provider-match/internal/domain/matching"
	"provider-match/internal/domain/provider"
	"provider-match/internal/domain/user"
)

var (
	ErrForbidden      = errors.New("forbidden")
	ErrSeekerNotFound = errors.New("seeker not found")
	ErrInternal       = errors.New("internal error")
)

type Match struct {
	Provider provider.Provider
	Score    float64
}

type Usecase interface {
	Rank(ctx context.Context, callerID int64, role string) ([]Match, error)
}

type Service struct {
	users     user.Repository
	providers provider.Repository
}

func NewService(users user.Repository, providers provider.Repository) *Service {
	return &Service{users: users, providers: providers}
}

// Rank scores every provider owned by a provider-role user against the
// calling seeker and returns them ordered best-first. Ties on score break
// by provider id ascending so the ordering is deterministic.
func (s *Service) Rank(ctx context.Context, callerID int64, role string) ([]Match, error) {
	if role != user.RoleSeeker {
		return nil, ErrForbidden
	}

	seeker, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrSeekerNotFound
		}
		return nil, ErrInternal
	}

	providers, err := s.providers.ListByOwnerRole(ctx, user.RoleProvider)
	if err != nil {
		return nil, ErrInternal
	}

	sk := matching.Seeker{
		Location:           seeker.Location,
		IndustryPreference: seeker.IndustryPreference,
	}

	matches := make([]Match, 0, len(providers))
	for _, p := range providers {
		score := matching.Score(matching.Candidate{
			ServiceFocus: p.ServiceFocus,
			Rating:       p.Rating,
			Location:     p.Location,
		}, sk)
		matches = append(matches, Match{Provider: p, Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Provider.ID < matches[j].Provider.ID
	})

	return matches, nil
}
