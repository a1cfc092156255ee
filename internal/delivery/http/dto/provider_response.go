package dto

import (
	"time"

	"provider-match/internal/domain/provider"
)

type ProviderResponse struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"user_id"`
	Name         string   `json:"name"`
	Skills       []string `json:"skills"`
	Rating       float64  `json:"rating"`
	Location     string   `json:"location"`
	ServiceFocus string   `json:"service_focus"`
	CreatedAt    string   `json:"created_at"`
}

func NewProviderResponse(p provider.Provider) ProviderResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProviderResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Skills:       skills,
		Rating:       p.Rating,
		Location:     p.Location,
		ServiceFocus: p.ServiceFocus,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewProviderResponses(providers []provider.Provider) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, NewProviderResponse(p))
	}
	return out
}
