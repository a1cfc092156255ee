package dto

import "provider-match/internal/usecase/matching"

type MatchedProviderResponse struct {
	ProviderResponse
	MatchScore float64 `json:"match_score"`
}

func NewMatchedProviderResponses(matches []matching.Match) []MatchedProviderResponse {
	out := make([]MatchedProviderResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchedProviderResponse{
			ProviderResponse: NewProviderResponse(m.Provider),
			MatchScore:       m.Score,
		})
	}
	return out
}
