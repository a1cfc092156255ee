package handler

import (
	"errors"

	"provider-match/internal/delivery/http/dto"
	"provider-match/internal/delivery/http/middleware"
	"provider-match/internal/pkg/response"
	ucmatching "provider-match/internal/usecase/matching"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc ucmatching.Usecase
}

func NewMatchHandler(uc ucmatching.Usecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/providers", h.RankProviders)
}

func (h *MatchHandler) RankProviders(c fiber.Ctx) error {
	userID, role, ok := middleware.Identity(c)
	if !ok {
		return middleware.NewMessageError(fiber.StatusUnauthorized, response.MessageTokenInvalid, nil)
	}

	matches, err := h.uc.Rank(c.Context(), userID, role)
	if err != nil {
		return mapMatchingError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewMatchedProviderResponses(matches))
}

func mapMatchingError(err error) error {
	switch {
	case errors.Is(err, ucmatching.ErrForbidden):
		return middleware.NewMessageError(fiber.StatusForbidden, "Only seekers can use the matching service", err)
	case errors.Is(err, ucmatching.ErrSeekerNotFound):
		return middleware.NewMessageError(fiber.StatusNotFound, "Seeker not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
