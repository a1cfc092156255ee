package handler

import (
	"errors"
	"strconv"

	"provider-match/internal/delivery/http/dto"
	"provider-match/internal/delivery/http/middleware"
	"provider-match/internal/domain/user"
	"provider-match/internal/pkg/response"
	ucprovider "provider-match/internal/usecase/provider"

	"github.com/gofiber/fiber/v3"
)

type ProviderHandler struct {
	uc ucprovider.Usecase
}

type createProviderRequest struct {
	Name         string   `json:"name"`
	Skills       []string `json:"skills"`
	Rating       float64  `json:"rating"`
	Location     string   `json:"location"`
	ServiceFocus string   `json:"service_focus"`
}

type updateProviderRequest struct {
	Name         *string   `json:"name"`
	Skills       *[]string `json:"skills"`
	Location     *string   `json:"location"`
	ServiceFocus *string   `json:"service_focus"`
}

func NewProviderHandler(uc ucprovider.Usecase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

func (h *ProviderHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
}

func (h *ProviderHandler) List(c fiber.Ctx) error {
	providers, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewProviderResponses(providers))
}

func (h *ProviderHandler) Create(c fiber.Ctx) error {
	userID, role, ok := middleware.Identity(c)
	if !ok {
		return middleware.NewMessageError(fiber.StatusUnauthorized, response.MessageTokenInvalid, nil)
	}

	var req createProviderRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	created, err := h.uc.Create(c.Context(), userID, role, ucprovider.CreateInput{
		Name:         req.Name,
		Skills:       req.Skills,
		Rating:       req.Rating,
		Location:     req.Location,
		ServiceFocus: req.ServiceFocus,
	})
	if err != nil {
		if errors.Is(err, ucprovider.ErrForbidden) {
			return middleware.NewAppError(fiber.StatusForbidden, "Only providers can create provider profiles", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.NewProviderResponse(created))
}

func (h *ProviderHandler) Update(c fiber.Ctx) error {
	userID, role, ok := middleware.Identity(c)
	if !ok {
		return middleware.NewMessageError(fiber.StatusUnauthorized, response.MessageTokenInvalid, nil)
	}

	providerID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	var req updateProviderRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	updated, err := h.uc.Update(c.Context(), userID, role, providerID, ucprovider.UpdateInput{
		Name:         req.Name,
		Skills:       req.Skills,
		Location:     req.Location,
		ServiceFocus: req.ServiceFocus,
	})
	if err != nil {
		return mapProviderUpdateError(role, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewProviderResponse(updated))
}

func mapProviderUpdateError(role string, err error) error {
	switch {
	case errors.Is(err, ucprovider.ErrForbidden):
		if role != user.RoleProvider {
			return middleware.NewAppError(fiber.StatusForbidden, "Only providers can update their profile", err)
		}
		return middleware.NewAppError(fiber.StatusForbidden, "You can only update your own profile", err)
	case errors.Is(err, ucprovider.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Provider not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
