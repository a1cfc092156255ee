package handler

import (
	"errors"

	"provider-match/internal/delivery/http/dto"
	"provider-match/internal/delivery/http/middleware"
	"provider-match/internal/pkg/response"
	ucauth "provider-match/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc ucauth.Usecase
}

type registerRequest struct {
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Role               string   `json:"role"`
	Location           string   `json:"location"`
	IndustryPreference string   `json:"industry_preference"`
	Name               string   `json:"name"`
	Skills             []string `json:"skills"`
	ServiceFocus       string   `json:"service_focus"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc ucauth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterRoutes wires the auth endpoints. The rate limit guards the two
// public endpoints; only /validate sits behind authentication. Handlers run
// in argument order, so the guards go first and the endpoint last.
func (h *AuthHandler) RegisterRoutes(r fiber.Router, rateLimit, authn fiber.Handler) {
	r.Post("/register", rateLimit, h.Register)
	r.Post("/login", rateLimit, h.Login)
	r.Get("/validate", authn, h.Validate)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	usr, tok, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:              req.Email,
		Password:           req.Password,
		Role:               req.Role,
		Location:           req.Location,
		IndustryPreference: req.IndustryPreference,
		Name:               req.Name,
		Skills:             req.Skills,
		ServiceFocus:       req.ServiceFocus,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.NewAuthResponse(usr, tok))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	usr, tok, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewAuthResponse(usr, tok))
}

// Validate reports the identity the auth middleware already verified.
func (h *AuthHandler) Validate(c fiber.Ctx) error {
	userID, role, ok := middleware.Identity(c)
	if !ok {
		return middleware.NewMessageError(fiber.StatusUnauthorized, response.MessageTokenInvalid, nil)
	}

	return response.JSON(c, fiber.StatusOK, dto.ValidateResponse{
		Valid:  true,
		UserID: userID,
		Role:   role,
	})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already registered", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewMessageError(fiber.StatusUnauthorized, response.MessageInvalidCredentials, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
