package server

import (
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a freshly issued token and the account it identifies.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a new account and returns a signed token for it.
func (s *Server) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fields := validation.Register(req.Name, req.Email, req.Password); len(fields) > 0 {
		return respondAppError(c, models.NewFieldValidationError(fields))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondAppError(c, models.NewInternalError(err))
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Avatar:   models.GravatarURL(req.Email),
	}
	if err := s.userRepo.Create(c.UserContext(), &user); err != nil {
		return respondAppError(c, err)
	}

	tokenString, err := s.tokens.Issue(user.ID)
	if err != nil {
		return respondAppError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered", "user_id", user.ID)

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{Token: tokenString, User: &user})
}
