package server

import (
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest is the request body for credential login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a signed token. A wrong email and a
// wrong password produce the same answer so accounts cannot be enumerated.
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fields := validation.Login(req.Email, req.Password); len(fields) > 0 {
		return respondAppError(c, models.NewFieldValidationError(fields))
	}

	user, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return respondAppError(c, err)
	}
	if user == nil {
		return respondAppError(c, models.NewUnauthorizedError("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return respondAppError(c, models.NewUnauthorizedError("Invalid credentials"))
	}

	tokenString, err := s.tokens.Issue(user.ID)
	if err != nil {
		return respondAppError(c, models.NewInternalError(err))
	}

	return c.JSON(AuthResponse{Token: tokenString, User: user})
}

// GetCurrentUser returns the account behind the presented token.
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}
