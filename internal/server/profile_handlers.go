package server

import (
	"time"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProfileRequest is the request body for profile create/update.
type ProfileRequest struct {
	Company        string   `json:"company"`
	Website        string   `json:"website"`
	Location       string   `json:"location"`
	Bio            string   `json:"bio"`
	Status         string   `json:"status"`
	GithubUsername string   `json:"githubusername"`
	Skills         []string `json:"skills"`
	Youtube        string   `json:"youtube"`
	Twitter        string   `json:"twitter"`
	Facebook       string   `json:"facebook"`
	Linkedin       string   `json:"linkedin"`
	Instagram      string   `json:"instagram"`
}

// ExperienceRequest is the request body for adding a work history entry.
type ExperienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// EducationRequest is the request body for adding a schooling entry.
type EducationRequest struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// GetMyProfile returns the caller's own profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileRepo.GetByUserID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile creates the caller's profile or updates it in place.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fields := validation.Profile(req.Status, req.Skills); len(fields) > 0 {
		return respondAppError(c, models.NewFieldValidationError(fields))
	}

	profile := models.Profile{
		UserID:         currentUserID(c),
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Social: models.SocialLinks{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	}

	saved, err := s.profileRepo.Upsert(c.UserContext(), &profile)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(saved)
}

// GetProfiles lists every profile with its owning user.
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileRepo.List(c.UserContext())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUser returns the profile owned by the given user ID.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "user_id", "Profile")
	if err != nil {
		return respondAppError(c, err)
	}

	profile, err := s.profileRepo.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount removes the caller's posts, profile, and account.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)
	ctx := c.UserContext()

	if err := s.postRepo.DeleteByUserID(ctx, userID); err != nil {
		return respondAppError(c, err)
	}
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return respondAppError(c, err)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return respondAppError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "account deleted", "user_id", userID)

	return c.JSON(fiber.Map{"msg": "User deleted"})
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fields := validation.Experience(req.Title, req.Company, req.From); len(fields) > 0 {
		return respondAppError(c, models.NewFieldValidationError(fields))
	}

	exp := models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	profile, err := s.profileRepo.AddExperience(c.UserContext(), currentUserID(c), &exp)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// RemoveExperience deletes one of the caller's work history entries by ID.
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	expID, err := parseIDParam(c, "exp_id", "Experience entry")
	if err != nil {
		return respondAppError(c, err)
	}

	profile, err := s.profileRepo.RemoveExperience(c.UserContext(), currentUserID(c), expID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req EducationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fields := validation.Education(req.School, req.Degree, req.FieldOfStudy, req.From); len(fields) > 0 {
		return respondAppError(c, models.NewFieldValidationError(fields))
	}

	edu := models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}

	profile, err := s.profileRepo.AddEducation(c.UserContext(), currentUserID(c), &edu)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// RemoveEducation deletes one of the caller's schooling entries by ID.
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	eduID, err := parseIDParam(c, "edu_id", "Education entry")
	if err != nil {
		return respondAppError(c, err)
	}

	profile, err := s.profileRepo.RemoveEducation(c.UserContext(), currentUserID(c), eduID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}
