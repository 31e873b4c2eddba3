package server

import (
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const defaultFeedLimit = 50

// PostRequest is the request body for creating a post.
type PostRequest struct {
	Text string `json:"text"`
}

// CreatePost publishes a post under the caller's identity. The author's name
// and avatar are copied onto the post so the feed needs no user join.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fields := validation.Post(req.Text); len(fields) > 0 {
		return respondAppError(c, models.NewFieldValidationError(fields))
	}

	user, err := s.userRepo.GetByID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	post := models.Post{
		UserID: user.ID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(c.UserContext(), &post); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts returns the feed, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultFeedLimit)
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	posts, err := s.postRepo.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(posts)
}

// GetPost returns a single post with its likes.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id", "Post")
	if err != nil {
		return respondAppError(c, err)
	}

	post, err := s.postRepo.GetByID(c.UserContext(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(post)
}

// DeletePost removes a post. Only its author may do so.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id", "Post")
	if err != nil {
		return respondAppError(c, err)
	}

	post, err := s.postRepo.GetByID(c.UserContext(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	if post.UserID != currentUserID(c) {
		return respondAppError(c, models.NewForbiddenError("User not authorized"))
	}

	if err := s.postRepo.Delete(c.UserContext(), postID); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost records the caller's like and returns the updated like list.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id", "Post")
	if err != nil {
		return respondAppError(c, err)
	}

	post, err := s.postRepo.Like(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(post.Likes)
}

// UnlikePost removes the caller's like and returns the updated like list.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id", "Post")
	if err != nil {
		return respondAppError(c, err)
	}

	post, err := s.postRepo.Unlike(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(post.Likes)
}
