package handlers

import (
	"errors"
	"net/http"

	"github.com/codetok-app/backend/internal/models"
	"github.com/codetok-app/backend/internal/repositories"
	"github.com/codetok-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	socialService     *services.SocialService
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(socialService *services.SocialService, commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{
		socialService:     socialService,
		commentRepository: commentRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/projects/:id/comments", h.CreateComment)
	g.GET("/projects/:id/comments", h.GetComments)
}

// CreateComment creates a new comment or reply on a project
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	projectID := c.Param("id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.socialService.AddComment(currentUserID, projectID, req.Content, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		case errors.Is(err, services.ErrCommentNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Parent comment not found")
		case errors.Is(err, services.ErrInvalidParent):
			return echo.NewHTTPError(http.StatusBadRequest, "Replies can only target top-level comments on the same project")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": comment})
}

// GetComments retrieves the two-level comment tree for a project
func (h *CommentHandler) GetComments(c echo.Context) error {
	projectID := c.Param("id")

	threads, err := h.commentRepository.GetThreadsByProjectID(projectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": threads})
}
