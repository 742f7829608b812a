package handlers

import (
	"errors"
	"net/http"

	"github.com/codetok-app/backend/internal/repositories"
	"github.com/codetok-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	socialService  *services.SocialService
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(socialService *services.SocialService, likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{
		socialService:  socialService,
		likeRepository: likeRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/projects/:id/like", h.ToggleLike)
	g.GET("/projects/:id/like/status", h.GetLikeStatus)
	g.GET("/projects/:id/likes/count", h.GetLikesCount)
}

// ToggleLike toggles the authenticated user's like on a project
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	projectID := c.Param("id")

	liked, err := h.socialService.ToggleLike(currentUserID, projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"isLiked": liked}})
}

// GetLikeStatus checks if the authenticated user has liked a specific project
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	projectID := c.Param("id")

	hasLiked, err := h.likeRepository.HasUserLikedProject(currentUserID, projectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"isLiked": hasLiked}})
}

// GetLikesCount retrieves the total number of likes for a specific project
func (h *LikeHandler) GetLikesCount(c echo.Context) error {
	projectID := c.Param("id")

	count, err := h.likeRepository.GetLikesCountByProjectID(projectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"project_id": projectID, "likes_count": count}})
}
