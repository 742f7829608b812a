package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codetok-app/backend/internal/models"
	"github.com/codetok-app/backend/internal/repositories"
	"github.com/codetok-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	socialService    *services.SocialService
	followRepository repositories.FollowRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(socialService *services.SocialService, followRepo repositories.FollowRepository) *FollowHandler {
	return &FollowHandler{
		socialService:    socialService,
		followRepository: followRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.ToggleFollow)
	g.GET("/users/:id/follow/status", h.GetFollowStatus)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// ToggleFollow toggles the authenticated user's follow on another user
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	following, err := h.socialService.ToggleFollow(currentUserID, uint(targetID))
	if err != nil {
		if errors.Is(err, services.ErrSelfFollow) {
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"isFollowing": following}})
}

// GetFollowStatus checks if the authenticated user follows another user
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	isFollowing, err := h.followRepository.IsFollowing(currentUserID, uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"isFollowing": isFollowing}})
}

// GetFollowers lists the users following the given user
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowers(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	count, _ := h.followRepository.GetFollowersCount(uint(userID))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count, "users": toCompactList(users)}})
}

// GetFollowing lists the users the given user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowing(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	count, _ := h.followRepository.GetFollowingCount(uint(userID))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count, "users": toCompactList(users)}})
}

func toCompactList(users []models.User) []models.UserCompact {
	compact := make([]models.UserCompact, 0, len(users))
	for _, u := range users {
		compact = append(compact, u.ToCompact())
	}
	return compact
}
