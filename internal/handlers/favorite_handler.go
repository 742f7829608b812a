package handlers

import (
	"errors"
	"net/http"

	"github.com/codetok-app/backend/internal/repositories"
	"github.com/codetok-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FavoriteHandler handles bookmark-related HTTP requests
type FavoriteHandler struct {
	socialService      *services.SocialService
	favoriteRepository repositories.FavoriteRepository
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(socialService *services.SocialService, favoriteRepo repositories.FavoriteRepository) *FavoriteHandler {
	return &FavoriteHandler{
		socialService:      socialService,
		favoriteRepository: favoriteRepo,
	}
}

// RegisterFavoriteRoutes registers bookmark-related routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/projects/:id/favorite", h.ToggleFavorite)
	g.GET("/projects/:id/favorite/status", h.GetFavoriteStatus)
	g.GET("/favorites", h.GetFavorites)
}

// ToggleFavorite toggles the authenticated user's bookmark on a project
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	projectID := c.Param("id")

	favorited, err := h.socialService.ToggleFavorite(currentUserID, projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"isBookmarked": favorited}})
}

// GetFavoriteStatus checks if the authenticated user has bookmarked a project
func (h *FavoriteHandler) GetFavoriteStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	projectID := c.Param("id")

	isFavorited, err := h.favoriteRepository.IsProjectFavorited(currentUserID, projectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"isBookmarked": isFavorited}})
}

// GetFavorites returns the authenticated user's bookmarks, newest first
func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	favorites, err := h.favoriteRepository.GetFavoritesByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": favorites})
}
