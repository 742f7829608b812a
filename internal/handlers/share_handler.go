package handlers

import (
	"errors"
	"net/http"

	"github.com/codetok-app/backend/internal/models"
	"github.com/codetok-app/backend/internal/repositories"
	"github.com/codetok-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ShareHandler handles share ledger HTTP requests
type ShareHandler struct {
	socialService   *services.SocialService
	shareRepository repositories.ShareRepository
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(socialService *services.SocialService, shareRepo repositories.ShareRepository) *ShareHandler {
	return &ShareHandler{
		socialService:   socialService,
		shareRepository: shareRepo,
	}
}

// RegisterShareRoutes registers share-related routes
func (h *ShareHandler) RegisterShareRoutes(g *echo.Group) {
	g.POST("/projects/:id/share", h.RecordShare)
	g.GET("/projects/:id/shares/count", h.GetShareCount)
}

// RecordShare appends a share event to the ledger
func (h *ShareHandler) RecordShare(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	projectID := c.Param("id")

	var req models.RecordShareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.socialService.RecordShare(currentUserID, projectID, req.Platform); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

// GetShareCount returns the total share count with a per-platform breakdown
func (h *ShareHandler) GetShareCount(c echo.Context) error {
	projectID := c.Param("id")

	total, err := h.shareRepository.GetSharesCountByProjectID(projectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	byPlatform, err := h.shareRepository.GetShareCountsByPlatform(projectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"total": total, "byPlatform": byPlatform},
	})
}
