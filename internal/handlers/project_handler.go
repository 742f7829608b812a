package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/codetok-app/backend/internal/models"
	"github.com/codetok-app/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ProjectHandler handles HTTP requests related to projects
type ProjectHandler struct {
	projectRepository repositories.ProjectRepository
	filesRepository   repositories.ProjectFilesRepository
	likeRepository    repositories.LikeRepository
	favoriteRepo      repositories.FavoriteRepository
	userRepository    repositories.UserRepository
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectRepo repositories.ProjectRepository, filesRepo repositories.ProjectFilesRepository, likeRepo repositories.LikeRepository, favoriteRepo repositories.FavoriteRepository, userRepo repositories.UserRepository) *ProjectHandler {
	return &ProjectHandler{
		projectRepository: projectRepo,
		filesRepository:   filesRepo,
		likeRepository:    likeRepo,
		favoriteRepo:      favoriteRepo,
		userRepository:    userRepo,
	}
}

// RegisterProjectRoutes registers project-related routes
func (h *ProjectHandler) RegisterProjectRoutes(g *echo.Group) {
	g.POST("/projects", h.CreateProject)
	g.GET("/projects/trending", h.GetTrending)
	g.GET("/projects/:id", h.GetProject)
	g.GET("/users/:id/projects", h.GetUserProjects)
}

// CreateProject uploads a new project: metadata into PostgreSQL, the code
// bundle into MongoDB.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	mainFile := req.MainFile
	if mainFile == "" {
		mainFile = req.Files[0].Filename
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	project := &models.Project{
		ID:          uuid.NewString(),
		UserID:      currentUserID,
		Title:       req.Title,
		Description: req.Description,
		MainFile:    mainFile,
		IsPublic:    isPublic,
	}

	if err := h.projectRepository.CreateProject(project); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	files := &models.ProjectFiles{
		ProjectID: project.ID,
		Files:     req.Files,
	}
	ctx, cancel := contextWithTimeout(c, 5*time.Second)
	defer cancel()
	if err := h.filesRepository.SaveFiles(ctx, files); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store project files")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": project})
}

// GetProject returns a project's metadata, its code bundle and the viewer's
// engagement status. Each view bumps the view counter.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	projectID := c.Param("id")

	project, err := h.projectRepository.GetProjectByID(projectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.projectRepository.IncrementViews(projectID); err == nil {
		project.Views++
	}

	ctx, cancel := contextWithTimeout(c, 5*time.Second)
	defer cancel()
	// A missing bundle is tolerated: imported projects may have metadata only
	files, _ := h.filesRepository.GetFiles(ctx, projectID)

	isLiked, _ := h.likeRepository.HasUserLikedProject(currentUserID, projectID)
	isFavorited, _ := h.favoriteRepo.IsProjectFavorited(currentUserID, projectID)

	var author models.UserCompact
	if owner, err := h.userRepository.GetUserByID(project.UserID); err == nil {
		author = owner.ToCompact()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"project":     project,
			"author":      author,
			"files":       files,
			"isLiked":     isLiked,
			"isFavorited": isFavorited,
		},
	})
}

// GetTrending returns public projects ordered by like count
func (h *ProjectHandler) GetTrending(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 50 {
		limit = 20
	}

	projects, err := h.projectRepository.GetTrending(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": projects})
}

// GetUserProjects returns the projects owned by a user
func (h *ProjectHandler) GetUserProjects(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	projects, err := h.projectRepository.GetProjectsByUserID(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": projects})
}
