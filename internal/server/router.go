// Package server assembles the HTTP router from its dependencies.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/employee-management-api/internal/auth"
	"github.com/yukikurage/employee-management-api/internal/config"
	"github.com/yukikurage/employee-management-api/internal/constants"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/handlers"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// Dependencies are the shared resources handlers are built from.
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Logger *zap.Logger
	Tokens *auth.TokenManager
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	// Repositories
	employeeRepo := repository.NewEmployeeRepository(deps.DB)
	timesheetRepo := repository.NewTimesheetRepository(deps.DB)
	projectRepo := repository.NewProjectRepository(deps.DB)

	// Services
	authService := services.NewAuthService(employeeRepo, deps.Tokens)
	employeeService := services.NewEmployeeService(employeeRepo)
	timesheetService := services.NewTimesheetService(timesheetRepo, employeeRepo)
	projectService := services.NewProjectService(projectRepo, employeeRepo)
	profileService := services.NewProfileService(employeeRepo, cfg.UploadDir, cfg.MaxUploadBytes)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	timesheetHandler := handlers.NewTimesheetHandler(timesheetService)
	projectHandler := handlers.NewProjectHandler(projectService)
	profileHandler := handlers.NewProfileHandler(profileService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	requireAuth := middleware.RequireAuth(deps.Tokens)

	r.GET("/health", healthHandler.Health)
	r.Static(constants.UploadsURLPrefix, cfg.UploadDir)

	api := r.Group("/api")
	{
		// Employee routes; signup and login are public
		employees := api.Group("/employees")
		{
			employees.POST("/signup", authHandler.Signup)
			employees.POST("/login", authHandler.Login)

			employees.Use(requireAuth)
			employees.GET("/me", authHandler.GetCurrentEmployee)
			employees.GET("/export", employeeHandler.ExportEmployees)
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}

		// Timesheet routes (protected)
		timesheets := api.Group("/timesheets")
		timesheets.Use(requireAuth)
		{
			timesheets.POST("", timesheetHandler.CreateTimesheet)
			timesheets.GET("", timesheetHandler.ListTimesheets)
			timesheets.GET("/:id", timesheetHandler.ListEmployeeTimesheets)
			timesheets.PUT("/:id", timesheetHandler.UpdateTimesheet)
			timesheets.DELETE("/:id", timesheetHandler.DeleteTimesheet)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		// Profile routes (protected, optionally restricted to the owner)
		profile := api.Group("/profile")
		profile.Use(requireAuth, middleware.RequireSelf("id", cfg.EnforceOwnership))
		{
			profile.GET("/:id", profileHandler.GetProfile)
			profile.PUT("/:id", profileHandler.UpdateProfile)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		apierrors.RespondWithError(c, http.StatusNotFound,
			apierrors.NewAPIError(apierrors.ErrCodeNotFound, "Route not found"))
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", constants.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", constants.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
