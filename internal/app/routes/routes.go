package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/controllers"
	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrls.AuthController.Register)
		auth.POST("/login", ctrls.AuthController.Login)
	}

	// Public browse routes
	events := v1.Group("/events")
	{
		events.GET("", ctrls.EventController.List)
		events.GET("/:id", ctrls.EventController.GetByID)
		events.GET("/:id/summary", ctrls.EventController.Summary)
		events.GET("/:id/groups", ctrls.GroupController.GetByEvent)
		events.GET("/:id/winners", ctrls.WinnerController.GetByEvent)
	}

	// Everything below requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", ctrls.AuthController.Profile)

		institutes := authenticated.Group("/institutes")
		{
			institutes.GET("", ctrls.InstituteController.GetAll)
			institutes.GET("/:id", ctrls.InstituteController.GetByID)
			institutes.GET("/:id/summary", ctrls.InstituteController.Summary)
			institutes.GET("/:id/departments", ctrls.InstituteController.Departments)

			institutesAdmin := institutes.Group("")
			institutesAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				institutesAdmin.POST("", ctrls.InstituteController.Create)
				institutesAdmin.PUT("/:id", ctrls.InstituteController.Update)
				institutesAdmin.DELETE("/:id", ctrls.InstituteController.Delete)
			}
		}

		departments := authenticated.Group("/departments")
		{
			departments.GET("", ctrls.DepartmentController.GetAll)
			departments.GET("/:id", ctrls.DepartmentController.GetByID)
			departments.GET("/:id/events", ctrls.DepartmentController.Events)

			departmentsAdmin := departments.Group("")
			departmentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				departmentsAdmin.POST("", ctrls.DepartmentController.Create)
				departmentsAdmin.PUT("/:id", ctrls.DepartmentController.Update)
				departmentsAdmin.DELETE("/:id", ctrls.DepartmentController.Delete)
			}
		}

		// Event and winner management is open to coordinators and admins
		eventsManaged := authenticated.Group("/events")
		eventsManaged.Use(authMiddleware.RoleRequired(models.RoleCoordinator, models.RoleAdmin))
		{
			eventsManaged.POST("", ctrls.EventController.Create)
			eventsManaged.PUT("/:id", ctrls.EventController.Update)
			eventsManaged.DELETE("/:id", ctrls.EventController.Delete)
			eventsManaged.POST("/:id/winners", ctrls.WinnerController.DeclareForEvent)
		}

		winners := authenticated.Group("/winners")
		winners.Use(authMiddleware.RoleRequired(models.RoleCoordinator, models.RoleAdmin))
		{
			winners.PUT("/:id", ctrls.WinnerController.Update)
			winners.DELETE("/:id", ctrls.WinnerController.Delete)
		}

		groups := authenticated.Group("/groups")
		{
			groups.GET("/:id/participants", ctrls.GroupController.Members)

			// Any authenticated user can register a team and join one
			groups.POST("/:id/participants", ctrls.ParticipantController.AddToGroup)

			groupsManaged := groups.Group("")
			groupsManaged.Use(authMiddleware.RoleRequired(models.RoleCoordinator, models.RoleAdmin))
			{
				groupsManaged.PUT("/:id", ctrls.GroupController.Update)
				groupsManaged.DELETE("/:id", ctrls.GroupController.Delete)
			}
		}

		authenticated.POST("/events/:id/groups", ctrls.GroupController.CreateForEvent)

		participants := authenticated.Group("/participants")
		{
			participantsManaged := participants.Group("")
			participantsManaged.Use(authMiddleware.RoleRequired(models.RoleCoordinator, models.RoleAdmin))
			{
				participantsManaged.GET("", ctrls.ParticipantController.GetAll)
				participantsManaged.GET("/:id", ctrls.ParticipantController.GetByID)
				participantsManaged.PUT("/:id", ctrls.ParticipantController.Update)
				participantsManaged.DELETE("/:id", ctrls.ParticipantController.Delete)
			}
		}

		dashboard := authenticated.Group("/dashboard")
		dashboard.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			dashboard.GET("/stats", ctrls.DashboardController.Stats)
			dashboard.GET("/recent", ctrls.DashboardController.Recent)
		}
	}
}
