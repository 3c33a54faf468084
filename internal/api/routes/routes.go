package routes

import (
	"shadowbrook-backend/internal/api/handlers"
	"shadowbrook-backend/internal/api/middleware"
	"shadowbrook-backend/internal/config"
	"shadowbrook-backend/internal/repository"
	"shadowbrook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.TenantScope())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Initialize services
	tenantService := service.NewTenantService(tenantRepo, validator)
	courseService := service.NewCourseService(courseRepo, tenantRepo, validator)
	teeSheetService := service.NewTeeSheetService(courseRepo, bookingRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	courseHandler := handlers.NewCourseHandler(courseService)
	teeSheetHandler := handlers.NewTeeSheetHandler(teeSheetService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		tenants := v1.Group("/tenants")
		{
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("", tenantHandler.ListTenants)
			tenants.GET("/:id", tenantHandler.GetTenant)
		}

		courses := v1.Group("/courses")
		{
			courses.POST("", courseHandler.CreateCourse)
			courses.GET("", courseHandler.ListCourses)
			courses.GET("/:id", courseHandler.GetCourse)
			courses.PUT("/:id/tee-time-settings", courseHandler.UpdateTeeTimeSettings)
			courses.GET("/:id/tee-time-settings", courseHandler.GetTeeTimeSettings)
			courses.PUT("/:id/pricing", courseHandler.UpdatePricing)
			courses.GET("/:id/pricing", courseHandler.GetPricing)
		}

		v1.GET("/tee-sheets", teeSheetHandler.GetTeeSheet)
	}

	return router
}
