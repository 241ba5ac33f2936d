package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	"github.com/nowshad-islam-dev/skipq-api/internal/auth"
	"github.com/nowshad-islam-dev/skipq-api/internal/config"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
	domainService "github.com/nowshad-islam-dev/skipq-api/internal/domain/service"
	domainUser "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/handlers"
	"github.com/nowshad-islam-dev/skipq-api/internal/middleware"
	ucService "github.com/nowshad-islam-dev/skipq-api/internal/usecase/service"
	ucUser "github.com/nowshad-islam-dev/skipq-api/internal/usecase/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

// Dependencies are the long-lived handles built once in main.
type Dependencies struct {
	Users    domainUser.Repository
	Services domainService.Repository
	Uploader media.Uploader
	Limiter  domainUser.LoginLimiter
	Audit    audit.Sink
	Hasher   auth.PasswordHasher
	Tokens   auth.TokenService
	Logger   *slog.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Dependencies) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.AccessLog(cfg))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.BodyLimit(cfg.Media.MaxUploadBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES
	// ======================================================
	var opts []validators.Option
	if cfg.CheckEmailDomain {
		opts = append(opts, validators.WithEmailDomainCheck(validators.IsEmailDomainValid))
	}
	v := validators.New(opts...)

	registerUC := ucUser.NewRegisterUser(deps.Users, deps.Hasher, v, deps.Audit, deps.Logger)
	loginUC := ucUser.NewLogin(deps.Users, deps.Hasher, deps.Tokens, deps.Limiter, v, deps.Audit, deps.Logger)
	updateUC := ucUser.NewUpdateUser(deps.Users, deps.Hasher, deps.Tokens, deps.Uploader, v, deps.Audit, deps.Logger)
	deleteUC := ucUser.NewDeleteUser(deps.Users, deps.Audit, deps.Logger)

	createServiceUC := ucService.NewCreateService(
		deps.Services,
		deps.Uploader,
		v,
		deps.Audit,
		deps.Logger,
		cfg.Media.MaxServicePhotos,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(
		registerUC,
		loginUC,
		updateUC,
		deleteUC,
		ucUser.NewListUsers(deps.Users),
		ucUser.NewGetUser(deps.Users),
		deps.Logger,
	)

	serviceHandler := handlers.NewServiceHandler(
		createServiceUC,
		ucService.NewListServices(deps.Services),
		ucService.NewGetService(deps.Services),
		deps.Logger,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("/all", userHandler.List)
			users.POST("/login", userHandler.Login)
			users.GET("/:id", userHandler.Get)
			users.POST("", userHandler.Register)
			users.POST("/:id", userHandler.Update)
			users.DELETE("/:id", middleware.AuthMiddleware(deps.Tokens), userHandler.Delete)
		}

		services := api.Group("/services")
		{
			services.GET("/all", serviceHandler.List)
			services.GET("/:id", serviceHandler.Get)
			services.POST("", serviceHandler.Create)
		}
	}
}
