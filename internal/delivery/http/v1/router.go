package v1

import (
	"net/http"

	"hirehub-backend/config"
	"hirehub-backend/internal/delivery/http/middleware"
	"hirehub-backend/internal/delivery/http/response"
	"hirehub-backend/internal/domain"
	"hirehub-backend/pkg/auth"
	"hirehub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	ChatUC        domain.ChatUsecase
	JWKSProvider  *auth.Provider
	Config        *config.Config
	// HealthCheck reports dependency health; nil means always healthy
	HealthCheck func(*gin.Context) error
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(c); err != nil {
				response.Error(c, http.StatusServiceUnavailable, "Dependency unavailable", nil)
				return
			}
		}
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := v1.Group("")
	api.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	// Anonymous allowed, identity attached when a token is present
	public := api.Group("")
	public.Use(middleware.OptionalAuth(deps.JWKSProvider, deps.Config, deps.AuthUC))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	protected.Use(middleware.CSRFMiddleware())

	chatLimiter := middleware.RateLimitMiddleware(middleware.ChatRateLimitConfig(deps.Config))
	NewChatHandler(public, deps.ChatUC, deps.Config.ChatMaxMessageLength, chatLimiter)
	NewJobHandler(public, protected, deps.JobUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewUserHandler(protected, deps.AuthUC)

	return r
}
