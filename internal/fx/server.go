package fx

import (
	"context"
	"net/http"

	"github.com/yuvarajsadam/ExpenseTracker/config"
	"github.com/yuvarajsadam/ExpenseTracker/internal/logger"
	"github.com/yuvarajsadam/ExpenseTracker/internal/middleware"
	"github.com/yuvarajsadam/ExpenseTracker/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtService *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	public := router.Group("/api/v1")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/login", handler.Authenticate)
	}

	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(jwtService))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/auth/me", handler.Me)

		transactions := private.Group("/transactions")
		{
			// /summary is registered before /:id so it is never read as an id
			transactions.GET("/summary", handler.GetSummary)
			transactions.GET("", handler.GetTransactions)
			transactions.POST("", handler.CreateTransaction)
			transactions.PUT("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping")
			return nil
		},
	})
}
