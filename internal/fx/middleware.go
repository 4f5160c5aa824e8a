package fx

import (
	"time"

	"github.com/yuvarajsadam/ExpenseTracker/config"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/user"
	"github.com/yuvarajsadam/ExpenseTracker/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		func(cfg *config.Config, userService *user.Service) (*middleware.JwtService, error) {
			return middleware.NewJwtService(cfg.JWT, userService)
		},
		func() *middleware.RateLimiter {
			return middleware.NewRateLimiter(100, time.Minute)
		},
	),
)
