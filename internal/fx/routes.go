package fx

import (
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/summary"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/user"
	"github.com/yuvarajsadam/ExpenseTracker/internal/middleware"
	"github.com/yuvarajsadam/ExpenseTracker/internal/routes"

	"go.uber.org/fx"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		func(
			userService *user.Service,
			jwtService *middleware.JwtService,
			transactionService *transaction.Service,
			summaryService *summary.Service,
		) *routes.Handler {
			return &routes.Handler{
				UserService:        userService,
				JwtService:         jwtService,
				TransactionService: transactionService,
				SummaryService:     summaryService,
			}
		},
	),
)
