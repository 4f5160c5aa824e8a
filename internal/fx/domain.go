package fx

import (
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/summary"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/user"
	"github.com/yuvarajsadam/ExpenseTracker/internal/infrastructure"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		func(userRepo *infrastructure.UserRepository) *user.Service {
			return user.NewService(userRepo)
		},
		func(transactionRepo *infrastructure.TransactionRepository) *transaction.Service {
			return transaction.NewService(transactionRepo)
		},
		func(summaryRepo *infrastructure.SummaryRepository) *summary.Service {
			return summary.NewService(summaryRepo)
		},
	),
)
