package fx

import (
	"github.com/yuvarajsadam/ExpenseTracker/config"
	"github.com/yuvarajsadam/ExpenseTracker/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		func(cfg *config.Config) (*gorm.DB, error) {
			return infrastructure.NewDb(cfg)
		},
		func(db *gorm.DB) *infrastructure.UserRepository {
			return &infrastructure.UserRepository{DB: db}
		},
		func(db *gorm.DB) *infrastructure.TransactionRepository {
			return &infrastructure.TransactionRepository{DB: db}
		},
		func(db *gorm.DB) *infrastructure.SummaryRepository {
			return &infrastructure.SummaryRepository{DB: db}
		},
	),
)
