package main

import (
	appfx "github.com/yuvarajsadam/ExpenseTracker/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
