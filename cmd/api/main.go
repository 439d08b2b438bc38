package main

import (
	appfx "github.com/vaishnaviugal12/Buisness-Management-System/internal/fx"

	"go.uber.org/fx"
)

// @title           Business Management System API
// @version         1.0
// @description     Bookkeeping API for small businesses.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
