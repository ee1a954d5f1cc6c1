package controllers_fx

import (
	"go.uber.org/fx"

	"pawtrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPetController),
	fx.Provide(controllers.NewTripContentController))
