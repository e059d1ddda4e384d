package routers

import (
	"trekora-service/internal/app/delivery/http/middlewares"
	"trekora-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.SessionRequired).Get("/profile", userController.GetProfile)
}
