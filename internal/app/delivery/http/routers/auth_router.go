package routers

import (
	"trekora-service/internal/app/delivery/http/middlewares"
	"trekora-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.With(middlewares.SessionRequired).Post("/logout", authController.Logout)
}
