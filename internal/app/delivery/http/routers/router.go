package routers

import (
	"fmt"
	"time"
	"trekora-service/internal/app/config"
	"trekora-service/internal/app/delivery/http/middlewares"
	"trekora-service/internal/app/services/core/auth"
	"trekora-service/internal/app/services/core/availability"
	"trekora-service/internal/app/services/core/guides"
	"trekora-service/internal/app/services/core/trails"
	"trekora-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	guideController *guides.GuideController,
	trailController *trails.TrailController,
	availabilityController *availability.AvailabilityController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestBodyLimit)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				r.Use(middlewares.AuthRateLimit())
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/guides", func(r chi.Router) {
				attachGuideRoutes(r, middlewares, guideController)
				attachAvailabilityRoutes(r, middlewares, availabilityController)
			})

			r.Route("/trails", func(r chi.Router) {
				attachTrailRoutes(r, middlewares, trailController)
			})
		})
	})
}
