package routers

import (
	"trekora-service/internal/app/delivery/http/middlewares"
	"trekora-service/internal/app/services/core/trails"

	"github.com/go-chi/chi/v5"
)

func attachTrailRoutes(router chi.Router, middlewares *middlewares.Middlewares, trailController *trails.TrailController) {
	router.Get("/", trailController.GetTrails)
	router.Get("/{trailID}", trailController.GetTrailByID)
	router.With(middlewares.SessionRequired).Post("/", trailController.CreateTrail)
	router.With(middlewares.SessionRequired).Put("/{trailID}", trailController.UpdateTrail)
	router.With(middlewares.SessionRequired).Delete("/{trailID}", trailController.DeleteTrail)
}
