package routers

import (
	"trekora-service/internal/app/delivery/http/middlewares"
	"trekora-service/internal/app/services/core/availability"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *availability.AvailabilityController) {
	router.Get("/{guideID}/availability", availabilityController.GetCalendar)
	router.With(middlewares.SessionRequired).Put("/{guideID}/availability", availabilityController.SetAvailability)
}
