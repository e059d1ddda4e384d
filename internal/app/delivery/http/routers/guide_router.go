package routers

import (
	"trekora-service/internal/app/delivery/http/middlewares"
	"trekora-service/internal/app/services/core/guides"

	"github.com/go-chi/chi/v5"
)

func attachGuideRoutes(router chi.Router, middlewares *middlewares.Middlewares, guideController *guides.GuideController) {
	router.Get("/", guideController.GetGuides)
	router.Get("/{guideID}", guideController.GetGuideByID)
	router.With(middlewares.SessionRequired).Post("/", guideController.CreateGuide)
	router.With(middlewares.SessionRequired).Put("/{guideID}", guideController.UpdateGuide)
	router.With(middlewares.SessionRequired).Delete("/{guideID}", guideController.DeleteGuide)
	router.With(middlewares.SessionRequired).Post("/{guideID}/photo", guideController.UploadGuidePhoto)
}
