package routers

import (
	"medrecord-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHealthRoutes(router chi.Router, controller *controllers.HealthController) {
	router.Get("/api/health", controller.Check)
}
