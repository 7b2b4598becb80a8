package routers

import (
	"medrecord-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachExtractionRoutes(router chi.Router, controller *controllers.ExtractionController) {
	router.Post("/api/extract-aadhaar", controller.ExtractAadhaar)
	router.Post("/api/extract-prescription", controller.ExtractPrescription)
}
