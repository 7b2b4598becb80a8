package routers

import (
	"medrecord-service/internal/app/delivery/http/controllers"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type RouterDependencies struct {
	HealthController        *controllers.HealthController
	ExtractionController    *controllers.ExtractionController
	QuestionnaireController *controllers.QuestionnaireController
	PatientController       *controllers.PatientController
	ReportController        *controllers.ReportController
	AppointmentController   *controllers.AppointmentController
	ChatController          *controllers.ChatController
}

func SetupRouter(m *middlewares.Middlewares, deps *RouterDependencies) *chi.Mux {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderContentType, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(m.RequestID)
	router.Use(m.Logging)
	router.Use(m.RequestBodyLimit)

	attachHealthRoutes(router, deps.HealthController)
	attachExtractionRoutes(router, deps.ExtractionController)
	attachQuestionnaireRoutes(router, deps.QuestionnaireController)
	attachRecordRoutes(router, deps.PatientController, deps.ReportController, deps.AppointmentController)
	attachChatRoutes(router, deps.ChatController)

	return router
}
