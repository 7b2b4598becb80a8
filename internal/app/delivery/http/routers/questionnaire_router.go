package routers

import (
	"medrecord-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, controller *controllers.QuestionnaireController) {
	router.Get("/questionnaire", controller.GetQuestionnaire)
	router.Post("/submit_responses", controller.SubmitResponses)
	router.Post("/submit_second_responses", controller.SubmitSecondResponses)
}
