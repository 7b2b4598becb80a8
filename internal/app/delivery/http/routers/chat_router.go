package routers

import (
	"medrecord-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, controller *controllers.ChatController) {
	router.Post("/chat", controller.Converse)
}
