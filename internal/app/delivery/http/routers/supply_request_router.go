package routers

import (
	"necessitous-service/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachSupplyRequestRoutes(router chi.Router, submitLimiter func(http.Handler) http.Handler, supplyRequestController *controllers.SupplyRequestController) {
	router.Post("/preview", supplyRequestController.Preview)
	router.With(submitLimiter).Post("/", supplyRequestController.Send)
}

func attachStepRoutes(router chi.Router, supplyRequestController *controllers.SupplyRequestController) {
	router.Post("/navigation", supplyRequestController.Navigate)
}
