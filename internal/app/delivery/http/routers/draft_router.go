package routers

import (
	"necessitous-service/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachDraftRoutes(router chi.Router, submitLimiter func(http.Handler) http.Handler, draftController *controllers.DraftController) {
	router.Post("/", draftController.Create)
	router.Get("/{draftID}", draftController.FindByID)
	router.Put("/{draftID}/steps", draftController.SaveStep)
	router.With(submitLimiter).Post("/{draftID}/submit", draftController.Submit)
}
