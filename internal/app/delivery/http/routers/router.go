package routers

import (
	"fmt"
	"necessitous-service/internal/app/config"
	"necessitous-service/internal/app/delivery/http/controllers"
	"necessitous-service/internal/app/delivery/http/middlewares"
	"necessitous-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	supplyRequestController *controllers.SupplyRequestController,
	draftController *controllers.DraftController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOption},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	globalLimiter, submitLimiter := middlewares.CreateRateLimiters()
	router.Use(globalLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(accessLogger))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceSupplyRequests, func(r chi.Router) {
				attachSupplyRequestRoutes(r, submitLimiter, supplyRequestController)
			})

			r.Route("/"+constvars.ResourceSteps, func(r chi.Router) {
				attachStepRoutes(r, supplyRequestController)
			})

			r.Route("/"+constvars.ResourceDrafts, func(r chi.Router) {
				attachDraftRoutes(r, submitLimiter, draftController)
			})
		})
	})
}
