package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gps23/ai-task-planner/internal/api"
	"github.com/gps23/ai-task-planner/internal/api/shared"
	apiMiddleware "github.com/gps23/ai-task-planner/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{shared.TraceIDHeader, api.PlanSourceHeader},
		AllowCredentials: app.config.CORS.AllowCredentials,
		MaxAge:           300,
	}))

	planHandler := api.NewPlanHandler(app.planService)

	r.Post("/plan", planHandler.CreatePlan)
	r.Get("/health", api.Health)

	return r
}
