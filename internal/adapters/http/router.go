// Package http is the fake Lister REST server: a chi router over a
// ports.ListerAPI, the middleware stack and a server with graceful
// shutdown. It is used for local development and end-to-end tests of the
// client.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/lister-client/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/lister-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

const requestTimeout = 30 * time.Second

// NewRouter creates an HTTP handler with all Lister routes registered.
// Paths sit at the root so a client base URL of "http://host:port/" works
// unchanged. Middleware is applied globally in the order given.
func NewRouter(
	listHandler *handlers.ListHandler,
	itemHandler *handlers.ItemHandler,
	categoryHandler *handlers.CategoryHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Get("/lists", listHandler.GetLists)
	r.Post("/lists", listHandler.CreateList)
	r.Get("/lists/{id}", listHandler.GetList)
	r.Put("/lists/{id}", listHandler.UpdateList)
	r.Delete("/lists/{id}", listHandler.DeleteList)

	r.Get("/lists/{id}/items", itemHandler.GetItems)
	r.Post("/lists/{id}/items", itemHandler.CreateItem)
	r.Get("/items/{id}", itemHandler.GetItem)
	r.Put("/items/{id}", itemHandler.UpdateItem)
	r.Delete("/items/{id}", itemHandler.DeleteItem)
	r.Patch("/items/{id}/toggle", itemHandler.ToggleItemCart)

	r.Get("/categories", categoryHandler.GetCategories)
	r.Post("/categories", categoryHandler.CreateCategory)
	r.Get("/categories/{id}", categoryHandler.GetCategory)
	r.Put("/categories/{id}", categoryHandler.UpdateCategory)
	r.Delete("/categories/{id}", categoryHandler.DeleteCategory)

	r.Get("/search", categoryHandler.SearchItems)
	r.Get("/search/category-mappings", categoryHandler.GetCategoryMappings)

	return r
}

// NewHandler wires the handlers for api and wraps the router in the full
// middleware stack. An empty bearerToken leaves the API open. metrics may
// be nil.
func NewHandler(
	api ports.ListerAPI,
	registry ports.HealthRegistry,
	bearerToken string,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) http.Handler {
	return NewRouter(
		handlers.NewListHandler(api),
		handlers.NewItemHandler(api),
		handlers.NewCategoryHandler(api),
		handlers.NewHealthHandler(registry),
		middleware.Stack(middleware.StackConfig{
			Logger:      logger,
			Metrics:     metrics,
			BearerToken: bearerToken,
			Timeout:     requestTimeout,
		}),
	)
}
