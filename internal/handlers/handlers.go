package handlers

import (
	"Catalog/internal/config"
	"Catalog/internal/middleware"
	"Catalog/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
	registry *prometheus.Registry,
) *Handler {
	r := chi.NewRouter()
	metrics := middleware.NewMetrics(registry)

	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)
	r.Use(metrics.Handler)
	r.Use(middleware.WithLogging)
	r.Use(chimw.Compress(5))

	itemHandler := NewItemHandler(itemService, logger, config)

	// Liveness и метрики — без ключа
	r.Get("/", Health)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Item routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.WithAPIKey(config.APIKey))

		// статический /items/filter chi сопоставляет раньше, чем /items/{id}
		r.Get("/items/filter", itemHandler.Filter)
		r.Get("/items", itemHandler.List)
		r.Get("/items/{id}", itemHandler.Get)
		r.Post("/items", itemHandler.Create)
		r.Post("/items/create_v2", itemHandler.CreateV2)
		r.Put("/items/{id}", itemHandler.Update)
		r.Patch("/items/{id}", itemHandler.Update)
		r.Delete("/items/{id}", itemHandler.Delete)
	})

	return &Handler{Router: r}
}

// Health GET / — проверка живости процесса.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"ok": "200"})
}
