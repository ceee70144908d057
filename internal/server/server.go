package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gradius/bitplanner/internal/database"
	"github.com/gradius/bitplanner/internal/handler"
	"github.com/gradius/bitplanner/internal/logger"
	"github.com/gradius/bitplanner/internal/metrics"
	"github.com/gradius/bitplanner/internal/planner"
	"github.com/gradius/bitplanner/internal/project"
	"github.com/gradius/bitplanner/internal/search"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	plannerService planner.Service
	searchService  search.Service
	projectService project.Service
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, dbPool database.Pool, itemCatalog planner.ItemCatalog, recipeCatalog planner.RecipeCatalog, cache handler.CachePurger, plannerService planner.Service, searchService search.Service, projectService project.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewRequestRateMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(64 << 10)) // 64KB limit, bodies here are small
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/search", handler.HandleSearchItems(searchService))
			r.Get("/{itemID}", handler.HandleGetItem(itemCatalog))
			r.Get("/{itemID}/recipes", handler.HandleItemRecipes(itemCatalog, recipeCatalog))
			r.Get("/{itemID}/tree", handler.HandleItemTree(plannerService))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/{recipeID}", handler.HandleGetRecipe(recipeCatalog))
			r.Get("/{recipeID}/tree", handler.HandleRecipeTree(plannerService))
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", handler.HandleCreateProject(projectService))
			r.Route("/{projectUUID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetProject(projectService))
				r.Get("/items", handler.HandleGetProjectItems(projectService))
				r.Post("/items", handler.HandleAddProjectItem(projectService))
				r.Put("/items/{itemID}", handler.HandleUpdateProjectItem(projectService))
				r.Delete("/items/{itemID}", handler.HandleRemoveProjectItem(projectService))
			})
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Route("/cache", func(r chi.Router) {
				r.Post("/refresh", handler.HandleCacheRefresh(cache))
			})
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		plannerService: plannerService,
		searchService:  searchService,
		projectService: projectService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
