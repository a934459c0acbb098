// Package api is the HTTP surface: route registration, identity middleware,
// and the handlers that translate requests into service calls.
package api

import (
	"net/http"

	"cinelog/internal/catalog"
	"cinelog/internal/config"
	"cinelog/internal/db"
	"cinelog/internal/engagement"
	"cinelog/internal/httputil"
	"cinelog/internal/jobs"
	"cinelog/internal/metadata"
	"cinelog/internal/movies"
	"cinelog/internal/ratings"
	"cinelog/internal/users"
	"cinelog/internal/version"
	"cinelog/internal/watchlist"
)

type Server struct {
	config      *config.Config
	db          *db.DB
	userRepo    *users.Repository
	userSvc     *users.Service
	catalogRepo *catalog.Repository
	movieSvc    *movies.Service
	engagement  *engagement.Service
	jobQueue    *jobs.Queue
	router      *http.ServeMux
	version     string
}

func NewServer(cfg *config.Config, database *db.DB, jobQueue *jobs.Queue) *Server {
	userRepo := users.NewRepository(database.DB)
	catalogRepo := catalog.NewRepository(database.DB)
	watchlistRepo := watchlist.NewRepository(database.DB)
	ratingsRepo := ratings.NewRepository(database.DB)

	var source movies.MetadataSource = metadata.NewOMDbClient(cfg.OMDbAPIKey)
	if cfg.JobsEnabled() {
		source = metadata.NewLookupCache(source, cfg.RedisAddr)
	}
	var trailer movies.TrailerSource
	if cfg.YouTubeAPIKey != "" {
		trailer = metadata.NewYouTubeClient(cfg.YouTubeAPIKey)
	}

	s := &Server{
		config:      cfg,
		db:          database,
		userRepo:    userRepo,
		userSvc:     users.NewService(userRepo),
		catalogRepo: catalogRepo,
		movieSvc:    movies.NewService(source, trailer, catalogRepo),
		engagement:  engagement.NewService(watchlistRepo, ratingsRepo),
		jobQueue:    jobQueue,
		router:      http.NewServeMux(),
		version:     version.Load().Version,
	}
	s.setupRoutes()
	return s
}

// Movies exposes the resolver for the ingest worker registration.
func (s *Server) Movies() *movies.Service {
	return s.movieSvc
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /api/v1/status", s.handleStatus)

	s.router.HandleFunc("POST /api/v1/users/register", s.handleRegister)

	s.router.HandleFunc("GET /api/v1/movies/resolve", s.requireUser(s.handleResolve))
	s.router.HandleFunc("GET /api/v1/movies/{id}", s.requireUser(s.handleGetMovie))

	s.router.HandleFunc("GET /api/v1/watchlist", s.requireUser(s.handleGetWatchlist))
	s.router.HandleFunc("POST /api/v1/movies/{id}/watchlist/toggle", s.requireUser(s.handleToggleWatchlist))

	s.router.HandleFunc("PUT /api/v1/movies/{id}/rating", s.requireUser(s.handlePutRating))
	s.router.HandleFunc("GET /api/v1/movies/{id}/rating", s.requireUser(s.handleGetOwnRating))
	s.router.HandleFunc("DELETE /api/v1/movies/{id}/rating", s.requireUser(s.handleDeleteOwnRating))
	s.router.HandleFunc("GET /api/v1/movies/{id}/score", s.requireUser(s.handleGetScore))
	s.router.HandleFunc("GET /api/v1/movies/{id}/comments", s.requireUser(s.handleGetComments))

	s.router.HandleFunc("DELETE /api/v1/movies/{id}/ratings/{username}", s.requireAdmin(s.handleModerateRating))
	s.router.HandleFunc("POST /api/v1/admin/ingest", s.requireAdmin(s.handleIngest))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"version":      s.version,
		"jobs_enabled": s.config.JobsEnabled(),
	})
}
