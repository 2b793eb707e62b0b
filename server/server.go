package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"tubewatch/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/stats.go -pkg mocks -skip-ensure -fmt goimports . StatsProvider
//go:generate moq -out mocks/quota.go -pkg mocks -skip-ensure -fmt goimports . QuotaProvider
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . SchedulerInfo

// Server exposes the operational status endpoint
type Server struct {
	config    ConfigProvider
	stats     StatsProvider
	quota     QuotaProvider
	scheduler SchedulerInfo
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// StatsProvider reports tracking counts
type StatsProvider interface {
	Stats(ctx context.Context) (sources, subscriptions int64, err error)
}

// QuotaProvider reports the current quota window
type QuotaProvider interface {
	State() domain.QuotaState
	Budget() int64
	NextReset() time.Time
}

// SchedulerInfo reports poll loop progress
type SchedulerInfo interface {
	LastCycle() time.Time
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, stats StatsProvider, quota QuotaProvider, scheduler SchedulerInfo, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		stats:     stats,
		quota:     quota,
		scheduler: scheduler,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("tubewatch", "tubewatch", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})
}

// statusResponse is the status endpoint payload
type statusResponse struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	Time          time.Time `json:"time"`
	Sources       int64     `json:"sources"`
	Subscriptions int64     `json:"subscriptions"`
	QuotaUsed     int64     `json:"quota_used"`
	QuotaBudget   int64     `json:"quota_budget"`
	QuotaReset    time.Time `json:"quota_reset"`
	LastCycle     time.Time `json:"last_cycle,omitempty"`
}

// statusHandler returns tracking counts and the quota window
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	sources, subscriptions, err := s.stats.Stats(r.Context())
	if err != nil {
		RenderError(w, r, fmt.Errorf("get stats: %w", err), http.StatusInternalServerError)
		return
	}

	state := s.quota.State()
	resp := statusResponse{
		Status:        "ok",
		Version:       s.version,
		Time:          time.Now().UTC(),
		Sources:       sources,
		Subscriptions: subscriptions,
		QuotaUsed:     state.Used,
		QuotaBudget:   s.quota.Budget(),
		QuotaReset:    s.quota.NextReset(),
		LastCycle:     s.scheduler.LastCycle(),
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
