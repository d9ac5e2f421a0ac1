package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/LeonSantana7/forms/gate"
	"github.com/LeonSantana7/forms/store"
)

var log = logrus.WithField("prefix", "api")

// DefaultStatsFetchLimit caps how many of the newest responses a stats
// request reads. The reported total is bounded by it.
const DefaultStatsFetchLimit = 2000

// Config carries the request-independent knobs of the HTTP layer.
type Config struct {
	// AdminToken is the shared secret compared against the X-Admin-Token
	// header of stats requests. An empty token locks the stats endpoint.
	AdminToken string

	// StatsFetchLimit overrides DefaultStatsFetchLimit when positive.
	StatsFetchLimit int64

	// TraceMode dumps incoming requests to the debug log.
	TraceMode bool
}

// Server is the HTTP API in front of the survey store.
type Server struct {
	router *gin.Engine
	server *http.Server

	surveyStore store.SurveyStore
	gate        *gate.Gate

	adminToken      string
	statsFetchLimit int64
	traceMode       bool
}

// NewServer wires the handlers onto a fresh engine. The store handle is
// injected here and is the only stateful collaborator.
func NewServer(surveyStore store.SurveyStore, cfg Config) *Server {
	limit := cfg.StatsFetchLimit
	if limit <= 0 {
		limit = DefaultStatsFetchLimit
	}

	s := &Server{
		router:          gin.New(),
		surveyStore:     surveyStore,
		gate:            gate.New(surveyStore),
		adminToken:      cfg.AdminToken,
		statsFetchLimit: limit,
		traceMode:       cfg.TraceMode,
	}
	s.setupRouter()

	return s
}

func (s *Server) setupRouter() {
	r := s.router
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)
	r.Use(requestMetrics())

	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiRoute := r.Group("/api")
	apiRoute.POST("/submit", s.submitResponse)

	admin := apiRoute.Group("/admin")
	admin.GET("/stats", s.surveyStats)
}

// Router exposes the configured engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until Shutdown or a listener error.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
