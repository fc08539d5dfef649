package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"campushelp/internal/store"
	"campushelp/internal/upload"
	"campushelp/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// HealthChecker reports whether the document store is reachable.
type HealthChecker func(ctx context.Context) error

type Service struct {
	logger *logrus.Logger
	config *types.Config

	helpRepo      store.HelpRequestRepository
	lostFoundRepo store.LostFoundRepository
	marketingRepo store.MarketingHelpRepository

	ingestor *upload.Ingestor
	health   HealthChecker

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	helpRepo store.HelpRequestRepository,
	lostFoundRepo store.LostFoundRepository,
	marketingRepo store.MarketingHelpRepository,
	ingestor *upload.Ingestor,
	health HealthChecker,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		helpRepo:      helpRepo,
		lostFoundRepo: lostFoundRepo,
		marketingRepo: marketingRepo,

		ingestor: ingestor,
		health:   health,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.RecoverMiddleware)
	r.Use(s.StripTrailingSlash)
	r.Use(s.CORSMiddleware)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/help", s.handleCreateHelpRequest, http.MethodPost)
	r.HandleFunc("/api/help", s.handleListHelpRequests, http.MethodGet)
	r.HandleFunc("/api/help/upvote/:requestId", s.handleUpvoteHelpRequest, http.MethodPost)
	r.HandleFunc("/api/help/reply/:id", s.handleAddHelpReply, http.MethodPost)
	r.HandleFunc("/api/help/:id", s.handleGetHelpRequest, http.MethodGet)

	r.HandleFunc("/api/lost-found", s.handleSubmitLostFound, http.MethodPost)
	r.HandleFunc("/api/lost-found", s.handleListLostFound, http.MethodGet)
	r.HandleFunc("/api/lost-found/reply", s.handleLostFoundReply, http.MethodPost)

	r.HandleFunc("/api/marketingHelp", s.handleSubmitMarketingHelp, http.MethodPost)
	r.HandleFunc("/api/marketingHelp", s.handleListMarketingHelp, http.MethodGet)
	r.HandleFunc("/api/marketingHelp/:id/payment", s.handleUpdatePaymentStatus, http.MethodPatch)

	if s.config.StorageBackend == "disk" {
		r.Handle("/uploads/...", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.config.UploadDir))), http.MethodGet)
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.health(ctx); err != nil {
		s.logger.WithError(err).Error("health check failed to reach store")
		s.respondError(w, http.StatusInternalServerError, "store unreachable", err)
		return
	}

	s.respond(w, http.StatusOK, "ok", nil)
}
