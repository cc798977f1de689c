// Package server provides the HTTP extraction API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cognicore/rake/pkg/rake"
	"github.com/cognicore/rake/pkg/rake/config"
	"github.com/cognicore/rake/pkg/rake/stoplist"
	"github.com/cognicore/rake/pkg/rake/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 8 << 20

// Server is the HTTP server for the extraction API.
type Server struct {
	cfg    *config.Config
	store  store.Store // optional
	logger *zap.Logger
	server *http.Server

	mu sync.Mutex
	// extractors is keyed by request language, but only for the default ("")
	// and built-in language codes; resolved is keyed by where the stopword
	// list came from. Both stay bounded whatever codes clients send.
	extractors map[string]*rake.Rake
	resolved   map[string]*rake.Rake
}

// New creates a server. cfg supplies the default language, stopword file,
// ranking order and listen address; st may be nil.
func New(cfg *config.Config, st store.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:        cfg,
		store:      st,
		logger:     logger,
		extractors: make(map[string]*rake.Rake),
		resolved:   make(map[string]*rake.Rake),
	}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/api/v1/extract", s.handleExtract)
	r.Get("/api/v1/stopwords/{lang}", s.handleStopwords)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// extractor returns a cached extractor for a language code. An empty code
// means the configured default, including its stopword file. Unknown codes
// share the extractor of the list they resolve to.
func (s *Server) extractor(ctx context.Context, lang string) (*rake.Rake, error) {
	key := store.LanguageKey(lang)

	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.extractors[key]; ok {
		return r, nil
	}

	loader := config.Loader{Language: lang, Store: s.store}
	if key == "" {
		loader.Language = s.cfg.Language
		loader.StopwordsPath = s.cfg.StopwordsFile
	}
	comp, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	if key == "" {
		r := s.newExtractor(comp)
		s.extractors[key] = r
		return r, nil
	}

	source := comp.Source + ":" + comp.Key
	r, ok := s.resolved[source]
	if !ok {
		r = s.newExtractor(comp)
		s.resolved[source] = r
	}
	if stoplist.Known(key) {
		s.extractors[key] = r
	}
	return r, nil
}

func (s *Server) newExtractor(comp *config.Components) *rake.Rake {
	s.logger.Debug("extractor ready",
		zap.String("language", string(comp.Language)),
		zap.String("source", comp.Source),
		zap.String("key", comp.Key),
		zap.Int("stopwords", len(comp.Stopwords)),
	)
	return rake.New(rake.Options{
		Stopwords: comp.Stopwords,
		Workers:   s.cfg.Workers,
		Logger:    s.logger,
	})
}
