package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cognicore/rake/internal/htmltext"
	"github.com/cognicore/rake/pkg/rake"
	"github.com/cognicore/rake/pkg/rake/config"
	"github.com/cognicore/rake/pkg/rake/internalerr"
	"github.com/cognicore/rake/pkg/rake/rank"
	"github.com/cognicore/rake/pkg/rake/stoplist"
)

// ExtractRequest is the body of POST /api/v1/extract.
type ExtractRequest struct {
	Text      string   `json:"text"`
	Language  string   `json:"language,omitempty"`
	Stopwords []string `json:"stopwords,omitempty"`
	Top       int      `json:"top,omitempty"`
	Order     string   `json:"order,omitempty"`
	HTML      bool     `json:"html,omitempty"`
}

// ExtractResponse lists ranked keyphrases.
type ExtractResponse struct {
	ID         string      `json:"id"`
	Keyphrases []rank.Pair `json:"keyphrases"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order := strings.ToLower(req.Order)
	if order == "" {
		order = s.cfg.Order
	}
	if order != config.OrderAsc && order != config.OrderDesc {
		s.respondError(w, http.StatusBadRequest, "order must be asc or desc")
		return
	}
	if req.Top < 0 {
		s.respondError(w, http.StatusBadRequest, "top must not be negative")
		return
	}
	top := req.Top
	if top == 0 {
		top = s.cfg.Top
	}

	var extractor *rake.Rake
	if req.Stopwords != nil {
		extractor = rake.New(rake.Options{Stopwords: req.Stopwords, Workers: s.cfg.Workers, Logger: s.logger})
	} else {
		var err error
		extractor, err = s.extractor(r.Context(), req.Language)
		if err != nil {
			s.logger.Error("load stopwords failed", zap.String("language", req.Language), zap.Error(err))
			s.respondLoadError(w, err)
			return
		}
	}

	text := req.Text
	if req.HTML || s.cfg.HTML {
		text = htmltext.Extract(text)
	}

	s.logger.Debug("extract request",
		zap.String("language", req.Language),
		zap.Int("bytes", len(text)),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
	res := extractor.Process(text)
	pairs := res.Ranked(order == config.OrderAsc, top)
	if pairs == nil {
		pairs = []rank.Pair{}
	}
	s.respondJSON(w, http.StatusOK, ExtractResponse{ID: res.ID, Keyphrases: pairs})
}

func (s *Server) handleStopwords(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	loader := config.Loader{Language: lang, Store: s.store}
	comp, err := loader.Load(r.Context())
	if err != nil {
		s.logger.Error("load stopwords failed", zap.String("language", lang), zap.Error(err))
		s.respondLoadError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"language":  comp.Language,
		"source":    comp.Source,
		"fallback":  comp.Source == config.SourceBuiltin && !stoplist.Known(lang),
		"stopwords": comp.Stopwords,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondLoadError reports a stopword loading failure without exposing its
// cause; the detail is logged by the caller.
func (s *Server) respondLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, internalerr.ErrStoreUnavailable) {
		s.respondError(w, http.StatusServiceUnavailable, "stopword store unavailable")
		return
	}
	s.respondError(w, http.StatusInternalServerError, "failed to load stopwords")
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
