package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	logpkg "github.com/helix-bio/graphdex/internal/logger"
	associationuc "github.com/helix-bio/graphdex/internal/usecase/association"
	entityuc "github.com/helix-bio/graphdex/internal/usecase/entity"
	searchuc "github.com/helix-bio/graphdex/internal/usecase/search"
	"github.com/helix-bio/graphdex/pkg/model"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// healthChecker reports whether the backend index is reachable.
type healthChecker interface {
	Ping(ctx context.Context) error
}

// responseCache stores rendered GET responses. Both methods are best
// effort; a miss or a failed store never fails the request.
type responseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// ErrorResponse is the JSON envelope for every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeBadRequest         = "bad_request"
	codeNotFound           = "not_found"
	codeBackendUnavailable = "backend_unavailable"
	codeInternal           = "internal_error"
)

// Server exposes the knowledge-graph read API over chi.
type Server struct {
	entities      *entityuc.Service
	associations  *associationuc.Service
	search        *searchuc.Service
	health        healthChecker
	cache         responseCache
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server over the capability services.
func NewServer(
	entities *entityuc.Service,
	associations *associationuc.Service,
	search *searchuc.Service,
	health healthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		entities:     entities,
		associations: associations,
		search:       search,
		health:       health,
		logger:       logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(model.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(model.ErrInvalidParam, http.StatusBadRequest, codeBadRequest),
		sentinelHandler(model.ErrBackendUnavailable, http.StatusBadGateway, codeBackendUnavailable),
	}
	return s
}

// WithCache serves repeat GET requests from c. Nil leaves caching off.
func (s *Server) WithCache(c responseCache) *Server {
	s.cache = c
	return s
}

// Register mounts every API route on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/v1/entity/{id}", s.cached(s.handleEntity))
	r.Get("/v1/association", s.cached(s.handleAssociations))
	r.Get("/v1/association/counts/{id}", s.cached(s.handleAssociationCounts))
	r.Get("/v1/association/facets", s.cached(s.handleAssociationFacets))
	r.Get("/v1/association/table/{id}/{category}", s.cached(s.handleAssociationTable))
	r.Get("/v1/histopheno/{id}", s.cached(s.handleHistoPheno))
	r.Get("/v1/search", s.cached(s.handleSearch))
	r.Get("/v1/autocomplete", s.cached(s.handleAutocomplete))
	r.Get("/v1/mappings", s.cached(s.handleMappings))
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleEntity handles GET /v1/entity/{id}.
func (s *Server) handleEntity(w http.ResponseWriter, r *http.Request) {
	b := newBinder(r)
	var extra bool
	b.scalar("extra", &extra)
	if b.err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, b.err.Error())
		return
	}

	node, err := s.entities.Get(r.Context(), chi.URLParam(r, "id"), extra)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, node)
}

// handleAssociations handles GET /v1/association.
func (s *Server) handleAssociations(w http.ResponseWriter, r *http.Request) {
	b := newBinder(r)
	p := bindAssociationQuery(b)
	if b.err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, b.err.Error())
		return
	}

	res, err := s.associations.List(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleAssociationCounts handles GET /v1/association/counts/{id}.
func (s *Server) handleAssociationCounts(w http.ResponseWriter, r *http.Request) {
	res, err := s.associations.Counts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleAssociationFacets handles GET /v1/association/facets. It takes the
// same filter set as the association list plus the facet selectors.
func (s *Server) handleAssociationFacets(w http.ResponseWriter, r *http.Request) {
	b := newBinder(r)
	p := bindAssociationQuery(b)
	var facetFields, facetQueries []string
	b.list("facet_fields", &facetFields)
	b.list("facet_queries", &facetQueries)
	if b.err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, b.err.Error())
		return
	}

	res, err := s.associations.Facets(r.Context(), p, facetFields, facetQueries)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleAssociationTable handles GET /v1/association/table/{id}/{category}.
func (s *Server) handleAssociationTable(w http.ResponseWriter, r *http.Request) {
	b := newBinder(r)
	p := model.AssociationTableQuery{
		Entity:   chi.URLParam(r, "id"),
		Category: model.AssociationCategory(chi.URLParam(r, "category")),
	}
	b.scalar("q", &p.Q)
	b.scalar("sort", &p.Sort)
	b.scalar("offset", &p.Offset)
	b.scalar("limit", &p.Limit)
	if b.err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, b.err.Error())
		return
	}

	res, err := s.associations.Table(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleHistoPheno handles GET /v1/histopheno/{id}.
func (s *Server) handleHistoPheno(w http.ResponseWriter, r *http.Request) {
	res, err := s.associations.HistoPheno(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleSearch handles GET /v1/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	b := newBinder(r)
	var p model.SearchParams
	b.scalar("q", &p.Q)
	b.list("category", &p.Category)
	b.list("in_taxon", &p.InTaxon)
	b.list("facet_fields", &p.FacetFields)
	b.list("facet_queries", &p.FacetQueries)
	b.list("filter_queries", &p.FilterQueries)
	b.scalar("sort", &p.Sort)
	b.scalar("offset", &p.Offset)
	b.scalar("limit", &p.Limit)
	if b.err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, b.err.Error())
		return
	}

	res, err := s.search.Search(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleAutocomplete handles GET /v1/autocomplete.
func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	b := newBinder(r)
	var text string
	b.scalar("q", &text)
	if b.err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, b.err.Error())
		return
	}

	res, err := s.search.Autocomplete(r.Context(), text)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleMappings handles GET /v1/mappings.
func (s *Server) handleMappings(w http.ResponseWriter, r *http.Request) {
	b := newBinder(r)
	var entityIDs []string
	var offset, limit int
	b.list("entity_id", &entityIDs)
	b.scalar("offset", &offset)
	b.scalar("limit", &limit)
	if b.err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, b.err.Error())
		return
	}

	res, err := s.search.Mappings(r.Context(), entityIDs, offset, limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleHealthz handles GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	httpStatus := http.StatusOK
	if err := s.health.Ping(r.Context()); err != nil {
		logpkg.FromContext(r.Context(), s.logger).Warn("health check failed", zap.Error(err))
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": status,
		"checks": map[string]string{"solr": status},
	})
}

// handleDomainError maps a service error onto the HTTP error envelope.
// Logs go through the request-scoped logger so they carry the request id.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	if errors.Is(err, model.ErrInvalidParam) {
		// Validation messages come from our own services and name the
		// offending parameter.
		return err.Error()
	}
	sentinels := []error{
		model.ErrNotFound,
		model.ErrBackendUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
