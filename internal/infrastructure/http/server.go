package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"
	"stocksinfo/internal/present"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Server exposes a SelectionFlow over HTTP. Flow actions are serialised.
type Server struct {
	mu   sync.Mutex
	flow *application.SelectionFlow
	ping func(ctx context.Context) error
	log  *zap.Logger
}

func NewServer(flow *application.SelectionFlow, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{flow: flow, log: log}
}

// SetReadyCheck installs the /readyz probe.
func (s *Server) SetReadyCheck(ping func(ctx context.Context) error) { s.ping = ping }

type companiesResponse struct {
	State     string           `json:"state"`
	Companies []domain.Company `json:"companies"`
}

type quoteResponse struct {
	Quote     domain.Quote      `json:"quote"`
	Display   present.QuoteView `json:"display"`
	Direction string            `json:"direction"`
}

type stateResponse struct {
	State     string           `json:"state"`
	TokenSet  bool             `json:"tokenSet"`
	Companies []domain.Company `json:"companies"`
	Current   *quoteResponse   `json:"current,omitempty"`
}

type tokenRequest struct {
	Token *string `json:"token"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (s *Server) GetState(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := stateResponse{
		State:     s.flow.State().String(),
		TokenSet:  s.flow.Token() != "",
		Companies: s.flow.Companies(),
	}
	if q, ok := s.flow.Current(); ok {
		qr := newQuoteResponse(q)
		resp.Current = &qr
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) GetCompanies(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	companies, err := s.flow.Choose(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, companiesResponse{State: s.flow.State().String(), Companies: companies})
}

func (s *Server) GetQuote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.flow.Select(r.Context(), chi.URLParam(r, "symbol"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newQuoteResponse(q))
}

func (s *Server) ResetQuotes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.flow.Reset(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) PutToken(w http.ResponseWriter, r *http.Request) {
	var body tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == nil {
		writeEnvelope(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), `body must be {"token": "..."}`)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	companies, err := s.flow.SubmitToken(r.Context(), *body.Token)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, companiesResponse{State: s.flow.State().String(), Companies: companies})
}

func newQuoteResponse(q domain.Quote) quoteResponse {
	v := present.Quote(q)
	return quoteResponse{Quote: q, Display: v, Direction: v.Direction.String()}
}

func statusFor(err error) int {
	var httpErr *domain.HTTPError
	switch {
	case errors.Is(err, domain.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNothingListed):
		return http.StatusConflict
	case errors.Is(err, application.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidResponse), errors.Is(err, domain.ErrEmptyList), errors.As(err, &httpErr):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	alert := s.flow.Alert(err)
	s.log.Warn("http.request_failed",
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.Int("status", code),
		zap.Error(err),
	)
	writeEnvelope(w, code, alert.Title, alert.Message)
}

func writeEnvelope(w http.ResponseWriter, code int, title, message string) {
	writeJSON(w, code, errorResponse{Code: code, Title: title, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
