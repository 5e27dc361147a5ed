// Package api provides the HTTP preview server consumed by the authoring UI.
// It wraps the pure estimation engine in a thin request envelope; the server
// itself stores nothing and holds no guide state.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"form-pricing/decision/estimation"
	"form-pricing/decision/validation"
	"form-pricing/pkg/confidence"
	"form-pricing/pkg/display"
	"form-pricing/pkg/guide"
	"form-pricing/pkg/platform"
)

// Server is the HTTP preview API server.
type Server struct {
	httpServer *http.Server
	engine     *estimation.Engine
	logger     *slog.Logger
	config     *Config
}

// NewServer creates a preview API server.
func NewServer(logger *slog.Logger, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		engine: estimation.NewEngine(logger),
		logger: logger,
		config: config,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Health stays open; the API routes honor the configured key.
	protected := func(h http.HandlerFunc) http.Handler {
		return platform.APIKeyMiddleware(s.config.APIKey, h)
	}

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/api/v1/estimate", protected(s.handleEstimate))
	mux.Handle("/api/v1/rules/validate", protected(s.handleValidate))
	mux.Handle("/api/v1/rules/test", protected(s.handleTest))

	handler := s.corsMiddleware(s.loggingMiddleware(mux))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("preview API server starting", "port", s.config.Port)
	return s.httpServer.ListenAndServe()
}

// StartWithGracefulShutdown starts the server and drains it on SIGINT/SIGTERM.
func (s *Server) StartWithGracefulShutdown() error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		s.logger.Info("shutting down preview API server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		allowed := false
		for _, o := range s.config.CORSOrigins {
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// HEALTH ENDPOINT
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// =============================================================================
// ESTIMATE ENDPOINTS
// =============================================================================

// EstimateRequest is the API request for estimating one submission.
type EstimateRequest struct {
	Answers        guide.AnswerSet  `json:"answers"`
	Guide          guide.PriceGuide `json:"guide"`
	TotalQuestions int              `json:"total_questions"`
}

// TestRequest is the API request for the authoring-time rule preview.
type TestRequest struct {
	Rules          []guide.Rule    `json:"rules"`
	Answers        guide.AnswerSet `json:"answers"`
	BasePrice      float64         `json:"base_price"`
	BaseCalloutFee float64         `json:"base_callout_fee"`
	Currency       string          `json:"currency"`
	TotalQuestions int             `json:"total_questions"`
}

// EstimateResponse wraps the pure estimate with request metadata and the
// rendered display strings.
type EstimateResponse struct {
	RequestID        string              `json:"request_id"`
	EvaluatedAt      string              `json:"evaluated_at"`
	Estimate         guide.PriceEstimate `json:"estimate"`
	AppliedRuleNames []string            `json:"applied_rule_names"`
	Confidence       confidence.Level    `json:"confidence"`
	CustomerText     string              `json:"customer_text"`
	InternalText     string              `json:"internal_text"`
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req EstimateRequest
	if !s.decode(w, r, &req) {
		return
	}

	est := s.engine.Estimate(req.Answers, req.Guide)
	s.jsonResponse(w, http.StatusOK, s.buildEstimateResponse(est, req.Guide.Currency, req.TotalQuestions))
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req TestRequest
	if !s.decode(w, r, &req) {
		return
	}

	est := s.engine.Test(req.Rules, req.Answers, req.BasePrice, req.BaseCalloutFee)
	s.jsonResponse(w, http.StatusOK, s.buildEstimateResponse(est, req.Currency, req.TotalQuestions))
}

func (s *Server) buildEstimateResponse(est guide.PriceEstimate, currency string, totalQuestions int) EstimateResponse {
	return EstimateResponse{
		RequestID:   uuid.NewString(),
		EvaluatedAt: time.Now().UTC().Format(time.RFC3339),
		Estimate:    est,
		AppliedRuleNames: lo.Map(est.AppliedRules, func(r guide.AppliedRule, _ int) string {
			return r.RuleName
		}),
		Confidence:   confidence.ForEstimate(est, totalQuestions),
		CustomerText: display.ForCustomer(est, currency),
		InternalText: display.ForInternal(est, currency),
	}
}

// =============================================================================
// VALIDATE ENDPOINT
// =============================================================================

// ValidateRequest carries the rule list an authoring UI wants checked before
// saving.
type ValidateRequest struct {
	Rules []guide.Rule `json:"rules"`
}

// ValidateResponse wraps the validation result with request metadata.
type ValidateResponse struct {
	RequestID string            `json:"request_id"`
	Result    validation.Result `json:"result"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ValidateRequest
	if !s.decode(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusOK, ValidateResponse{
		RequestID: uuid.NewString(),
		Result:    validation.ValidateRules(req.Rules),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func (s *Server) decode(w http.ResponseWriter, r *http.Request, out interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return false
	}
	return true
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
