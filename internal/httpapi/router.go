package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jhruska/callsight/internal/extraction"
)

// Analyzer is the extraction client surface the handlers need.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*extraction.Analysis, error)
}

type RouterConfig struct {
	// Deployment is echoed in the health payload so the UI can show which
	// model deployment the backend targets.
	Deployment string
}

type Router struct {
	cfg      RouterConfig
	logger   *log.Logger
	analyzer Analyzer
	mux      *http.ServeMux
}

func NewRouter(cfg RouterConfig, logger *log.Logger, analyzer Analyzer) http.Handler {
	r := &Router{
		cfg:      cfg,
		logger:   logger,
		analyzer: analyzer,
		mux:      http.NewServeMux(),
	}

	r.routes()
	return withSentryRecovery(withCORS(r.mux))
}

func (r *Router) routes() {
	// Health check
	r.mux.HandleFunc("GET /healthz", r.handleHealthz)

	// Demo scenario catalog
	r.mux.HandleFunc("GET /api/scenarios", r.handleListScenarios)
	r.mux.HandleFunc("GET /api/scenarios/{id}", r.handleGetScenario)

	// The analysis schema, exposed so the UI can display or re-validate
	r.mux.HandleFunc("GET /api/schema", r.handleGetSchema)

	// Extraction and human-in-the-loop completion
	r.mux.HandleFunc("POST /api/analyze", r.handleAnalyze)
	r.mux.HandleFunc("POST /api/complete", r.handleComplete)
}

func (r *Router) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"deployment": r.cfg.Deployment,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withSentryRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(req)
				hub.RecoverWithContext(req.Context(), err)
				hub.Flush(2 * time.Second)
				http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// captureError sends an error to Sentry with request context
func captureError(req *http.Request, err error, msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(req)
		scope.SetExtra("message", msg)
		sentry.CaptureException(err)
	})
}
