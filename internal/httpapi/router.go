package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux (no third-party router
// dependency needed for two endpoints).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// tag every request so log lines can be correlated
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	r.logger.Debug("Handling request",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
	)

	r.mux.ServeHTTP(w, req)
}

// RegisterRoutes wires the symptom checker endpoints.
func (r *Router) RegisterRoutes(h *AnalyzeHandler) {
	r.Handle("/health", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Health(w, req)
	})

	r.Handle("/analyze", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Analyze(w, req)
	})
}
