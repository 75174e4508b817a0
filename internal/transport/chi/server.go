package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/domain"
	categoryuc "github.com/kailas-cloud/backoffice/internal/usecase/category"
	dashboarduc "github.com/kailas-cloud/backoffice/internal/usecase/dashboard"
	healthuc "github.com/kailas-cloud/backoffice/internal/usecase/health"
	productuc "github.com/kailas-cloud/backoffice/internal/usecase/product"
	promotionuc "github.com/kailas-cloud/backoffice/internal/usecase/promotion"
	saleuc "github.com/kailas-cloud/backoffice/internal/usecase/sale"
	transactionuc "github.com/kailas-cloud/backoffice/internal/usecase/transaction"
	"github.com/kailas-cloud/backoffice/internal/version"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Services bundles the use cases served over HTTP.
type Services struct {
	Categories   *categoryuc.Service
	Products     *productuc.Service
	Sales        *saleuc.Service
	Transactions *transactionuc.Service
	Promotions   *promotionuc.Service
	Dashboard    *dashboarduc.Service
	Health       *healthuc.Service
}

// Server implements the backoffice HTTP API.
type Server struct {
	categories    *categoryuc.Service
	products      *productuc.Service
	sales         *saleuc.Service
	transactions  *transactionuc.Service
	promotions    *promotionuc.Service
	dashboard     *dashboarduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(svc Services, logger *zap.Logger) *Server {
	s := &Server{
		categories:   svc.Categories,
		products:     svc.Products,
		sales:        svc.Sales,
		transactions: svc.Transactions,
		promotions:   svc.Promotions,
		dashboard:    svc.Dashboard,
		health:       svc.Health,
		logger:       logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, ErrorCodeAlreadyExists),
		sentinelHandler(domain.ErrInvalidDraft, http.StatusUnprocessableEntity, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrTransitionNotAllowed, http.StatusConflict, ErrorCodeTransitionNotAllowed),
		sentinelHandler(domain.ErrConfirmationRequired,
			http.StatusPreconditionRequired, ErrorCodeConfirmationRequired),
		sentinelHandler(domain.ErrSubmitInProgress, http.StatusConflict, ErrorCodeSubmitInProgress),
		sentinelHandler(domain.ErrRemoteUnavailable, http.StatusBadGateway, ErrorCodeRemoteUnavailable),
	}
	return s
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version.Version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dashboardToWire(s.dashboard.Overview(r.Context())))
}

// writeJSON encodes v before writing the status, so an unencodable value
// becomes a 500 instead of an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"code":"internal_error","message":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// decodeBody reads a JSON request body into dst. It writes a 400 and returns
// false when the body is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// safeDomainMessage returns a client-facing message without exposing internals.
// Validation and transition errors carry the offending field or move.
func safeDomainMessage(err error) string {
	var mf *domain.MissingFieldError
	if errors.As(err, &mf) {
		return mf.Error()
	}
	var te *domain.TransitionError
	if errors.As(err, &te) {
		return te.Error()
	}
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidDraft,
		domain.ErrTransitionNotAllowed,
		domain.ErrConfirmationRequired,
		domain.ErrSubmitInProgress,
		domain.ErrRemoteUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
