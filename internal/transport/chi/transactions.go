package chi

import (
	"net/http"

	domtx "github.com/kailas-cloud/backoffice/internal/domain/transaction"
)

// ListTransactions handles GET /api/v1/transactions.
func (s *Server) ListTransactions(w http.ResponseWriter, r *http.Request, params ListTransactionsParams) {
	v := s.transactions.List(r.Context(), domtx.Criteria{
		Category: deref(params.Category),
		Type:     deref(params.Type),
	})
	writeJSON(w, http.StatusOK, viewToWire(v, transactionToWire))
}

// CreateTransaction handles POST /api/v1/transactions.
func (s *Server) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := s.transactions.Create(r.Context(), transactionDraft(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/transactions/"+t.ID())
	writeJSON(w, http.StatusCreated, transactionToWire(t))
}

// GetTransaction handles GET /api/v1/transactions/{id}.
func (s *Server) GetTransaction(w http.ResponseWriter, r *http.Request, id string) {
	t, err := s.transactions.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionToWire(t))
}

// UpdateTransaction handles PATCH /api/v1/transactions/{id}.
func (s *Server) UpdateTransaction(w http.ResponseWriter, r *http.Request, id string) {
	var req TransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := s.transactions.Update(r.Context(), id, transactionPatch(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionToWire(t))
}

// DeleteTransaction handles DELETE /api/v1/transactions/{id}.
func (s *Server) DeleteTransaction(w http.ResponseWriter, r *http.Request, id string, params DeleteParams) {
	if err := s.transactions.Delete(r.Context(), id, deref(params.Confirm)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TransactionSummary handles GET /api/v1/transactions/summary.
func (s *Server) TransactionSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, transactionSummaryToWire(s.transactions.Summary(r.Context())))
}

// TransactionCategories handles GET /api/v1/transactions/categories.
func (s *Server) TransactionCategories(w http.ResponseWriter, _ *http.Request, params TransactionCategoriesParams) {
	t := domtx.Type(deref(params.Type))
	writeJSON(w, http.StatusOK, OptionsResponse{Items: s.transactions.Categories(t)})
}
