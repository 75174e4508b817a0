package chi

import (
	"net/http"

	domsale "github.com/kailas-cloud/backoffice/internal/domain/sale"
)

// ListSales handles GET /api/v1/sales.
func (s *Server) ListSales(w http.ResponseWriter, r *http.Request, params ListSalesParams) {
	v := s.sales.List(r.Context(), domsale.Criteria{
		Search: deref(params.Search),
		Status: deref(params.Status),
	})
	writeJSON(w, http.StatusOK, viewToWire(v, saleToWire))
}

// CreateSale handles POST /api/v1/sales.
func (s *Server) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sl, err := s.sales.Create(r.Context(), saleDraft(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sales/"+sl.ID())
	writeJSON(w, http.StatusCreated, saleToWire(sl))
}

// GetSale handles GET /api/v1/sales/{id}.
func (s *Server) GetSale(w http.ResponseWriter, r *http.Request, id string) {
	sl, err := s.sales.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saleToWire(sl))
}

// UpdateSale handles PATCH /api/v1/sales/{id}.
func (s *Server) UpdateSale(w http.ResponseWriter, r *http.Request, id string) {
	var req SaleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sl, err := s.sales.Update(r.Context(), id, salePatch(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saleToWire(sl))
}

// SetSaleStatus handles POST /api/v1/sales/{id}/status.
func (s *Server) SetSaleStatus(w http.ResponseWriter, r *http.Request, id string) {
	var req StatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sl, err := s.sales.SetStatus(r.Context(), id, domsale.Status(req.Status))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saleToWire(sl))
}

// SetSalePaymentStatus handles POST /api/v1/sales/{id}/payment-status.
func (s *Server) SetSalePaymentStatus(w http.ResponseWriter, r *http.Request, id string) {
	var req PaymentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sl, err := s.sales.SetPaymentStatus(r.Context(), id, domsale.PaymentStatus(req.PaymentStatus))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saleToWire(sl))
}

// SaleTransitions handles GET /api/v1/sales/{id}/transitions.
func (s *Server) SaleTransitions(w http.ResponseWriter, r *http.Request, id string) {
	t, err := s.sales.Transitions(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transitionsToWire(t))
}

// DeleteSale handles DELETE /api/v1/sales/{id}.
func (s *Server) DeleteSale(w http.ResponseWriter, r *http.Request, id string, params DeleteParams) {
	if err := s.sales.Delete(r.Context(), id, deref(params.Confirm)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaleSummary handles GET /api/v1/sales/summary.
func (s *Server) SaleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, saleSummaryToWire(s.sales.Summary(r.Context())))
}
