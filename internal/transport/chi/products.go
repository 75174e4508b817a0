package chi

import (
	"net/http"

	domprod "github.com/kailas-cloud/backoffice/internal/domain/product"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request, params ListProductsParams) {
	v := s.products.List(r.Context(), domprod.Criteria{
		Search:   deref(params.Search),
		Category: deref(params.Category),
	})
	writeJSON(w, http.StatusOK, viewToWire(v, productToWire))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.products.Create(r.Context(), productDraft(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/products/"+p.ID())
	writeJSON(w, http.StatusCreated, productToWire(p))
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request, id string) {
	p, err := s.products.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToWire(p))
}

// UpdateProduct handles PATCH /api/v1/products/{id}.
func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request, id string) {
	var req ProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.products.Update(r.Context(), id, productPatch(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToWire(p))
}

// ToggleProduct handles POST /api/v1/products/{id}/toggle.
func (s *Server) ToggleProduct(w http.ResponseWriter, r *http.Request, id string) {
	p, err := s.products.Toggle(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToWire(p))
}

// DeleteProduct handles DELETE /api/v1/products/{id}.
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request, id string, params DeleteParams) {
	if err := s.products.Delete(r.Context(), id, deref(params.Confirm)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProductSummary handles GET /api/v1/products/summary.
func (s *Server) ProductSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, productSummaryToWire(s.products.Summary(r.Context())))
}

// ProductCategories handles GET /api/v1/products/categories.
func (s *Server) ProductCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResponse{Items: s.products.Categories()})
}
