package chi

import (
	"net/http"

	domcat "github.com/kailas-cloud/backoffice/internal/domain/category"
)

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request, params ListCategoriesParams) {
	v := s.categories.List(r.Context(), domcat.Criteria{Search: deref(params.Search)})
	writeJSON(w, http.StatusOK, viewToWire(v, categoryToWire))
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cat, err := s.categories.Create(r.Context(), categoryDraft(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/categories/"+cat.ID())
	writeJSON(w, http.StatusCreated, categoryToWire(cat))
}

// GetCategory handles GET /api/v1/categories/{id}.
func (s *Server) GetCategory(w http.ResponseWriter, r *http.Request, id string) {
	cat, err := s.categories.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToWire(cat))
}

// UpdateCategory handles PATCH /api/v1/categories/{id}.
func (s *Server) UpdateCategory(w http.ResponseWriter, r *http.Request, id string) {
	var req CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cat, err := s.categories.Update(r.Context(), id, categoryDraft(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToWire(cat))
}

// DeleteCategory handles DELETE /api/v1/categories/{id}.
func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request, id string, params DeleteParams) {
	if err := s.categories.Delete(r.Context(), id, deref(params.Confirm)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CategorySummary handles GET /api/v1/categories/summary.
func (s *Server) CategorySummary(w http.ResponseWriter, r *http.Request) {
	sum := s.categories.Summary(r.Context())
	writeJSON(w, http.StatusOK, CategorySummary{Total: sum.Total})
}
