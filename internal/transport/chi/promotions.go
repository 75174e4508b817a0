package chi

import (
	"net/http"

	dompromo "github.com/kailas-cloud/backoffice/internal/domain/promotion"
)

// ListPromotions handles GET /api/v1/promotions.
func (s *Server) ListPromotions(w http.ResponseWriter, r *http.Request, params ListPromotionsParams) {
	v := s.promotions.List(r.Context(), dompromo.Criteria{
		Search: deref(params.Search),
		Type:   deref(params.Type),
		Status: deref(params.Status),
	})
	writeJSON(w, http.StatusOK, viewToWire(v, promotionToWire))
}

// CreatePromotion handles POST /api/v1/promotions.
func (s *Server) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req PromotionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.promotions.Create(r.Context(), promotionDraft(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/promotions/"+p.ID())
	writeJSON(w, http.StatusCreated, promotionToWire(p))
}

// GetPromotion handles GET /api/v1/promotions/{id}.
func (s *Server) GetPromotion(w http.ResponseWriter, r *http.Request, id string) {
	p, err := s.promotions.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promotionToWire(p))
}

// UpdatePromotion handles PATCH /api/v1/promotions/{id}.
func (s *Server) UpdatePromotion(w http.ResponseWriter, r *http.Request, id string) {
	var req PromotionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.promotions.Update(r.Context(), id, promotionPatch(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promotionToWire(p))
}

// TogglePromotion handles POST /api/v1/promotions/{id}/toggle.
func (s *Server) TogglePromotion(w http.ResponseWriter, r *http.Request, id string) {
	p, err := s.promotions.Toggle(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promotionToWire(p))
}

// DeletePromotion handles DELETE /api/v1/promotions/{id}.
func (s *Server) DeletePromotion(w http.ResponseWriter, r *http.Request, id string, params DeleteParams) {
	if err := s.promotions.Delete(r.Context(), id, deref(params.Confirm)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PromotionSummary handles GET /api/v1/promotions/summary.
func (s *Server) PromotionSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, promotionSummaryToWire(s.promotions.Summary(r.Context())))
}

// PromotionRanking handles GET /api/v1/promotions/ranking.
func (s *Server) PromotionRanking(w http.ResponseWriter, r *http.Request, params PromotionRankingParams) {
	items := s.promotions.Ranking(r.Context(), deref(params.Limit))
	writeJSON(w, http.StatusOK, RankingResponse{Items: promotionsToWire(items)})
}

// GeneratePromotionCode handles GET /api/v1/promotions/code.
func (s *Server) GeneratePromotionCode(w http.ResponseWriter, r *http.Request) {
	code, err := s.promotions.GenerateCode(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CodeResponse{Code: code})
}
