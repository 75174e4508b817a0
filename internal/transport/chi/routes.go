package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ListCategoriesParams are the query parameters of GET /categories.
type ListCategoriesParams struct {
	Search *string
}

// ListProductsParams are the query parameters of GET /products.
type ListProductsParams struct {
	Search   *string
	Category *string
}

// ListSalesParams are the query parameters of GET /sales.
type ListSalesParams struct {
	Search *string
	Status *string
}

// ListTransactionsParams are the query parameters of GET /transactions.
type ListTransactionsParams struct {
	Category *string
	Type     *string
}

// TransactionCategoriesParams are the query parameters of GET /transactions/categories.
type TransactionCategoriesParams struct {
	Type *string
}

// ListPromotionsParams are the query parameters of GET /promotions.
type ListPromotionsParams struct {
	Search *string
	Type   *string
	Status *string
}

// PromotionRankingParams are the query parameters of GET /promotions/ranking.
type PromotionRankingParams struct {
	Limit *int
}

// DeleteParams are the query parameters of every DELETE.
type DeleteParams struct {
	Confirm *bool
}

// ServerOptions configures route registration.
type ServerOptions struct {
	BaseRouter       chi.Router
	BaseURL          string
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// InvalidParamFormatError reports a path or query parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// binder extracts typed parameters before calling into the Server.
type binder struct {
	s       *Server
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions registers every API route on opts.BaseRouter.
func HandlerWithOptions(s *Server, opts ServerOptions) http.Handler {
	r := opts.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if opts.ErrorHandlerFunc == nil {
		opts.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		}
	}
	b := &binder{s: s, onError: opts.ErrorHandlerFunc}

	r.Get(opts.BaseURL+"/health", s.HealthCheck)
	r.Get(opts.BaseURL+"/metrics", s.Metrics)

	r.Route(opts.BaseURL+"/api/v1", func(r chi.Router) {
		r.Get("/dashboard", s.GetDashboard)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", b.listCategories)
			r.Post("/", s.CreateCategory)
			r.Get("/summary", s.CategorySummary)
			r.Get("/{id}", b.withID(s.GetCategory))
			r.Patch("/{id}", b.withID(s.UpdateCategory))
			r.Delete("/{id}", b.withDelete(s.DeleteCategory))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", b.listProducts)
			r.Post("/", s.CreateProduct)
			r.Get("/summary", s.ProductSummary)
			r.Get("/categories", s.ProductCategories)
			r.Get("/{id}", b.withID(s.GetProduct))
			r.Patch("/{id}", b.withID(s.UpdateProduct))
			r.Delete("/{id}", b.withDelete(s.DeleteProduct))
			r.Post("/{id}/toggle", b.withID(s.ToggleProduct))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", b.listSales)
			r.Post("/", s.CreateSale)
			r.Get("/summary", s.SaleSummary)
			r.Get("/{id}", b.withID(s.GetSale))
			r.Patch("/{id}", b.withID(s.UpdateSale))
			r.Delete("/{id}", b.withDelete(s.DeleteSale))
			r.Post("/{id}/status", b.withID(s.SetSaleStatus))
			r.Post("/{id}/payment-status", b.withID(s.SetSalePaymentStatus))
			r.Get("/{id}/transitions", b.withID(s.SaleTransitions))
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", b.listTransactions)
			r.Post("/", s.CreateTransaction)
			r.Get("/summary", s.TransactionSummary)
			r.Get("/categories", b.transactionCategories)
			r.Get("/{id}", b.withID(s.GetTransaction))
			r.Patch("/{id}", b.withID(s.UpdateTransaction))
			r.Delete("/{id}", b.withDelete(s.DeleteTransaction))
		})

		r.Route("/promotions", func(r chi.Router) {
			r.Get("/", b.listPromotions)
			r.Post("/", s.CreatePromotion)
			r.Get("/summary", s.PromotionSummary)
			r.Get("/ranking", b.promotionRanking)
			r.Get("/code", s.GeneratePromotionCode)
			r.Get("/{id}", b.withID(s.GetPromotion))
			r.Patch("/{id}", b.withID(s.UpdatePromotion))
			r.Delete("/{id}", b.withDelete(s.DeletePromotion))
			r.Post("/{id}/toggle", b.withID(s.TogglePromotion))
		})
	})

	return r
}

func (b *binder) withID(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := b.pathID(w, r)
		if !ok {
			return
		}
		next(w, r, id)
	}
}

func (b *binder) withDelete(next func(http.ResponseWriter, *http.Request, string, DeleteParams)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := b.pathID(w, r)
		if !ok {
			return
		}
		var params DeleteParams
		if !b.query(w, r, "confirm", &params.Confirm) {
			return
		}
		next(w, r, id, params)
	}
}

func (b *binder) listCategories(w http.ResponseWriter, r *http.Request) {
	var params ListCategoriesParams
	if !b.query(w, r, "search", &params.Search) {
		return
	}
	b.s.ListCategories(w, r, params)
}

func (b *binder) listProducts(w http.ResponseWriter, r *http.Request) {
	var params ListProductsParams
	if !b.query(w, r, "search", &params.Search) || !b.query(w, r, "category", &params.Category) {
		return
	}
	b.s.ListProducts(w, r, params)
}

func (b *binder) listSales(w http.ResponseWriter, r *http.Request) {
	var params ListSalesParams
	if !b.query(w, r, "search", &params.Search) || !b.query(w, r, "status", &params.Status) {
		return
	}
	b.s.ListSales(w, r, params)
}

func (b *binder) listTransactions(w http.ResponseWriter, r *http.Request) {
	var params ListTransactionsParams
	if !b.query(w, r, "category", &params.Category) || !b.query(w, r, "type", &params.Type) {
		return
	}
	b.s.ListTransactions(w, r, params)
}

func (b *binder) transactionCategories(w http.ResponseWriter, r *http.Request) {
	var params TransactionCategoriesParams
	if !b.query(w, r, "type", &params.Type) {
		return
	}
	b.s.TransactionCategories(w, r, params)
}

func (b *binder) listPromotions(w http.ResponseWriter, r *http.Request) {
	var params ListPromotionsParams
	if !b.query(w, r, "search", &params.Search) ||
		!b.query(w, r, "type", &params.Type) ||
		!b.query(w, r, "status", &params.Status) {
		return
	}
	b.s.ListPromotions(w, r, params)
}

func (b *binder) promotionRanking(w http.ResponseWriter, r *http.Request) {
	var params PromotionRankingParams
	if !b.query(w, r, "limit", &params.Limit) {
		return
	}
	b.s.PromotionRanking(w, r, params)
}

func (b *binder) pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		b.onError(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return "", false
	}
	return id, true
}

// query binds an optional form-style query parameter into dest.
func (b *binder) query(w http.ResponseWriter, r *http.Request, name string, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		b.onError(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return false
	}
	return true
}
