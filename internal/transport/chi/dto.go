package chi

import (
	"github.com/kailas-cloud/backoffice/internal/collection"
	domcat "github.com/kailas-cloud/backoffice/internal/domain/category"
	domprod "github.com/kailas-cloud/backoffice/internal/domain/product"
	dompromo "github.com/kailas-cloud/backoffice/internal/domain/promotion"
	domsale "github.com/kailas-cloud/backoffice/internal/domain/sale"
	domtx "github.com/kailas-cloud/backoffice/internal/domain/transaction"
	dashboarduc "github.com/kailas-cloud/backoffice/internal/usecase/dashboard"
	saleuc "github.com/kailas-cloud/backoffice/internal/usecase/sale"
)

// --- Categories ---

// CategoryRequest is the body of category create and update.
type CategoryRequest struct {
	Description *string `json:"description"`
}

// Category is the wire form of a category.
type Category struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// CategorySummary is the wire form of category metrics.
type CategorySummary struct {
	Total int `json:"total"`
}

func categoryToWire(c domcat.Category) Category {
	return Category{ID: c.ID(), Description: c.Description()}
}

func categoryDraft(req CategoryRequest) domcat.Draft {
	return domcat.Draft{Description: deref(req.Description)}
}

// --- Products ---

// ProductRequest is the body of product create and patch.
type ProductRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Price       *Number `json:"price"`
	Stock       *Int    `json:"stock"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Image       *string `json:"image"`
}

// Product is the wire form of a product.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Image       string  `json:"image"`
}

// ProductSummary is the wire form of catalog metrics.
type ProductSummary struct {
	Total          int            `json:"total"`
	Active         int            `json:"active"`
	Inactive       int            `json:"inactive"`
	LowStock       int            `json:"lowStock"`
	InventoryValue float64        `json:"inventoryValue"`
	ByCategory     map[string]int `json:"byCategory"`
}

func productToWire(p domprod.Product) Product {
	return Product{
		ID:          p.ID(),
		Name:        p.Name(),
		Category:    p.Category(),
		Price:       p.Price(),
		Stock:       p.Stock(),
		Description: p.Description(),
		Status:      string(p.Status()),
		Image:       p.Image(),
	}
}

func productDraft(req ProductRequest) domprod.Draft {
	return domprod.Draft{
		Name:        deref(req.Name),
		Category:    deref(req.Category),
		Price:       derefNumber(req.Price),
		Stock:       derefInt(req.Stock),
		Description: deref(req.Description),
		Status:      domprod.Status(deref(req.Status)),
		Image:       deref(req.Image),
	}
}

func productPatch(req ProductRequest) domprod.Patch {
	return domprod.Patch{
		Name:        req.Name,
		Category:    req.Category,
		Price:       numberPtr(req.Price),
		Stock:       intPtr(req.Stock),
		Description: req.Description,
		Status:      convertPtr(req.Status, func(s string) domprod.Status { return domprod.Status(s) }),
		Image:       req.Image,
	}
}

func productSummaryToWire(s domprod.Summary) ProductSummary {
	return ProductSummary{
		Total:          s.Total,
		Active:         s.Active,
		Inactive:       s.Inactive,
		LowStock:       s.LowStock,
		InventoryValue: s.InventoryValue,
		ByCategory:     s.ByCategory,
	}
}

// --- Sales ---

// SaleItem is one order line on the wire.
type SaleItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    Int    `json:"quantity"`
	Price       Number `json:"price"`
}

// SaleRequest is the body of sale create and patch.
type SaleRequest struct {
	CustomerName    *string     `json:"customerName"`
	CustomerPhone   *string     `json:"customerPhone"`
	CustomerAddress *string     `json:"customerAddress"`
	Items           *[]SaleItem `json:"items"`
	Total           *Number     `json:"total"`
	PaymentMethod   *string     `json:"paymentMethod"`
	Date            *string     `json:"date"`
}

// Sale is the wire form of an order.
type Sale struct {
	ID              string     `json:"id"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	CustomerAddress string     `json:"customerAddress"`
	Items           []SaleItem `json:"items"`
	Total           float64    `json:"total"`
	Status          string     `json:"status"`
	PaymentMethod   string     `json:"paymentMethod"`
	PaymentStatus   string     `json:"paymentStatus"`
	Date            string     `json:"date"`
	DeliveryDate    string     `json:"deliveryDate,omitempty"`
}

// StatusRequest is the body of a status change.
type StatusRequest struct {
	Status string `json:"status"`
}

// PaymentStatusRequest is the body of a payment status change.
type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// Transitions lists the controls to expose for an order.
type Transitions struct {
	Status        []string `json:"status"`
	PaymentStatus []string `json:"paymentStatus"`
}

// SaleSummary is the wire form of order metrics.
type SaleSummary struct {
	Count           int            `json:"count"`
	TotalValue      float64        `json:"totalValue"`
	Pending         int            `json:"pending"`
	Delivered       int            `json:"delivered"`
	PaidValue       float64        `json:"paidValue"`
	ByStatus        map[string]int `json:"byStatus"`
	ByPaymentMethod map[string]int `json:"byPaymentMethod"`
	ByPaymentStatus map[string]int `json:"byPaymentStatus"`
}

func saleToWire(s domsale.Sale) Sale {
	src := s.Items()
	items := make([]SaleItem, len(src))
	for i, it := range src {
		items[i] = SaleItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    Int(it.Quantity),
			Price:       Number(it.Price),
		}
	}
	return Sale{
		ID:              s.ID(),
		CustomerName:    s.CustomerName(),
		CustomerPhone:   s.CustomerPhone(),
		CustomerAddress: s.CustomerAddress(),
		Items:           items,
		Total:           s.Total(),
		Status:          string(s.Status()),
		PaymentMethod:   s.PaymentMethod(),
		PaymentStatus:   string(s.PaymentStatus()),
		Date:            s.Date(),
		DeliveryDate:    s.DeliveryDate(),
	}
}

func saleItemsFromWire(items []SaleItem) []domsale.Item {
	out := make([]domsale.Item, len(items))
	for i, it := range items {
		out[i] = domsale.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    int(it.Quantity),
			Price:       float64(it.Price),
		}
	}
	return out
}

func saleDraft(req SaleRequest) domsale.Draft {
	var items []domsale.Item
	if req.Items != nil {
		items = saleItemsFromWire(*req.Items)
	}
	return domsale.Draft{
		CustomerName:    deref(req.CustomerName),
		CustomerPhone:   deref(req.CustomerPhone),
		CustomerAddress: deref(req.CustomerAddress),
		Items:           items,
		Total:           derefNumber(req.Total),
		PaymentMethod:   deref(req.PaymentMethod),
		Date:            deref(req.Date),
	}
}

func salePatch(req SaleRequest) domsale.Patch {
	return domsale.Patch{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           convertPtr(req.Items, saleItemsFromWire),
		Total:           numberPtr(req.Total),
		PaymentMethod:   req.PaymentMethod,
	}
}

func transitionsToWire(t saleuc.Transitions) Transitions {
	return Transitions{
		Status:        stringsOf(t.Status),
		PaymentStatus: stringsOf(t.PaymentStatus),
	}
}

func saleSummaryToWire(s domsale.Summary) SaleSummary {
	return SaleSummary{
		Count:           s.Count,
		TotalValue:      s.TotalValue,
		Pending:         s.Pending,
		Delivered:       s.Delivered,
		PaidValue:       s.PaidValue,
		ByStatus:        s.ByStatus,
		ByPaymentMethod: s.ByPaymentMethod,
		ByPaymentStatus: s.ByPaymentStatus,
	}
}

// --- Transactions ---

// TransactionRequest is the body of ledger create and patch.
type TransactionRequest struct {
	Type          *string `json:"type"`
	Category      *string `json:"category"`
	Description   *string `json:"description"`
	Amount        *Number `json:"amount"`
	Date          *string `json:"date"`
	PaymentMethod *string `json:"paymentMethod"`
}

// Transaction is the wire form of a ledger entry.
type Transaction struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
}

// TransactionSummary is the wire form of ledger metrics.
type TransactionSummary struct {
	Count               int                `json:"count"`
	TotalIncome         float64            `json:"totalIncome"`
	TotalExpenses       float64            `json:"totalExpenses"`
	NetProfit           float64            `json:"netProfit"`
	AverageTicket       float64            `json:"averageTicket"`
	MarginPercent       float64            `json:"marginPercent"`
	ByPaymentMethod     map[string]int     `json:"byPaymentMethod"`
	PaymentMethodShares map[string]float64 `json:"paymentMethodShares"`
	ByCategory          map[string]float64 `json:"byCategory"`
}

func transactionToWire(t domtx.Transaction) Transaction {
	return Transaction{
		ID:            t.ID(),
		Type:          string(t.Type()),
		Category:      t.Category(),
		Description:   t.Description(),
		Amount:        t.Amount(),
		Date:          t.Date(),
		PaymentMethod: t.PaymentMethod(),
	}
}

func transactionDraft(req TransactionRequest) domtx.Draft {
	return domtx.Draft{
		Type:          domtx.Type(deref(req.Type)),
		Category:      deref(req.Category),
		Description:   deref(req.Description),
		Amount:        derefNumber(req.Amount),
		Date:          deref(req.Date),
		PaymentMethod: deref(req.PaymentMethod),
	}
}

func transactionPatch(req TransactionRequest) domtx.Patch {
	return domtx.Patch{
		Type:          convertPtr(req.Type, func(s string) domtx.Type { return domtx.Type(s) }),
		Category:      req.Category,
		Description:   req.Description,
		Amount:        numberPtr(req.Amount),
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	}
}

func transactionSummaryToWire(s domtx.Summary) TransactionSummary {
	return TransactionSummary{
		Count:               s.Count,
		TotalIncome:         s.TotalIncome,
		TotalExpenses:       s.TotalExpenses,
		NetProfit:           s.NetProfit,
		AverageTicket:       s.AverageTicket,
		MarginPercent:       s.MarginPercent,
		ByPaymentMethod:     s.ByPaymentMethod,
		PaymentMethodShares: s.PaymentMethodShares,
		ByCategory:          s.ByCategory,
	}
}

// --- Promotions ---

// PromotionRequest is the body of coupon create and patch.
type PromotionRequest struct {
	Name             *string   `json:"name"`
	Code             *string   `json:"code"`
	Type             *string   `json:"type"`
	Value            *Number   `json:"value"`
	Description      *string   `json:"description"`
	StartDate        *string   `json:"startDate"`
	EndDate          *string   `json:"endDate"`
	UsageLimit       *Int      `json:"usageLimit"`
	MinOrderValue    *Number   `json:"minOrderValue"`
	IsActive         *bool     `json:"isActive"`
	TargetProducts   *[]string `json:"targetProducts"`
	TargetCategories *[]string `json:"targetCategories"`
}

// Promotion is the wire form of a coupon.
type Promotion struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	Type             string   `json:"type"`
	Value            float64  `json:"value"`
	Description      string   `json:"description"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	UsageLimit       int      `json:"usageLimit"`
	UsageCount       int      `json:"usageCount"`
	MinOrderValue    float64  `json:"minOrderValue"`
	IsActive         bool     `json:"isActive"`
	TargetProducts   []string `json:"targetProducts"`
	TargetCategories []string `json:"targetCategories"`
}

// TypeShare is the count and percentage of coupons of one type.
type TypeShare struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// PromotionSummary is the wire form of coupon metrics.
type PromotionSummary struct {
	Total        int                  `json:"total"`
	Active       int                  `json:"active"`
	TotalUsage   int                  `json:"totalUsage"`
	UsageRate    float64              `json:"usageRate"`
	ExpiringSoon int                  `json:"expiringSoon"`
	ByType       map[string]TypeShare `json:"byType"`
	Ranking      []Promotion          `json:"ranking"`
}

// RankingResponse lists the most used coupons.
type RankingResponse struct {
	Items []Promotion `json:"items"`
}

// CodeResponse carries a generated coupon code.
type CodeResponse struct {
	Code string `json:"code"`
}

func promotionToWire(p dompromo.Promotion) Promotion {
	return Promotion{
		ID:               p.ID(),
		Name:             p.Name(),
		Code:             p.Code(),
		Type:             string(p.Type()),
		Value:            p.Value(),
		Description:      p.Description(),
		StartDate:        p.StartDate(),
		EndDate:          p.EndDate(),
		UsageLimit:       p.UsageLimit(),
		UsageCount:       p.UsageCount(),
		MinOrderValue:    p.MinOrderValue(),
		IsActive:         p.IsActive(),
		TargetProducts:   p.TargetProducts(),
		TargetCategories: p.TargetCategories(),
	}
}

func promotionDraft(req PromotionRequest) dompromo.Draft {
	return dompromo.Draft{
		Name:             deref(req.Name),
		Code:             deref(req.Code),
		Type:             dompromo.Type(deref(req.Type)),
		Value:            derefNumber(req.Value),
		Description:      deref(req.Description),
		StartDate:        deref(req.StartDate),
		EndDate:          deref(req.EndDate),
		UsageLimit:       derefInt(req.UsageLimit),
		MinOrderValue:    derefNumber(req.MinOrderValue),
		IsActive:         deref(req.IsActive),
		TargetProducts:   deref(req.TargetProducts),
		TargetCategories: deref(req.TargetCategories),
	}
}

func promotionPatch(req PromotionRequest) dompromo.Patch {
	return dompromo.Patch{
		Name:             req.Name,
		Code:             req.Code,
		Type:             convertPtr(req.Type, func(s string) dompromo.Type { return dompromo.Type(s) }),
		Value:            numberPtr(req.Value),
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		UsageLimit:       intPtr(req.UsageLimit),
		MinOrderValue:    numberPtr(req.MinOrderValue),
		IsActive:         req.IsActive,
		TargetProducts:   req.TargetProducts,
		TargetCategories: req.TargetCategories,
	}
}

func promotionsToWire(items []dompromo.Promotion) []Promotion {
	out := make([]Promotion, len(items))
	for i, p := range items {
		out[i] = promotionToWire(p)
	}
	return out
}

func promotionSummaryToWire(s dompromo.Summary) PromotionSummary {
	byType := make(map[string]TypeShare, len(s.ByType))
	for t, share := range s.ByType {
		byType[string(t)] = TypeShare{Count: share.Count, Percent: share.Percent}
	}
	return PromotionSummary{
		Total:        s.Total,
		Active:       s.Active,
		TotalUsage:   s.TotalUsage,
		UsageRate:    s.UsageRate,
		ExpiringSoon: s.ExpiringSoon,
		ByType:       byType,
		Ranking:      promotionsToWire(s.Ranking),
	}
}

// --- Dashboard ---

// Dashboard is the wire form of the overview.
type Dashboard struct {
	Categories   CategorySummary    `json:"categories"`
	Products     ProductSummary     `json:"products"`
	Sales        SaleSummary        `json:"sales"`
	Transactions TransactionSummary `json:"transactions"`
	Promotions   PromotionSummary   `json:"promotions"`
}

func dashboardToWire(o dashboarduc.Overview) Dashboard {
	return Dashboard{
		Categories:   CategorySummary{Total: o.Categories.Total},
		Products:     productSummaryToWire(o.Products),
		Sales:        saleSummaryToWire(o.Sales),
		Transactions: transactionSummaryToWire(o.Transactions),
		Promotions:   promotionSummaryToWire(o.Promotions),
	}
}

// --- Helpers ---

func viewToWire[D collection.Entity, W any](v collection.View[D], fn func(D) W) ListResponse[W] {
	out := make([]W, len(v.Items))
	for i, it := range v.Items {
		out[i] = fn(it)
	}
	return ListResponse[W]{Items: out, Total: v.Total, Visible: v.Visible, Submitting: v.Submitting}
}

func stringsOf[S ~string](in []S) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

// OptionsResponse lists the values a form field may take.
type OptionsResponse struct {
	Items []string `json:"items"`
}
