package seed

import (
	"github.com/kailas-cloud/backoffice/internal/domain/category"
	"github.com/kailas-cloud/backoffice/internal/domain/product"
	"github.com/kailas-cloud/backoffice/internal/domain/promotion"
	"github.com/kailas-cloud/backoffice/internal/domain/sale"
	"github.com/kailas-cloud/backoffice/internal/domain/transaction"
)

type categoryRecord struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
}

type productRecord struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Price       float64 `yaml:"price"`
	Stock       int     `yaml:"stock"`
	Description string  `yaml:"description"`
	Status      string  `yaml:"status"`
	Image       string  `yaml:"image"`
}

type saleItemRecord struct {
	ProductID   string  `yaml:"product_id"`
	ProductName string  `yaml:"product_name"`
	Quantity    int     `yaml:"quantity"`
	Price       float64 `yaml:"price"`
}

type saleRecord struct {
	ID              string           `yaml:"id"`
	CustomerName    string           `yaml:"customer_name"`
	CustomerPhone   string           `yaml:"customer_phone"`
	CustomerAddress string           `yaml:"customer_address"`
	Items           []saleItemRecord `yaml:"items"`
	Total           float64          `yaml:"total"`
	Status          string           `yaml:"status"`
	PaymentMethod   string           `yaml:"payment_method"`
	PaymentStatus   string           `yaml:"payment_status"`
	Date            string           `yaml:"date"`
	DeliveryDate    string           `yaml:"delivery_date"`
}

type transactionRecord struct {
	ID            string  `yaml:"id"`
	Type          string  `yaml:"type"`
	Category      string  `yaml:"category"`
	Description   string  `yaml:"description"`
	Amount        float64 `yaml:"amount"`
	Date          string  `yaml:"date"`
	PaymentMethod string  `yaml:"payment_method"`
}

type promotionRecord struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Code             string   `yaml:"code"`
	Type             string   `yaml:"type"`
	Value            float64  `yaml:"value"`
	Description      string   `yaml:"description"`
	StartDate        string   `yaml:"start_date"`
	EndDate          string   `yaml:"end_date"`
	UsageLimit       int      `yaml:"usage_limit"`
	UsageCount       int      `yaml:"usage_count"`
	MinOrderValue    float64  `yaml:"min_order_value"`
	IsActive         bool     `yaml:"is_active"`
	TargetProducts   []string `yaml:"target_products"`
	TargetCategories []string `yaml:"target_categories"`
}

func (r categoryRecord) toDomain() category.Category {
	return category.Reconstruct(r.ID, r.Description)
}

func (r productRecord) toDomain() product.Product {
	return product.Reconstruct(r.ID, product.Draft{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		Description: r.Description,
		Status:      product.Status(r.Status),
		Image:       r.Image,
	})
}

func (r saleRecord) toDomain() sale.Sale {
	items := make([]sale.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = sale.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
	}
	return sale.Reconstruct(r.ID, sale.Draft{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Items:           items,
		Total:           r.Total,
		PaymentMethod:   r.PaymentMethod,
		Date:            r.Date,
	}, sale.State{
		Status:        sale.Status(r.Status),
		PaymentStatus: sale.PaymentStatus(r.PaymentStatus),
		DeliveryDate:  r.DeliveryDate,
	})
}

func (r transactionRecord) toDomain() transaction.Transaction {
	return transaction.Reconstruct(r.ID, transaction.Draft{
		Type:          transaction.Type(r.Type),
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		PaymentMethod: r.PaymentMethod,
	})
}

func (r promotionRecord) toDomain() promotion.Promotion {
	return promotion.Reconstruct(r.ID, promotion.Draft{
		Name:             r.Name,
		Code:             r.Code,
		Type:             promotion.Type(r.Type),
		Value:            r.Value,
		Description:      r.Description,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		UsageLimit:       r.UsageLimit,
		MinOrderValue:    r.MinOrderValue,
		IsActive:         r.IsActive,
		TargetProducts:   r.TargetProducts,
		TargetCategories: r.TargetCategories,
	}, r.UsageCount)
}

func convert[R interface{ toDomain() T }, T any](records []R) []T {
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = r.toDomain()
	}
	return out
}
