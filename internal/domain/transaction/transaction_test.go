package transaction

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/backoffice/internal/domain"
)

func seed() []Transaction {
	return []Transaction{
		Reconstruct("1", Draft{Type: TypeIncome, Category: "Vendas", Description: "Venda - Conjunto Fitness Rosa", Amount: 89.9, Date: "2024-01-15", PaymentMethod: "Cartão de Crédito"}),
		Reconstruct("2", Draft{Type: TypeExpense, Category: "Estoque", Description: "Compra de produtos - Fornecedor ABC", Amount: 450, Date: "2024-01-14", PaymentMethod: "PIX"}),
		Reconstruct("3", Draft{Type: TypeIncome, Category: "Vendas", Description: "Venda - Kit Moda Íntima", Amount: 156.8, Date: "2024-01-14", PaymentMethod: "Cartão de Débito"}),
		Reconstruct("4", Draft{Type: TypeExpense, Category: "Marketing", Description: "Anúncios Facebook/Instagram", Amount: 120, Date: "2024-01-13", PaymentMethod: "Cartão de Crédito"}),
		Reconstruct("5", Draft{Type: TypeIncome, Category: "Vendas", Description: "Venda - Legging Premium", Amount: 120, Date: "2024-01-13", PaymentMethod: "PIX"}),
	}
}

func TestNew_Defaults(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	tx, err := New("t1", Draft{Category: "Vendas", Description: "Venda", PaymentMethod: "PIX", Amount: 10}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Type() != TypeIncome || tx.Date() != "2024-02-01" {
		t.Errorf("unexpected defaults: %s %s", tx.Type(), tx.Date())
	}
}

func TestNew_Validation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		draft Draft
	}{
		{"missing description", Draft{Category: "Vendas", PaymentMethod: "PIX"}},
		{"missing category", Draft{Description: "x", PaymentMethod: "PIX"}},
		{"missing payment method", Draft{Description: "x", Category: "Vendas"}},
		{"bad type", Draft{Type: "transfer", Description: "x", Category: "Vendas", PaymentMethod: "PIX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("t", tt.draft, now); !errors.Is(err, domain.ErrInvalidDraft) {
				t.Errorf("expected ErrInvalidDraft, got %v", err)
			}
		})
	}
}

func TestSummarize_IncomeExpenseNet(t *testing.T) {
	items := []Transaction{
		Reconstruct("a", Draft{Type: TypeIncome, Amount: 100}),
		Reconstruct("b", Draft{Type: TypeExpense, Amount: 40}),
	}
	s := Summarize(items)
	if s.TotalIncome != 100 || s.TotalExpenses != 40 || s.NetProfit != 60 {
		t.Errorf("expected 100/40/60, got %v/%v/%v", s.TotalIncome, s.TotalExpenses, s.NetProfit)
	}
	if s.MarginPercent != 60 {
		t.Errorf("expected margin 60, got %v", s.MarginPercent)
	}
}

func TestSummarize_Seed(t *testing.T) {
	s := Summarize(seed())
	if s.TotalIncome != 366.7 {
		t.Errorf("expected income 366.7, got %v", s.TotalIncome)
	}
	if s.TotalExpenses != 570 {
		t.Errorf("expected expenses 570, got %v", s.TotalExpenses)
	}
	if s.NetProfit != -203.3 {
		t.Errorf("expected net -203.3, got %v", s.NetProfit)
	}
	if s.AverageTicket != 122.23 {
		t.Errorf("expected average ticket 122.23, got %v", s.AverageTicket)
	}
	if s.ByPaymentMethod["PIX"] != 2 || s.PaymentMethodShares["PIX"] != 40 {
		t.Errorf("unexpected payment breakdown %v %v", s.ByPaymentMethod, s.PaymentMethodShares)
	}
	if s.ByCategory["Estoque"] != -450 || s.ByCategory["Vendas"] != 366.7 {
		t.Errorf("unexpected category nets %v", s.ByCategory)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome != 0 || s.AverageTicket != 0 || s.MarginPercent != 0 {
		t.Errorf("expected zeros, got %+v", s)
	}
}

func TestCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     int
	}{
		{"all", Criteria{Category: "all", Type: "all"}, 5},
		{"category", Criteria{Category: "Vendas"}, 3},
		{"type", Criteria{Type: "expense"}, 2},
		{"category and type", Criteria{Category: "Vendas", Type: "expense"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Project(seed()); len(got) != tt.want {
				t.Errorf("expected %d, got %d", tt.want, len(got))
			}
		})
	}
}

func TestApply(t *testing.T) {
	tx := seed()[1]
	amount := 500.0
	got, err := tx.Apply(Patch{Amount: &amount})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Amount() != 500 || got.Category() != "Estoque" {
		t.Errorf("unexpected result %v %v", got.Amount(), got.Category())
	}
	bad := Type("gift")
	if _, err := tx.Apply(Patch{Type: &bad}); !errors.Is(err, domain.ErrInvalidDraft) {
		t.Errorf("expected ErrInvalidDraft, got %v", err)
	}
}

func TestCategoriesFor(t *testing.T) {
	if len(CategoriesFor(TypeExpense)) != 5 || len(CategoriesFor(TypeIncome)) != 2 {
		t.Error("unexpected category lists")
	}
}
