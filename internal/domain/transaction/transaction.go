package transaction

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/backoffice/internal/domain"
)

// Type separates money in from money out.
type Type string

const (
	// TypeIncome entries bring money in.
	TypeIncome Type = "income"
	// TypeExpense entries take money out.
	TypeExpense Type = "expense"
)

// IsValid checks if the type is supported.
func (t Type) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

var (
	// IncomeCategories are offered for income entries.
	IncomeCategories = []string{"Vendas", "Outros"}
	// ExpenseCategories are offered for expense entries.
	ExpenseCategories = []string{"Estoque", "Marketing", "Operacional", "Impostos", "Outros"}
	// PaymentMethods lists the accepted payment methods.
	PaymentMethods = []string{"PIX", "Cartão de Crédito", "Cartão de Débito", "Dinheiro", "Transferência"}
)

// CategoriesFor returns the categories offered for t.
func CategoriesFor(t Type) []string {
	if t == TypeExpense {
		return ExpenseCategories
	}
	return IncomeCategories
}

// Draft carries every ledger entry field except the identifier.
type Draft struct {
	Type          Type
	Category      string
	Description   string
	Amount        float64
	Date          string
	PaymentMethod string
}

// Transaction is a ledger entry (immutable value object).
type Transaction struct {
	id            string
	kind          Type
	category      string
	description   string
	amount        float64
	date          string
	paymentMethod string
}

func validate(d Draft) error {
	if err := domain.Required("description", d.Description); err != nil {
		return err
	}
	if err := domain.Required("category", d.Category); err != nil {
		return err
	}
	if err := domain.Required("paymentMethod", d.PaymentMethod); err != nil {
		return err
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("invalid type %q: %w", d.Type, domain.ErrInvalidDraft)
	}
	return nil
}

// New validates a draft and creates a Transaction. An empty type means income
// and an empty date means today.
func New(id string, d Draft, now time.Time) (Transaction, error) {
	if d.Type == "" {
		d.Type = TypeIncome
	}
	if d.Date == "" {
		d.Date = domain.Today(now)
	}
	if err := validate(d); err != nil {
		return Transaction{}, err
	}
	return Reconstruct(id, d), nil
}

// Reconstruct creates a Transaction without validation (seed hydration).
func Reconstruct(id string, d Draft) Transaction {
	return Transaction{
		id:            id,
		kind:          d.Type,
		category:      d.Category,
		description:   d.Description,
		amount:        d.Amount,
		date:          d.Date,
		paymentMethod: d.PaymentMethod,
	}
}

// EntityID returns the collection key of the entry.
func (t Transaction) EntityID() string { return t.id }

// ID returns the identifier of the entry.
func (t Transaction) ID() string { return t.id }

// Type returns whether the entry is income or expense.
func (t Transaction) Type() Type { return t.kind }

// Category returns the category name.
func (t Transaction) Category() string { return t.category }

// Description returns the free-text description.
func (t Transaction) Description() string { return t.description }

// Amount returns the entry value.
func (t Transaction) Amount() float64 { return t.amount }

// Date returns the record date as YYYY-MM-DD.
func (t Transaction) Date() string { return t.date }

// PaymentMethod returns how the customer pays.
func (t Transaction) PaymentMethod() string { return t.paymentMethod }

// IsIncome reports whether t brings money in.
func (t Transaction) IsIncome() bool { return t.kind == TypeIncome }

// IsExpense reports whether t takes money out.
func (t Transaction) IsExpense() bool { return t.kind == TypeExpense }

func (t Transaction) typeString() string { return string(t.kind) }

// Draft returns the editable fields of t.
func (t Transaction) Draft() Draft {
	return Draft{
		Type:          t.kind,
		Category:      t.category,
		Description:   t.description,
		Amount:        t.amount,
		Date:          t.date,
		PaymentMethod: t.paymentMethod,
	}
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Type          *Type
	Category      *string
	Description   *string
	Amount        *float64
	Date          *string
	PaymentMethod *string
}

// Apply returns t with the patch applied, validated like a draft.
func (t Transaction) Apply(p Patch) (Transaction, error) {
	d := t.Draft()
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.PaymentMethod != nil {
		d.PaymentMethod = *p.PaymentMethod
	}
	if err := validate(d); err != nil {
		return Transaction{}, err
	}
	return Reconstruct(t.id, d), nil
}
